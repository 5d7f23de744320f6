package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"moodpet/internal/config"
)

// openLogger sets up the file logger. The terminal belongs to the TUI, so
// without a path logs are dropped.
func openLogger(lc config.LogConfig) (*slog.Logger, func(), error) {
	level, err := lc.SlogLevel()
	if err != nil {
		return nil, nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	if lc.Path == "" {
		logger := slog.New(slog.NewTextHandler(io.Discard, opts))
		return logger, func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(lc.Path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(lc.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(f, opts))
	slog.SetDefault(logger)
	return logger, func() { _ = f.Close() }, nil
}
