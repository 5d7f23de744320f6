package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"moodpet/internal/pet"
	"moodpet/internal/scene"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Environment variables read by Load and DefaultPath
const (
	EnvConfig   = "MOODPET_CONFIG"
	EnvColor    = "MOODPET_COLOR"
	EnvLogLevel = "MOODPET_LOG_LEVEL"
)

const (
	appName     = "moodpet"
	configFile  = "config.yaml"
	logFile     = "moodpet.log"
	defaultTick = 70 * time.Millisecond
)

// DefaultPalette is offered by the recolor picker.
var DefaultPalette = []string{"#ff6b6b", "#4ecdc4", "#45b7d1", "#96ceb4", "#feca57", "#ff9ff3"}

type Config struct {
	Pet PetConfig `yaml:"pet"`
	UI  UIConfig  `yaml:"ui"`
	Log LogConfig `yaml:"log"`

	// Path is the file the config was read from, empty if none was found.
	Path string `yaml:"-"`
}

type PetConfig struct {
	Color         string        `yaml:"color"`
	DecayInterval time.Duration `yaml:"decay_interval"`
	RegenInterval time.Duration `yaml:"regen_interval"`
	NeglectChance float64       `yaml:"neglect_chance"`
}

type UIConfig struct {
	FrameInterval time.Duration `yaml:"frame_interval"`
	StarCount     int           `yaml:"star_count"`
	Palette       []string      `yaml:"palette"`
}

type LogConfig struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Pet: PetConfig{
			Color:         pet.DefaultColor,
			DecayInterval: pet.DecayInterval,
			RegenInterval: pet.RegenInterval,
			NeglectChance: pet.NeglectChance,
		},
		UI: UIConfig{
			FrameInterval: defaultTick,
			StarCount:     scene.DefaultStarCount,
			Palette:       append([]string(nil), DefaultPalette...),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns the config file location: MOODPET_CONFIG if set,
// otherwise ~/.config/moodpet/config.yaml.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName, configFile), nil
}

// Load reads the YAML file at path over the defaults. A missing file is not
// an error. Environment overrides are applied last, then the result is
// validated.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
		cfg.Path = path
	}

	if env := os.Getenv(EnvColor); env != "" {
		cfg.Pet.Color = env
	}
	if env := os.Getenv(EnvLogLevel); env != "" {
		cfg.Log.Level = env
	}

	if cfg.Log.Path == "" && path != "" {
		cfg.Log.Path = filepath.Join(filepath.Dir(path), logFile)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values a user can get wrong.
func (c *Config) Validate() error {
	switch {
	case c.Pet.DecayInterval <= 0:
		return fmt.Errorf("%w: pet.decay_interval must be positive", ErrInvalid)
	case c.Pet.RegenInterval <= 0:
		return fmt.Errorf("%w: pet.regen_interval must be positive", ErrInvalid)
	case c.Pet.NeglectChance < 0 || c.Pet.NeglectChance > 1:
		return fmt.Errorf("%w: pet.neglect_chance must be between 0 and 1", ErrInvalid)
	case c.UI.FrameInterval <= 0:
		return fmt.Errorf("%w: ui.frame_interval must be positive", ErrInvalid)
	case c.UI.StarCount < 0:
		return fmt.Errorf("%w: ui.star_count must not be negative", ErrInvalid)
	case len(c.UI.Palette) == 0:
		return fmt.Errorf("%w: ui.palette must not be empty", ErrInvalid)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses the configured log level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(l.Level))); err != nil {
		return 0, fmt.Errorf("%w: log.level %q", ErrInvalid, l.Level)
	}
	return level, nil
}

// PetEngine returns the engine settings. Clock, randomness and logger are
// left for the caller.
func (c *Config) PetEngine() pet.Config {
	chance := c.Pet.NeglectChance
	return pet.Config{
		DecayInterval: c.Pet.DecayInterval,
		RegenInterval: c.Pet.RegenInterval,
		NeglectChance: &chance,
	}
}
