package cmd

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodpet/internal/config"
	"moodpet/internal/scene"
	"moodpet/internal/stage"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestSceneCommandJSON(t *testing.T) {
	out, err := execute(t, "scene", "--color", "#ff0000", "--health", "20", "--mood", "sad", "--stars", "3")
	require.NoError(t, err)

	var sc scene.Scene
	require.NoError(t, json.Unmarshal([]byte(out), &sc))

	mesh, ok := sc.Avatar.Find(scene.NameBodyMesh)
	require.True(t, ok)
	assert.Equal(t, "#c22929", mesh.Color)

	mouth, ok := sc.Avatar.Find(scene.NameMouth)
	require.True(t, ok)
	assert.Equal(t, -0.4, mouth.Position.Y)
	assert.Len(t, sc.Stars, 3)
	assert.Len(t, sc.Lights, 4)
}

func TestSceneCommandDerivesMood(t *testing.T) {
	out, err := execute(t, "scene", "--happiness", "90", "--energy", "90", "--health", "90")
	require.NoError(t, err)

	var sc scene.Scene
	require.NoError(t, json.Unmarshal([]byte(out), &sc))

	sparkle, ok := sc.Avatar.Find(scene.NameSparkleLeft)
	require.True(t, ok)
	assert.True(t, sparkle.Visible, "high stats classify as happy")
}

func TestSceneCommandRender(t *testing.T) {
	out, err := execute(t, "scene", "--render", "--mood", "excited", "--width", "40", "--height", "20")
	require.NoError(t, err)
	assert.Contains(t, out, string(stage.GlyphCube))
	assert.Equal(t, 20, strings.Count(strings.TrimRight(out, "\n"), "\n")+1)
}

func TestSceneCommandRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"stat above range", []string{"scene", "--energy", "101"}, "invalid energy"},
		{"stat below range", []string{"scene", "--health", "-1"}, "invalid health"},
		{"unknown mood", []string{"scene", "--mood", "grumpy"}, "invalid mood"},
		{"negative stars", []string{"scene", "--stars", "-2"}, "invalid star count"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "moodpet (devel)\n", out)
}

func TestResolveConfigPath(t *testing.T) {
	t.Setenv(config.EnvConfig, "/from/env.yaml")

	root := newRootCmd()
	require.NoError(t, root.ParseFlags(nil))
	path, err := resolveConfigPath(root)
	require.NoError(t, err)
	assert.Equal(t, "/from/env.yaml", path)

	require.NoError(t, root.ParseFlags([]string{"--config", "/from/flag.yaml"}))
	path, err = resolveConfigPath(root)
	require.NoError(t, err)
	assert.Equal(t, "/from/flag.yaml", path)
}

func TestLoadConfigColorFlag(t *testing.T) {
	t.Setenv(config.EnvColor, "#111111")
	t.Setenv(config.EnvLogLevel, "")
	dir := t.TempDir()

	root := newRootCmd()
	require.NoError(t, root.ParseFlags([]string{"--config", filepath.Join(dir, "config.yaml")}))

	cfg, err := loadConfig(root)
	require.NoError(t, err)
	assert.Equal(t, "#111111", cfg.Pet.Color)

	require.NoError(t, root.Flags().Set("color", "#222222"))
	cfg, err = loadConfig(root)
	require.NoError(t, err)
	assert.Equal(t, "#222222", cfg.Pet.Color)
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pet:\n  neglect_chance: 2\n"), 0o644))

	root := newRootCmd()
	require.NoError(t, root.ParseFlags([]string{"--config", path}))

	_, err := loadConfig(root)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestOpenLogger(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	path := filepath.Join(t.TempDir(), "logs", "moodpet.log")
	logger, closeLog, err := openLogger(config.LogConfig{Path: path, Level: "info"})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("pet: hello", "mood", "happy")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "pet: hello")
	assert.Contains(t, string(data), "mood=happy")
	assert.NotContains(t, string(data), "hidden")
}

func TestOpenLoggerWithoutPath(t *testing.T) {
	logger, closeLog, err := openLogger(config.LogConfig{Level: "debug"})
	require.NoError(t, err)
	defer closeLog()
	logger.Info("dropped")

	_, _, err = openLogger(config.LogConfig{Level: "loud"})
	assert.ErrorIs(t, err, config.ErrInvalid)
}
