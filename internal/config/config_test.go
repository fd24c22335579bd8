package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads values from the YAML file", func(t *testing.T) {
		// Given: A config file overriding every field
		path := writeConfig(t, `
log-level: debug
http-port: "9090"
seed: 42
telemetry:
  enabled: true
  endpoint: collector:4317
  service-name: ttt
`)

		// When: Loading it
		cfg, err := Load(path)

		// Then: The file values are used
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "9090", cfg.HTTPPort)
		assert.Equal(t, uint64(42), cfg.Seed)
		assert.True(t, cfg.Telemetry.Enabled)
		assert.Equal(t, "collector:4317", cfg.Telemetry.Endpoint)
		assert.Equal(t, "ttt", cfg.Telemetry.ServiceName)
		assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	})

	t.Run("Falls back to defaults when the file is missing", func(t *testing.T) {
		// Given: A path that does not exist
		path := filepath.Join(t.TempDir(), "missing.yml")

		// When: Loading it
		cfg, err := Load(path)

		// Then: Defaults apply
		require.NoError(t, err)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "8080", cfg.HTTPPort)
		assert.Zero(t, cfg.Seed)
		assert.False(t, cfg.Telemetry.Enabled)
		assert.Equal(t, "tic-tac-toe", cfg.Telemetry.ServiceName)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		// Given: A file and an environment variable for the same field
		path := writeConfig(t, "http-port: \"9090\"\n")
		t.Setenv("HTTP_PORT", "7070")

		// When: Loading it
		cfg, err := Load(path)

		// Then: The environment wins
		require.NoError(t, err)
		assert.Equal(t, "7070", cfg.HTTPPort)
	})

	t.Run("Rejects an unknown log level", func(t *testing.T) {
		path := writeConfig(t, "log-level: chatty\n")

		_, err := Load(path)

		assert.Error(t, err)
		assert.Panics(t, func() { MustLoad(path) })
	})
}

func TestPath(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	assert.Equal(t, DefaultPath, Path())

	t.Setenv("CONFIG_PATH", "/etc/ttt.yml")
	assert.Equal(t, "/etc/ttt.yml", Path())
}
