package adapter

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLevelParsing(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logLevel("debug"))
	assert.Equal(t, slog.LevelWarn, logLevel("WARNING"))
	assert.Equal(t, slog.LevelError, logLevel("Error"))
	assert.Equal(t, slog.LevelInfo, logLevel(""))
	assert.Equal(t, slog.LevelInfo, logLevel("bogus"))
}

func TestSetupLoggerStampsRecords(t *testing.T) {
	cfg := &LoggingConfig{
		File:  filepath.Join(t.TempDir(), "app.log"),
		Level: "INFO",
	}

	logger, err := SetupLogger(cfg)
	require.NoError(t, err)
	logger.Info("started")

	data, err := os.ReadFile(cfg.File)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"app":"cineglass"`)
	assert.Contains(t, string(data), `"pid":`)
	assert.Contains(t, string(data), "started")
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := expandHome("~/logs/app.log")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "logs", "app.log"), path)

	path, err = expandHome("/var/log/app.log")
	require.NoError(t, err)
	assert.Equal(t, "/var/log/app.log", path)
}
