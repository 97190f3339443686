package adapter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "https://api.themoviedb.org/3", cfg.TMDB.BaseURL)
	assert.Equal(t, "en-US", cfg.TMDB.Language)
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.False(t, cfg.IsConfigured())

	cfg.TMDB.APIKey = "abc"
	assert.True(t, cfg.IsConfigured())
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.TMDB.APIKey = "secret-key"
	cfg.UI.Theme = "light"
	cfg.TMDB.Language = "de-DE"
	require.NoError(t, SaveConfig(cfg))

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "secret-key", loaded.TMDB.APIKey)
	assert.Equal(t, "light", loaded.UI.Theme)
	assert.Equal(t, "de-DE", loaded.TMDB.Language)
	assert.True(t, loaded.IsConfigured())
}

func TestDataPathIsUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, filepath.Join(home, ".local", "share", "cineglass"), DataPath())
}
