package settings

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cenkeray/cineglass/internal/adapter"
)

func newTestService() (*Service, *int) {
	svc := NewService(adapter.DefaultConfig(), adapter.NullLogger())
	saves := 0
	svc.save = func(*adapter.Config) error {
		saves++
		return nil
	}
	return svc, &saves
}

func TestCurrentReflectsConfig(t *testing.T) {
	cfg := adapter.DefaultConfig()
	cfg.UI.Theme = "light"
	cfg.TMDB.Language = "de-DE"

	svc := NewService(cfg, adapter.NullLogger())
	cur := svc.Current()
	assert.Equal(t, "light", cur.Theme)
	assert.Equal(t, "de-DE", cur.Language)
}

func TestSetThemePersistsAndNotifies(t *testing.T) {
	svc, saves := newTestService()

	ch, cancel := svc.Watch()
	defer cancel()
	assert.Equal(t, "dark", (<-ch).Theme)

	require.NoError(t, svc.SetTheme("light"))
	assert.Equal(t, "light", (<-ch).Theme)
	assert.Equal(t, "light", svc.Current().Theme)
	assert.Equal(t, 1, *saves)
}

func TestSetThemeRejectsUnknown(t *testing.T) {
	svc, saves := newTestService()

	assert.Error(t, svc.SetTheme("solarized"))
	assert.Equal(t, "dark", svc.Current().Theme)
	assert.Zero(t, *saves)
}

func TestSetLanguageUpdatesConfig(t *testing.T) {
	svc, _ := newTestService()

	require.NoError(t, svc.SetLanguage("fr-FR"))
	assert.Equal(t, "fr-FR", svc.Current().Language)
	assert.Equal(t, "fr-FR", svc.cfg.TMDB.Language)

	assert.Error(t, svc.SetLanguage(""))
	assert.Equal(t, "fr-FR", svc.Current().Language)
}

func TestSaveFailureSurfaces(t *testing.T) {
	svc := NewService(adapter.DefaultConfig(), adapter.NullLogger())
	svc.save = func(*adapter.Config) error { return errors.New("disk full") }

	assert.Error(t, svc.SetTheme("light"))
}
