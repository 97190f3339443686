// Package settings is the explicit application-settings service. Theme and
// language are read, watched, and updated here instead of through ambient
// mutable state, and every update is persisted to the config file.
package settings

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/cenkeray/cineglass/internal/adapter"
)

// Settings is the user-tunable application state.
type Settings struct {
	Theme    string // "dark" or "light"
	Language string // BCP 47 tag passed to the remote catalog
}

// Service owns the settings and notifies watchers on every update.
type Service struct {
	cfg    *adapter.Config
	save   func(*adapter.Config) error
	logger *slog.Logger

	mu       sync.Mutex
	current  Settings
	watchers []chan Settings
}

// NewService creates the service over a loaded configuration.
func NewService(cfg *adapter.Config, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		cfg:    cfg,
		save:   adapter.SaveConfig,
		logger: logger,
		current: Settings{
			Theme:    cfg.UI.Theme,
			Language: cfg.TMDB.Language,
		},
	}
}

// Current returns the settings as of now.
func (s *Service) Current() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Watch streams settings updates. The current value is emitted immediately.
func (s *Service) Watch() (<-chan Settings, func()) {
	ch := make(chan Settings, 1)

	s.mu.Lock()
	s.watchers = append(s.watchers, ch)
	pushSettings(ch, s.current)
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, w := range s.watchers {
			if w == ch {
				s.watchers = append(s.watchers[:i], s.watchers[i+1:]...)
				break
			}
		}
	}
	return ch, cancel
}

// SetTheme switches the color theme and persists it.
func (s *Service) SetTheme(theme string) error {
	if theme != "dark" && theme != "light" {
		return fmt.Errorf("unknown theme %q", theme)
	}
	return s.update(func(st *Settings) { st.Theme = theme })
}

// SetLanguage switches the catalog language and persists it. Feeds pick the
// new language up on their next reset.
func (s *Service) SetLanguage(tag string) error {
	if tag == "" {
		return fmt.Errorf("language tag must not be empty")
	}
	return s.update(func(st *Settings) { st.Language = tag })
}

func (s *Service) update(apply func(*Settings)) error {
	s.mu.Lock()
	apply(&s.current)
	s.cfg.UI.Theme = s.current.Theme
	s.cfg.TMDB.Language = s.current.Language
	updated := s.current
	watchers := append([]chan Settings(nil), s.watchers...)
	s.mu.Unlock()

	if err := s.save(s.cfg); err != nil {
		s.logger.Error("failed to persist settings", "error", err)
		return err
	}
	for _, ch := range watchers {
		pushSettings(ch, updated)
	}
	return nil
}

func pushSettings(ch chan Settings, st Settings) {
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- st:
	default:
	}
}
