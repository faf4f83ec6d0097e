package prefs

import (
	"context"
	"errors"
	"sync"

	"taskpurse/internal/common"
	"taskpurse/internal/currency"
	"taskpurse/internal/logging"
)

// Store is the preference boundary the screens use. Reads go to the local
// database on every screen mount; writes are fire-and-forget — a failed
// write is logged and the in-memory value stays authoritative for the rest
// of the session.
type Store struct {
	repo Repository
	log  logging.Logger

	mu      sync.Mutex
	session map[string]string // values set during this session
}

func NewStore(repo Repository, log logging.Logger) *Store {
	return &Store{
		repo:    repo,
		log:     log.With("module", "prefs"),
		session: make(map[string]string),
	}
}

func (s *Store) get(ctx context.Context, key, fallback string) string {
	s.mu.Lock()
	if v, ok := s.session[key]; ok {
		s.mu.Unlock()
		return v
	}
	s.mu.Unlock()

	v, err := s.repo.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			s.log.Error(ctx, "preference read failed", "key", key, "error", err)
		}
		return fallback
	}
	return v
}

func (s *Store) set(ctx context.Context, key, value string) {
	s.mu.Lock()
	s.session[key] = value
	s.mu.Unlock()

	if err := s.repo.Set(ctx, key, value); err != nil {
		// in-memory value stays authoritative
		s.log.Error(ctx, "preference write failed", "key", key, "error", err)
	}
}

// Theme returns the stored display theme, defaulting to light.
func (s *Store) Theme(ctx context.Context) string {
	v := s.get(ctx, common.PrefKeyTheme, common.ThemeLight)
	if v != common.ThemeLight && v != common.ThemeDark {
		return common.ThemeLight
	}
	return v
}

// SetTheme stores the display theme. Unknown values are ignored.
func (s *Store) SetTheme(ctx context.Context, theme string) {
	if theme != common.ThemeLight && theme != common.ThemeDark {
		s.log.Warn(ctx, "ignoring unknown theme", "theme", theme)
		return
	}
	s.set(ctx, common.PrefKeyTheme, theme)
}

// Currency returns the preferred currency code, defaulting to currency.Default.
func (s *Store) Currency(ctx context.Context) string {
	v := s.get(ctx, common.PrefKeyCurrency, currency.Default)
	if !currency.Supported(v) {
		return currency.Default
	}
	return v
}

// SetCurrency stores the preferred currency code. Unsupported codes are ignored.
func (s *Store) SetCurrency(ctx context.Context, code string) {
	if !currency.Supported(code) {
		s.log.Warn(ctx, "ignoring unsupported currency", "code", code)
		return
	}
	s.set(ctx, common.PrefKeyCurrency, code)
}
