package services

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/custodia-labs/blankpage/internal/core/domain"
	"github.com/custodia-labs/blankpage/internal/core/ports/driven"
	"github.com/custodia-labs/blankpage/internal/core/ports/driving"
	"github.com/custodia-labs/blankpage/internal/logger"
)

// Ensure PreferencesService implements the interface.
var _ driving.PreferencesService = (*PreferencesService)(nil)

// PreferencesService owns the editor preferences.
// Values are read once at construction and written through on every change.
type PreferencesService struct {
	kv driven.KeyValueStore

	mu    sync.RWMutex
	prefs domain.Preferences

	listenersMu sync.Mutex
	listeners   []func(domain.Preference, bool)
}

// NewPreferencesService reads every preference from kv.
// Missing, malformed or unreadable values use their defaults.
func NewPreferencesService(ctx context.Context, kv driven.KeyValueStore) *PreferencesService {
	prefs := domain.DefaultPreferences()

	for _, p := range domain.AllPreferences() {
		raw, ok, err := kv.Get(ctx, p.Key())
		if err != nil {
			logger.Warn("Failed to read %s: %v", p.Key(), err)
			continue
		}
		if !ok {
			continue
		}
		v, err := DecodeBool(raw)
		if err != nil {
			logger.Debug("Ignoring malformed %s: %v", p.Key(), err)
			continue
		}
		prefs = prefs.With(p, v)
	}

	return &PreferencesService{kv: kv, prefs: prefs}
}

// Get returns the current preferences.
func (s *PreferencesService) Get() domain.Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs
}

// Value returns a single preference.
func (s *PreferencesService) Value(pref domain.Preference) (bool, error) {
	if !pref.IsValid() {
		return false, fmt.Errorf("%q: %w", pref, domain.ErrUnknownPreference)
	}
	return s.Get().Get(pref), nil
}

// Set changes a preference and persists it.
// The cached value changes even when the write fails.
func (s *PreferencesService) Set(ctx context.Context, pref domain.Preference, value bool) error {
	if !pref.IsValid() {
		return fmt.Errorf("%q: %w", pref, domain.ErrUnknownPreference)
	}

	s.mu.Lock()
	s.prefs = s.prefs.With(pref, value)
	s.mu.Unlock()

	s.notify(pref, value)

	if err := s.kv.Set(ctx, pref.Key(), EncodeBool(value)); err != nil {
		return fmt.Errorf("save %s: %w", pref.Key(), err)
	}
	return nil
}

// Toggle flips a preference, persists it and returns the new value.
func (s *PreferencesService) Toggle(ctx context.Context, pref domain.Preference) (bool, error) {
	if !pref.IsValid() {
		return false, fmt.Errorf("%q: %w", pref, domain.ErrUnknownPreference)
	}
	value := !s.Get().Get(pref)
	return value, s.Set(ctx, pref, value)
}

// OnChange registers fn to run after every preference change.
func (s *PreferencesService) OnChange(fn func(domain.Preference, bool)) {
	if fn == nil {
		return
	}
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *PreferencesService) notify(pref domain.Preference, value bool) {
	s.listenersMu.Lock()
	listeners := slices.Clone(s.listeners)
	s.listenersMu.Unlock()

	for _, fn := range listeners {
		fn(pref, value)
	}
}
