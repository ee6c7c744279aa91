package driving

import (
	"context"

	"github.com/custodia-labs/blankpage/internal/core/domain"
)

// PreferencesService manages the user's editor preferences.
type PreferencesService interface {
	// Get returns the current preferences.
	Get() domain.Preferences

	// Value returns a single preference.
	Value(pref domain.Preference) (bool, error)

	// Set changes a single preference and persists it immediately.
	Set(ctx context.Context, pref domain.Preference, value bool) error

	// Toggle flips a single preference, persists it and returns the new value.
	Toggle(ctx context.Context, pref domain.Preference) (bool, error)
}
