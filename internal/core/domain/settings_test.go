package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestPreference_IsValid tests all valid and invalid preferences
func TestPreference_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		pref     Preference
		expected bool
	}{
		{name: "darkmode is valid", pref: PreferenceDarkMode, expected: true},
		{name: "wordcount is valid", pref: PreferenceWordCount, expected: true},
		{name: "spellcheck is valid", pref: PreferenceSpellCheck, expected: true},
		{name: "autosave is valid", pref: PreferenceAutoSave, expected: true},
		{name: "sidebar-collapsed is valid", pref: PreferenceSidebarCollapsed, expected: true},
		{name: "empty string is invalid", pref: Preference(""), expected: false},
		{name: "unknown is invalid", pref: Preference("fontsize"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.pref.IsValid())
		})
	}
}

func TestPreference_Key(t *testing.T) {
	assert.Equal(t, "blankpage-darkmode", PreferenceDarkMode.Key())
	assert.Equal(t, "blankpage-wordcount", PreferenceWordCount.Key())
	assert.Equal(t, "blankpage-spellcheck", PreferenceSpellCheck.Key())
	assert.Equal(t, "blankpage-autosave", PreferenceAutoSave.Key())
	assert.Equal(t, "blankpage-sidebar-collapsed", PreferenceSidebarCollapsed.Key())
}

func TestPreference_Description(t *testing.T) {
	for _, p := range AllPreferences() {
		assert.NotEqual(t, unknownDescription, p.Description(), p.String())
	}
	assert.Equal(t, unknownDescription, Preference("nope").Description())
}

func TestAllPreferences_AreValid(t *testing.T) {
	prefs := AllPreferences()
	assert.Len(t, prefs, 5)
	for _, p := range prefs {
		assert.True(t, p.IsValid())
	}
}

func TestDefaultPreferences(t *testing.T) {
	p := DefaultPreferences()

	assert.False(t, p.DarkMode)
	assert.True(t, p.ShowWordCount)
	assert.True(t, p.SpellCheck)
	assert.True(t, p.AutoSave)
	assert.False(t, p.SidebarCollapsed)
}

func TestPreferences_GetWith(t *testing.T) {
	p := DefaultPreferences()

	for _, pref := range AllPreferences() {
		flipped := p.With(pref, !p.Get(pref))
		assert.Equal(t, !p.Get(pref), flipped.Get(pref), pref.String())

		// Only the targeted preference changes.
		for _, other := range AllPreferences() {
			if other != pref {
				assert.Equal(t, p.Get(other), flipped.Get(other))
			}
		}
	}
}

func TestPreferences_UnknownIsFalseAndIgnored(t *testing.T) {
	p := DefaultPreferences()

	assert.False(t, p.Get(Preference("unknown")))
	assert.Equal(t, p, p.With(Preference("unknown"), true))
}

func TestStorageBackend_IsValid(t *testing.T) {
	tests := []struct {
		backend  StorageBackend
		expected bool
	}{
		{StorageBackendSQLite, true},
		{StorageBackendTOML, true},
		{StorageBackendMemory, true},
		{StorageBackend(""), false},
		{StorageBackend("postgres"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.backend), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.backend.IsValid())
		})
	}
}

func TestDefaultAppConfig(t *testing.T) {
	cfg := DefaultAppConfig()

	assert.Equal(t, StorageBackendSQLite, cfg.Backend)
	assert.Equal(t, 500*time.Millisecond, cfg.Debounce)
	assert.Empty(t, cfg.DataDir)
	assert.Empty(t, cfg.ExportDir)
}
