package domain

import "time"

const unknownDescription = "Unknown"

// Preference identifies one boolean user preference.
type Preference string

// Available preferences.
const (
	// PreferenceDarkMode switches the editor to the dark theme.
	PreferenceDarkMode Preference = "darkmode"

	// PreferenceWordCount shows the word counter.
	PreferenceWordCount Preference = "wordcount"

	// PreferenceSpellCheck enables spellcheck decoration on the editing surface.
	PreferenceSpellCheck Preference = "spellcheck"

	// PreferenceAutoSave enables debounced persistence of the documents.
	PreferenceAutoSave Preference = "autosave"

	// PreferenceSidebarCollapsed collapses the sidebar to its narrow form.
	PreferenceSidebarCollapsed Preference = "sidebar-collapsed"
)

// Storage keys used by the persistence gateway.
const (
	// KeyDocuments holds the serialised ordered document collection.
	KeyDocuments = "blankpage-documents"

	// KeyActiveDocumentID holds the serialised active document id.
	KeyActiveDocumentID = "blankpage-active-document-id"

	keyPrefix = "blankpage-"
)

// IsValid returns true if the preference is recognised.
func (p Preference) IsValid() bool {
	switch p {
	case PreferenceDarkMode, PreferenceWordCount, PreferenceSpellCheck,
		PreferenceAutoSave, PreferenceSidebarCollapsed:
		return true
	default:
		return false
	}
}

// Key returns the storage key for the preference.
func (p Preference) Key() string {
	return keyPrefix + string(p)
}

// String returns the string representation.
func (p Preference) String() string {
	return string(p)
}

// Description returns a human-readable label for the preference.
func (p Preference) Description() string {
	switch p {
	case PreferenceDarkMode:
		return "Dark Mode"
	case PreferenceWordCount:
		return "Word Counter"
	case PreferenceSpellCheck:
		return "Spellcheck"
	case PreferenceAutoSave:
		return "Auto-save"
	case PreferenceSidebarCollapsed:
		return "Collapse Sidebar"
	default:
		return unknownDescription
	}
}

// AllPreferences returns all preferences in display order.
func AllPreferences() []Preference {
	return []Preference{
		PreferenceDarkMode,
		PreferenceWordCount,
		PreferenceSpellCheck,
		PreferenceAutoSave,
		PreferenceSidebarCollapsed,
	}
}

// Preferences holds the user's editor preferences.
// It is owned by the shell and passed to the store and surface explicitly.
type Preferences struct {
	DarkMode         bool
	ShowWordCount    bool
	SpellCheck       bool
	AutoSave         bool
	SidebarCollapsed bool
}

// DefaultPreferences returns the first-run preferences.
func DefaultPreferences() Preferences {
	return Preferences{
		DarkMode:         false,
		ShowWordCount:    true,
		SpellCheck:       true,
		AutoSave:         true,
		SidebarCollapsed: false,
	}
}

// Get returns the value of a single preference.
// Unknown preferences report false.
func (p Preferences) Get(pref Preference) bool {
	switch pref {
	case PreferenceDarkMode:
		return p.DarkMode
	case PreferenceWordCount:
		return p.ShowWordCount
	case PreferenceSpellCheck:
		return p.SpellCheck
	case PreferenceAutoSave:
		return p.AutoSave
	case PreferenceSidebarCollapsed:
		return p.SidebarCollapsed
	default:
		return false
	}
}

// With returns a copy with a single preference changed.
func (p Preferences) With(pref Preference, value bool) Preferences {
	switch pref {
	case PreferenceDarkMode:
		p.DarkMode = value
	case PreferenceWordCount:
		p.ShowWordCount = value
	case PreferenceSpellCheck:
		p.SpellCheck = value
	case PreferenceAutoSave:
		p.AutoSave = value
	case PreferenceSidebarCollapsed:
		p.SidebarCollapsed = value
	}
	return p
}

// StorageBackend selects the persistence gateway implementation.
type StorageBackend string

// Available storage backends.
const (
	// StorageBackendSQLite stores keys in a SQLite database.
	StorageBackendSQLite StorageBackend = "sqlite"

	// StorageBackendTOML stores keys in a TOML state file.
	StorageBackendTOML StorageBackend = "toml"

	// StorageBackendMemory keeps keys in memory only (nothing survives exit).
	StorageBackendMemory StorageBackend = "memory"
)

// IsValid returns true if the backend is recognised.
func (b StorageBackend) IsValid() bool {
	switch b {
	case StorageBackendSQLite, StorageBackendTOML, StorageBackendMemory:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b StorageBackend) String() string {
	return string(b)
}

// AppConfig holds process configuration read from the config file.
type AppConfig struct {
	// Backend is the persistence gateway implementation.
	Backend StorageBackend

	// DataDir is where the state database or file lives.
	// Empty means the default (~/.blankpage/data).
	DataDir string

	// Debounce is the autosave coalescing window.
	Debounce time.Duration

	// ExportDir is where exported files are written.
	// Empty means the current working directory.
	ExportDir string
}

// DefaultDebounce is the autosave window used when none is configured.
const DefaultDebounce = 500 * time.Millisecond

// DefaultAppConfig returns configuration with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Backend:  StorageBackendSQLite,
		Debounce: DefaultDebounce,
	}
}
