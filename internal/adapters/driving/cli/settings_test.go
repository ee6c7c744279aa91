package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/blankpage/internal/core/domain"
)

func TestSettingsCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0)
	for _, cmd := range settingsCmd.Commands() {
		names = append(names, cmd.Name())
	}

	assert.ElementsMatch(t, []string{"show", "toggle", "set"}, names)
}

func TestSettingsShowCmd_WithoutServices(t *testing.T) {
	_, err := executeCommand("settings", "show")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "preferences service not configured")
}

func TestSettingsShowCmd(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand("settings")

	require.NoError(t, err)
	assert.Contains(t, out, "[Preferences]")
	assert.Contains(t, out, "Dark Mode:")
	assert.Contains(t, out, "(darkmode)")
	assert.Contains(t, out, "Word Counter:")
	assert.Contains(t, out, "[Storage]")
	assert.Contains(t, out, "Backend:  sqlite")
	assert.Contains(t, out, "Debounce: 500ms")
	assert.Contains(t, out, "Directory: (default)")
}

func TestSettingsToggleCmd(t *testing.T) {
	env, cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand("settings", "toggle", "darkmode")

	require.NoError(t, err)
	assert.Contains(t, out, "Dark Mode: on")
	assert.True(t, env.prefs.Get().DarkMode)

	out, err = executeCommand("settings", "toggle", "DarkMode")

	require.NoError(t, err)
	assert.Contains(t, out, "Dark Mode: off")
	assert.False(t, env.prefs.Get().DarkMode)
}

func TestSettingsToggleCmd_Unknown(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand("settings", "toggle", "telemetry")

	assert.ErrorIs(t, err, domain.ErrUnknownPreference)
}

func TestSettingsSetCmd(t *testing.T) {
	env, cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand("settings", "set", "wordcount", "off")

	require.NoError(t, err)
	assert.Contains(t, out, "Word Counter: off")
	assert.False(t, env.prefs.Get().ShowWordCount)

	raw, ok, err := env.kv.Get(t.Context(), domain.PreferenceWordCount.Key())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "false", raw)
}

func TestSettingsSetCmd_InvalidValue(t *testing.T) {
	env, cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand("settings", "set", "autosave", "maybe")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.True(t, env.prefs.Get().AutoSave)
}

func TestSettingsSetCmd_RequiresTwoArgs(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand("settings", "set", "autosave")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}

func TestParseOnOff(t *testing.T) {
	tests := []struct {
		in      string
		want    bool
		wantErr bool
	}{
		{"on", true, false},
		{"ON", true, false},
		{"yes", true, false},
		{"true", true, false},
		{"1", true, false},
		{"off", false, false},
		{"no", false, false},
		{"false", false, false},
		{"0", false, false},
		{"maybe", false, true},
		{"", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseOnOff(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePreference(t *testing.T) {
	pref, err := parsePreference(" Sidebar-Collapsed ")
	require.NoError(t, err)
	assert.Equal(t, domain.PreferenceSidebarCollapsed, pref)

	_, err = parsePreference("fontsize")
	assert.ErrorIs(t, err, domain.ErrUnknownPreference)
}

func TestPreferenceNames(t *testing.T) {
	assert.Equal(t,
		[]string{"darkmode", "wordcount", "spellcheck", "autosave", "sidebar-collapsed"},
		preferenceNames())
}
