package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/blankpage/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage editor preferences",
	Long: `View and change editor preferences.

Preferences:
  darkmode           - Dark theme
  wordcount          - Show the word counter
  spellcheck         - Spellcheck indicator
  autosave           - Save automatically after edits
  sidebar-collapsed  - Hide the sidebar`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show preferences and configuration",
	RunE:  runSettingsShow,
}

var settingsToggleCmd = &cobra.Command{
	Use:       "toggle [preference]",
	Short:     "Flip a preference",
	Args:      cobra.ExactArgs(1),
	ValidArgs: preferenceNames(),
	RunE:      runSettingsToggle,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [preference] [on|off]",
	Short: "Set a preference",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsToggleCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func preferenceNames() []string {
	prefs := domain.AllPreferences()
	names := make([]string, len(prefs))
	for i, p := range prefs {
		names[i] = p.String()
	}
	return names
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if preferencesService == nil {
		return errors.New("preferences service not configured")
	}

	prefs := preferencesService.Get()

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Preferences]")
	for _, p := range domain.AllPreferences() {
		cmd.Printf("  %-18s %-3s  (%s)\n", p.Description()+":", onOff(prefs.Get(p)), p)
	}
	cmd.Println()

	cmd.Println("[Storage]")
	cmd.Printf("  Backend:  %s\n", appConfig.Backend)
	cmd.Printf("  Data dir: %s\n", orDefault(appConfig.DataDir))
	cmd.Printf("  Debounce: %s\n", appConfig.Debounce)
	cmd.Println()

	cmd.Println("[Export]")
	cmd.Printf("  Directory: %s\n", orDefault(appConfig.ExportDir))
	return nil
}

func runSettingsToggle(cmd *cobra.Command, args []string) error {
	if preferencesService == nil {
		return errors.New("preferences service not configured")
	}

	pref, err := parsePreference(args[0])
	if err != nil {
		return err
	}

	value, err := preferencesService.Toggle(cmd.Context(), pref)
	if err != nil {
		return fmt.Errorf("failed to toggle %s: %w", pref, err)
	}

	cmd.Printf("%s: %s\n", pref.Description(), onOff(value))
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if preferencesService == nil {
		return errors.New("preferences service not configured")
	}

	pref, err := parsePreference(args[0])
	if err != nil {
		return err
	}
	value, err := parseOnOff(args[1])
	if err != nil {
		return err
	}

	if err := preferencesService.Set(cmd.Context(), pref, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", pref, err)
	}

	cmd.Printf("%s: %s\n", pref.Description(), onOff(value))
	return nil
}

func parsePreference(name string) (domain.Preference, error) {
	pref := domain.Preference(strings.ToLower(strings.TrimSpace(name)))
	if !pref.IsValid() {
		return "", fmt.Errorf("%q (valid: %s): %w",
			name, strings.Join(preferenceNames(), ", "), domain.ErrUnknownPreference)
	}
	return pref, nil
}

func parseOnOff(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("value %q must be on or off: %w", s, domain.ErrInvalidInput)
	}
	return v, nil
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func orDefault(s string) string {
	if s == "" {
		return "(default)"
	}
	return s
}
