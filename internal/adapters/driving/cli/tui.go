package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/blankpage/internal/adapters/driving/tui"
	"github.com/custodia-labs/blankpage/internal/logger"
)

// ErrNotTerminal is returned when the editor is started without a terminal.
var ErrNotTerminal = errors.New("the editor needs an interactive terminal")

// isTerminal reports whether stdout is a terminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the editor",
	Long: `Open the interactive editor.

Controls:
  tab       - Switch between sidebar and editor
  ctrl+n    - New document
  ctrl+s    - Save now
  ctrl+p    - Preview portable text
  alt+b/i/u - Bold, italic, underline
  alt+l/e/r - Align left, center, right
  f1        - Help
  ctrl+q    - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	if workspaceService == nil || preferencesService == nil || exportService == nil {
		return errors.New("workspace service not configured")
	}
	if !isTerminal() {
		return ErrNotTerminal
	}

	// Keep log output off the screen.
	if logPath != "" {
		closeLog, err := logger.ToFile(logPath)
		if err != nil {
			return fmt.Errorf("failed to open log: %w", err)
		}
		defer closeLog()
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	ports := &tui.Ports{
		Workspace:   workspaceService,
		Preferences: preferencesService,
		Export:      exportService,
		Persistence: persistenceService,
		Clipboard:   clipboardService,
	}

	if watchConfig != nil {
		events, err := watchConfig(ctx)
		if err != nil {
			logger.Warn("Config reload disabled: %v", err)
		} else {
			ports.ConfigEvents = events
		}
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(ctx)

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("TUI error: %w", err)
	}

	if persistenceService != nil {
		if err := persistenceService.Flush(context.WithoutCancel(ctx)); err != nil {
			return fmt.Errorf("failed to save: %w", err)
		}
	}
	return nil
}
