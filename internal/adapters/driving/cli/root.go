// Package cli provides the blankpage command line interface.
// It implements a driving adapter following hexagonal architecture principles.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/blankpage/internal/core/domain"
	"github.com/custodia-labs/blankpage/internal/core/ports/driving"
	"github.com/custodia-labs/blankpage/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// skipServices marks commands that run without the document services.
const skipServices = "blankpage/skip-services"

// Services holds the core services the commands drive.
type Services struct {
	Workspace   driving.WorkspaceService
	Preferences driving.PreferencesService
	Export      driving.ExportService

	// Clipboard exports to the system clipboard. Optional.
	Clipboard driving.ExportService

	// Persistence saves the workspace after one-shot commands. Optional.
	Persistence driving.PersistenceService

	// Config is the configuration the services were built from.
	Config domain.AppConfig

	// LogPath is where the TUI writes its log. Empty disables it.
	LogPath string

	// WatchConfig starts delivering configuration reloads. Optional.
	WatchConfig func(ctx context.Context) (<-chan domain.AppConfig, error)
}

// Bootstrap builds the services and returns a cleanup func that writes
// pending changes and releases storage.
type Bootstrap func(ctx context.Context) (Services, func() error, error)

var (
	workspaceService   driving.WorkspaceService
	preferencesService driving.PreferencesService
	exportService      driving.ExportService
	clipboardService   driving.ExportService
	persistenceService driving.PersistenceService
	appConfig          = domain.DefaultAppConfig()
	logPath            string
	watchConfig        func(ctx context.Context) (<-chan domain.AppConfig, error)

	bootstrap Bootstrap
	cleanup   func() error

	verbose bool
)

// SetServices sets the services used by every command.
func SetServices(s Services) {
	workspaceService = s.Workspace
	preferencesService = s.Preferences
	exportService = s.Export
	clipboardService = s.Clipboard
	persistenceService = s.Persistence
	appConfig = s.Config
	logPath = s.LogPath
	watchConfig = s.WatchConfig
}

// SetBootstrap sets the func that builds the services the first time a
// command needs them.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

var rootCmd = &cobra.Command{
	Use:   "blankpage",
	Short: "A distraction-free rich-text note editor",
	Long: `Blank Page is a single-user note editor for the terminal.

Documents are kept as lightweight markup and saved automatically. Run
without arguments to open the editor, or use the subcommands to manage
documents from scripts.`,
	SilenceUsage:      true,
	PersistentPreRunE: prepare,
	RunE:              runTUI,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// prepare configures logging and builds the services once.
func prepare(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if cmd.Annotations[skipServices] == "true" {
		return nil
	}
	if bootstrap == nil || workspaceService != nil {
		return nil
	}

	s, done, err := bootstrap(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to start: %w", err)
	}
	SetServices(s)
	cleanup = done
	return nil
}

// Execute runs the root command and then the bootstrap cleanup.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)

	if cleanup != nil {
		if cerr := cleanup(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("failed to shut down: %w", cerr))
		}
		cleanup = nil
	}
	return err
}

// saveWorkspace writes the workspace after a one-shot change.
func saveWorkspace(ctx context.Context) error {
	if persistenceService == nil {
		return nil
	}
	if err := persistenceService.Save(ctx); err != nil {
		return fmt.Errorf("failed to save: %w", err)
	}
	return nil
}
