// Package tui provides the interactive terminal editor for blankpage.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/blankpage/internal/core/domain"
	"github.com/custodia-labs/blankpage/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Workspace holds the documents and the active document.
	Workspace driving.WorkspaceService

	// Preferences holds the editor preferences.
	Preferences driving.PreferencesService

	// Export renders documents and writes them to the export directory.
	Export driving.ExportService

	// Persistence saves the workspace. Optional; without it the TUI
	// cannot save on demand or flush on quit.
	Persistence driving.PersistenceService

	// Clipboard exports to the system clipboard. Optional.
	Clipboard driving.ExportService

	// ConfigEvents delivers configuration reloads. Optional.
	ConfigEvents <-chan domain.AppConfig
}

// NewPorts creates a new Ports aggregate with the required services.
func NewPorts(
	workspace driving.WorkspaceService,
	preferences driving.PreferencesService,
	export driving.ExportService,
) *Ports {
	return &Ports{
		Workspace:   workspace,
		Preferences: preferences,
		Export:      export,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Workspace == nil {
		return ErrMissingWorkspaceService
	}
	if p.Preferences == nil {
		return ErrMissingPreferencesService
	}
	if p.Export == nil {
		return ErrMissingExportService
	}
	return nil
}
