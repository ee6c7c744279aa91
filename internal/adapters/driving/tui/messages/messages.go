// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/blankpage/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewEditor is the sidebar plus the writing surface.
	ViewEditor ViewType = iota
	// ViewPreview shows the portable text rendering of the active document.
	ViewPreview
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewEditor:
		return "editor"
	case ViewPreview:
		return "preview"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Pane identifies which part of the editor view has keyboard focus.
type Pane int

const (
	// PaneEditor is the writing surface.
	PaneEditor Pane = iota
	// PaneSidebar is the sidebar.
	PaneSidebar
)

// String returns the string representation of the pane.
func (p Pane) String() string {
	switch p {
	case PaneEditor:
		return "editor"
	case PaneSidebar:
		return "sidebar"
	default:
		return "unknown"
	}
}

// NewDocumentRequested asks for a new document.
type NewDocumentRequested struct{}

// DocumentSelected asks to make a document active.
type DocumentSelected struct {
	ID string
}

// DocumentDeleteRequested asks to delete a document.
type DocumentDeleteRequested struct {
	ID string
}

// PreferenceToggled asks to flip a preference.
type PreferenceToggled struct {
	Preference domain.Preference
}

// FullscreenToggled asks to enter or leave the alternate screen.
type FullscreenToggled struct{}

// ExportRequested asks to export the active document.
type ExportRequested struct {
	Format domain.ExportFormat
}

// Exported carries the outcome of an export.
type Exported struct {
	Format   domain.ExportFormat
	Location string
	Err      error
}

// Saved carries the outcome of a documents write.
type Saved struct {
	Err error
}

// ConfigReloaded carries the configuration after config.toml changed.
type ConfigReloaded struct {
	Config domain.AppConfig
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
