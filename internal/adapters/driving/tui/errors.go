package tui

import "errors"

// ErrMissingWorkspaceService is returned when the workspace service is not provided.
var ErrMissingWorkspaceService = errors.New("tui: workspace service is required")

// ErrMissingPreferencesService is returned when the preferences service is not provided.
var ErrMissingPreferencesService = errors.New("tui: preferences service is required")

// ErrMissingExportService is returned when the export service is not provided.
var ErrMissingExportService = errors.New("tui: export service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")

// ErrPersistenceUnavailable is shown when saving is requested without persistence.
var ErrPersistenceUnavailable = errors.New("tui: saving is not available")

// ErrClipboardUnavailable is shown when copying is requested without a clipboard.
var ErrClipboardUnavailable = errors.New("tui: clipboard is not available")
