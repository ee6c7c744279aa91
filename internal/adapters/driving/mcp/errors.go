// Package mcp provides an MCP (Model Context Protocol) server adapter for blankpage.
// It lets AI assistants list, read, edit and export the user's notes.
package mcp

import "errors"

// ErrMissingWorkspaceService is returned when the workspace service is not provided.
var ErrMissingWorkspaceService = errors.New("mcp: workspace service is required")

// ErrExportUnavailable is returned by export_document when no export service is wired.
var ErrExportUnavailable = errors.New("mcp: export is not available")
