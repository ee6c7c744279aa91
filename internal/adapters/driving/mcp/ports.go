package mcp

import (
	"github.com/custodia-labs/blankpage/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces used by the MCP server.
type Ports struct {
	// Workspace owns the document collection.
	Workspace driving.WorkspaceService

	// Export renders and delivers documents. Optional.
	Export driving.ExportService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Workspace == nil {
		return ErrMissingWorkspaceService
	}
	return nil
}
