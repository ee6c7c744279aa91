package driving

import (
	"context"

	"github.com/custodia-labs/blankpage/internal/core/domain"
)

// ExportService renders documents to portable formats and hands them to a sink.
type ExportService interface {
	// Render converts markup to the given format without side effects.
	Render(format domain.ExportFormat, markup string) (domain.Export, error)

	// ExportActive renders the active document and delivers it.
	// Returns the location reported by the sink.
	ExportActive(ctx context.Context, format domain.ExportFormat) (string, error)

	// ExportDocument renders the document with id and delivers it.
	ExportDocument(ctx context.Context, id string, format domain.ExportFormat) (string, error)
}
