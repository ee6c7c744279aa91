package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/blankpage/internal/core/domain"
	"github.com/custodia-labs/blankpage/internal/core/ports/driven"
	"github.com/custodia-labs/blankpage/internal/core/ports/driving"
	"github.com/custodia-labs/blankpage/internal/logger"
	"github.com/custodia-labs/blankpage/internal/markup"
)

// Ensure ExportService implements the interface.
var _ driving.ExportService = (*ExportService)(nil)

// ErrNoSink is returned when exporting without a configured FileSink.
var ErrNoSink = errors.New("export sink not configured")

// ExportService renders documents and hands them to a FileSink.
type ExportService struct {
	ws   driving.WorkspaceService
	sink driven.FileSink
}

// NewExportService creates an export service. sink may be nil, in which
// case only Render works.
func NewExportService(ws driving.WorkspaceService, sink driven.FileSink) *ExportService {
	return &ExportService{ws: ws, sink: sink}
}

// WithSink returns a copy of the service that delivers to sink.
func (s *ExportService) WithSink(sink driven.FileSink) *ExportService {
	return &ExportService{ws: s.ws, sink: sink}
}

// Render converts markup to format.
func (s *ExportService) Render(format domain.ExportFormat, content string) (domain.Export, error) {
	var body string
	switch format {
	case domain.ExportFormatText:
		body = markup.PortableText(content)
	case domain.ExportFormatRichDocument:
		body = markup.RichDocument(content)
	default:
		return domain.Export{}, fmt.Errorf("%q: %w", format, domain.ErrUnsupportedFormat)
	}

	return domain.Export{
		Format:    format,
		Filename:  format.Filename(),
		MediaType: format.MediaType(),
		Content:   body,
	}, nil
}

// ExportActive renders the active document and delivers it.
func (s *ExportService) ExportActive(ctx context.Context, format domain.ExportFormat) (string, error) {
	return s.ExportDocument(ctx, s.ws.ActiveID(), format)
}

// ExportDocument renders the document with id and delivers it.
// Returns the location reported by the sink.
func (s *ExportService) ExportDocument(ctx context.Context, id string, format domain.ExportFormat) (string, error) {
	doc, err := s.ws.Get(id)
	if err != nil {
		return "", err
	}

	exp, err := s.Render(format, doc.Content)
	if err != nil {
		return "", err
	}

	if s.sink == nil {
		return "", ErrNoSink
	}

	location, err := s.sink.Save(ctx, exp.Filename, exp.Content, exp.MediaType)
	if err != nil {
		return "", fmt.Errorf("export %s: %w", exp.Filename, err)
	}

	logger.Debug("Exported %s (%d bytes) to %s", exp.Filename, len(exp.Content), location)
	return location, nil
}
