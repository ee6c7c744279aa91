package mcp

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/custodia-labs/blankpage/internal/core/domain"
	"github.com/custodia-labs/blankpage/internal/core/ports/driven"
	"github.com/custodia-labs/blankpage/internal/core/services"
)

// newTestWorkspace returns a workspace holding "a" (active) and "b".
func newTestWorkspace() *services.Workspace {
	var n atomic.Int64
	ids := driven.IDGeneratorFunc(func() string {
		return fmt.Sprintf("new-%d", n.Add(1))
	})

	docs := []domain.Document{
		{ID: "a", Content: "<div>Alpha <b>note</b></div><div>second line</div>", LastModified: 1_700_000_000_000},
		{ID: "b", Content: "<div>Beta</div>", LastModified: 1_700_000_001_000},
	}
	return services.NewWorkspace(docs, "a", services.WithIDGenerator(ids))
}

// mockExportService is a mock implementation of driving.ExportService.
type mockExportService struct {
	gotID     string
	gotFormat domain.ExportFormat
	location  string
	err       error
}

func (m *mockExportService) Render(format domain.ExportFormat, content string) (domain.Export, error) {
	return domain.Export{Format: format, Filename: format.Filename(), Content: content}, m.err
}

func (m *mockExportService) ExportActive(_ context.Context, format domain.ExportFormat) (string, error) {
	m.gotFormat = format
	return m.location, m.err
}

func (m *mockExportService) ExportDocument(_ context.Context, id string, format domain.ExportFormat) (string, error) {
	m.gotID = id
	m.gotFormat = format
	return m.location, m.err
}
