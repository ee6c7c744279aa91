package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/blankpage/internal/core/domain"
)

func newTestServer(t *testing.T, export *mockExportService) *Server {
	t.Helper()
	ports := &Ports{Workspace: newTestWorkspace()}
	if export != nil {
		ports.Export = export
	}
	server, err := NewServer(ports)
	require.NoError(t, err)
	return server
}

func TestServer_handleListDocuments(t *testing.T) {
	server := newTestServer(t, nil)

	_, output, err := server.handleListDocuments(context.Background(), nil, ListDocumentsInput{})

	require.NoError(t, err)
	assert.Equal(t, 2, output.Count)
	assert.Equal(t, "a", output.ActiveID)
	require.Len(t, output.Documents, 2)
	assert.Equal(t, "a", output.Documents[0].ID)
	assert.Equal(t, "Alpha note", output.Documents[0].Title)
	assert.Equal(t, 4, output.Documents[0].WordCount)
	assert.True(t, output.Documents[0].Active)
	assert.Equal(t, "2023-11-14T22:13:20Z", output.Documents[0].LastModified)
	assert.False(t, output.Documents[1].Active)
}

func TestServer_handleGetDocument(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to the active document", func(t *testing.T) {
		server := newTestServer(t, nil)

		_, output, err := server.handleGetDocument(ctx, nil, DocumentInput{})

		require.NoError(t, err)
		assert.Equal(t, "a", output.ID)
		assert.Equal(t, "<div>Alpha <b>note</b></div><div>second line</div>", output.Markup)
		assert.Equal(t, "Alpha **note**\n\nsecond line", output.Text)
	})

	t.Run("by id", func(t *testing.T) {
		server := newTestServer(t, nil)

		_, output, err := server.handleGetDocument(ctx, nil, DocumentInput{ID: "b"})

		require.NoError(t, err)
		assert.Equal(t, "Beta", output.Title)
		assert.False(t, output.Active)
	})

	t.Run("unknown id", func(t *testing.T) {
		server := newTestServer(t, nil)

		_, _, err := server.handleGetDocument(ctx, nil, DocumentInput{ID: "missing"})

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestServer_handleCreateDocument(t *testing.T) {
	ctx := context.Background()

	t.Run("empty", func(t *testing.T) {
		server := newTestServer(t, nil)

		_, output, err := server.handleCreateDocument(ctx, nil, CreateDocumentInput{})

		require.NoError(t, err)
		assert.Equal(t, "new-1", output.ID)
		assert.Equal(t, "new-1", output.ActiveID)
		assert.Equal(t, 3, output.Count)
		assert.Equal(t, "new-1", server.ports.Workspace.Documents()[0].ID)
	})

	t.Run("with content", func(t *testing.T) {
		server := newTestServer(t, nil)

		_, output, err := server.handleCreateDocument(ctx, nil, CreateDocumentInput{Content: "<div>Hello</div>"})

		require.NoError(t, err)
		doc, err := server.ports.Workspace.Get(output.ID)
		require.NoError(t, err)
		assert.Equal(t, "<div>Hello</div>", doc.Content)
	})
}

func TestServer_handleUpdateDocument(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces content", func(t *testing.T) {
		server := newTestServer(t, nil)

		_, output, err := server.handleUpdateDocument(ctx, nil, UpdateDocumentInput{ID: "b", Content: "<div>Changed</div>"})

		require.NoError(t, err)
		assert.Equal(t, "a", output.ActiveID)
		doc, _ := server.ports.Workspace.Get("b")
		assert.Equal(t, "<div>Changed</div>", doc.Content)
	})

	t.Run("unknown id", func(t *testing.T) {
		server := newTestServer(t, nil)

		_, _, err := server.handleUpdateDocument(ctx, nil, UpdateDocumentInput{ID: "missing", Content: "x"})

		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Equal(t, 2, server.ports.Workspace.Len())
	})
}

func TestServer_handleSwitchDocument(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		id         string
		wantErr    error
		wantActive string
	}{
		{name: "known id", id: "b", wantActive: "b"},
		{name: "unknown id", id: "missing", wantErr: domain.ErrNotFound, wantActive: "a"},
		{name: "empty id", id: "", wantErr: domain.ErrInvalidInput, wantActive: "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(t, nil)

			_, _, err := server.handleSwitchDocument(ctx, nil, DocumentInput{ID: tt.id})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantActive, server.ports.Workspace.ActiveID())
		})
	}
}

func TestServer_handleDeleteDocument(t *testing.T) {
	ctx := context.Background()

	t.Run("active document", func(t *testing.T) {
		server := newTestServer(t, nil)

		_, output, err := server.handleDeleteDocument(ctx, nil, DocumentInput{ID: "a"})

		require.NoError(t, err)
		assert.Equal(t, "b", output.ActiveID)
		assert.Equal(t, 1, output.Count)
	})

	t.Run("last document leaves a fresh one", func(t *testing.T) {
		server := newTestServer(t, nil)

		_, _, err := server.handleDeleteDocument(ctx, nil, DocumentInput{ID: "a"})
		require.NoError(t, err)
		_, output, err := server.handleDeleteDocument(ctx, nil, DocumentInput{ID: "b"})

		require.NoError(t, err)
		assert.Equal(t, 1, output.Count)
		assert.Equal(t, "new-1", output.ActiveID)
	})

	t.Run("unknown id", func(t *testing.T) {
		server := newTestServer(t, nil)

		_, _, err := server.handleDeleteDocument(ctx, nil, DocumentInput{ID: "missing"})

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("empty id", func(t *testing.T) {
		server := newTestServer(t, nil)

		_, _, err := server.handleDeleteDocument(ctx, nil, DocumentInput{})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Equal(t, 2, server.ports.Workspace.Len())
	})
}

func TestServer_handleExportDocument(t *testing.T) {
	ctx := context.Background()

	t.Run("exports the active document", func(t *testing.T) {
		export := &mockExportService{location: "/tmp/document.txt"}
		server := newTestServer(t, export)

		_, output, err := server.handleExportDocument(ctx, nil, ExportDocumentInput{Format: "txt"})

		require.NoError(t, err)
		assert.Equal(t, "a", export.gotID)
		assert.Equal(t, domain.ExportFormatText, export.gotFormat)
		assert.Equal(t, "/tmp/document.txt", output.Location)
	})

	t.Run("unsupported format", func(t *testing.T) {
		server := newTestServer(t, &mockExportService{})

		_, _, err := server.handleExportDocument(ctx, nil, ExportDocumentInput{Format: "pdf"})

		assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	})

	t.Run("sink failure", func(t *testing.T) {
		server := newTestServer(t, &mockExportService{err: errors.New("disk full")})

		_, _, err := server.handleExportDocument(ctx, nil, ExportDocumentInput{ID: "b", Format: "doc"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
	})

	t.Run("no export service", func(t *testing.T) {
		server := newTestServer(t, nil)

		_, _, err := server.handleExportDocument(ctx, nil, ExportDocumentInput{Format: "txt"})

		assert.ErrorIs(t, err, ErrExportUnavailable)
	})
}
