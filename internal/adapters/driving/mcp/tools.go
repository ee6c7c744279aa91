package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/blankpage/internal/core/domain"
	"github.com/custodia-labs/blankpage/internal/markup"
)

// DocumentSummary describes a document without its content.
type DocumentSummary struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	WordCount    int    `json:"word_count"`
	LastModified string `json:"last_modified"`
	Active       bool   `json:"active"`
}

// ListDocumentsInput is the input schema for list_documents.
type ListDocumentsInput struct{}

// ListDocumentsOutput is the output schema for list_documents.
type ListDocumentsOutput struct {
	Documents []DocumentSummary `json:"documents"`
	ActiveID  string            `json:"active_id"`
	Count     int               `json:"count"`
}

// DocumentInput identifies a document. An empty id means the active document.
type DocumentInput struct {
	ID string `json:"id,omitempty" jsonschema:"document id (defaults to the active document)"`
}

// GetDocumentOutput is the output schema for get_document.
type GetDocumentOutput struct {
	DocumentSummary
	Markup string `json:"markup"`
	Text   string `json:"text"`
}

// CreateDocumentInput is the input schema for create_document.
type CreateDocumentInput struct {
	Content string `json:"content,omitempty" jsonschema:"initial HTML markup of the new document"`
}

// UpdateDocumentInput is the input schema for update_document.
type UpdateDocumentInput struct {
	ID      string `json:"id" jsonschema:"document id"`
	Content string `json:"content" jsonschema:"replacement HTML markup"`
}

// ExportDocumentInput is the input schema for export_document.
type ExportDocumentInput struct {
	ID     string `json:"id,omitempty" jsonschema:"document id (defaults to the active document)"`
	Format string `json:"format" jsonschema:"export format: txt or doc"`
}

// ExportDocumentOutput is the output schema for export_document.
type ExportDocumentOutput struct {
	ID       string `json:"id"`
	Format   string `json:"format"`
	Location string `json:"location"`
}

// WorkspaceOutput reports the state after a mutation.
type WorkspaceOutput struct {
	ID       string `json:"id"`
	ActiveID string `json:"active_id"`
	Count    int    `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_documents",
		Description: "List all notes, most recent first",
	}, s.handleListDocuments)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_document",
		Description: "Read a note as HTML markup and as portable text",
	}, s.handleGetDocument)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_document",
		Description: "Create a new note and make it active",
	}, s.handleCreateDocument)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "update_document",
		Description: "Replace the content of a note",
	}, s.handleUpdateDocument)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "switch_document",
		Description: "Make a note the active one",
	}, s.handleSwitchDocument)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "delete_document",
		Description: "Delete a note. Deleting the last note leaves a fresh empty one",
	}, s.handleDeleteDocument)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "export_document",
		Description: "Export a note as plain text (txt) or a Word document (doc)",
	}, s.handleExportDocument)
}

func (s *Server) handleListDocuments(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ ListDocumentsInput,
) (*mcp.CallToolResult, ListDocumentsOutput, error) {
	snap := s.ports.Workspace.Snapshot()

	output := ListDocumentsOutput{
		Documents: make([]DocumentSummary, len(snap.Documents)),
		ActiveID:  snap.ActiveID,
		Count:     len(snap.Documents),
	}
	for i := range snap.Documents {
		output.Documents[i] = summarise(snap.Documents[i], snap.ActiveID)
	}

	return nil, output, nil
}

func (s *Server) handleGetDocument(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input DocumentInput,
) (*mcp.CallToolResult, GetDocumentOutput, error) {
	doc, err := s.lookup(input.ID)
	if err != nil {
		return nil, GetDocumentOutput{}, err
	}

	return nil, GetDocumentOutput{
		DocumentSummary: summarise(doc, s.ports.Workspace.ActiveID()),
		Markup:          doc.Content,
		Text:            markup.PortableText(doc.Content),
	}, nil
}

func (s *Server) handleCreateDocument(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input CreateDocumentInput,
) (*mcp.CallToolResult, WorkspaceOutput, error) {
	ws := s.ports.Workspace

	id := ws.Create()
	if input.Content != "" {
		ws.UpdateContent(id, input.Content)
	}

	return nil, s.state(id), nil
}

func (s *Server) handleUpdateDocument(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input UpdateDocumentInput,
) (*mcp.CallToolResult, WorkspaceOutput, error) {
	if !s.ports.Workspace.UpdateContent(input.ID, input.Content) {
		return nil, WorkspaceOutput{}, fmt.Errorf("document %q: %w", input.ID, domain.ErrNotFound)
	}

	return nil, s.state(input.ID), nil
}

func (s *Server) handleSwitchDocument(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input DocumentInput,
) (*mcp.CallToolResult, WorkspaceOutput, error) {
	if input.ID == "" {
		return nil, WorkspaceOutput{}, fmt.Errorf("id is required: %w", domain.ErrInvalidInput)
	}
	if _, err := s.lookup(input.ID); err != nil {
		return nil, WorkspaceOutput{}, err
	}

	s.ports.Workspace.Switch(input.ID)

	return nil, s.state(input.ID), nil
}

func (s *Server) handleDeleteDocument(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input DocumentInput,
) (*mcp.CallToolResult, WorkspaceOutput, error) {
	if input.ID == "" {
		return nil, WorkspaceOutput{}, fmt.Errorf("id is required: %w", domain.ErrInvalidInput)
	}
	if _, err := s.lookup(input.ID); err != nil {
		return nil, WorkspaceOutput{}, err
	}

	s.ports.Workspace.Delete(input.ID)

	return nil, s.state(input.ID), nil
}

func (s *Server) handleExportDocument(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExportDocumentInput,
) (*mcp.CallToolResult, ExportDocumentOutput, error) {
	if s.ports.Export == nil {
		return nil, ExportDocumentOutput{}, ErrExportUnavailable
	}

	format := domain.ExportFormat(input.Format)
	if !format.IsValid() {
		return nil, ExportDocumentOutput{}, fmt.Errorf("format %q: %w", input.Format, domain.ErrUnsupportedFormat)
	}

	doc, err := s.lookup(input.ID)
	if err != nil {
		return nil, ExportDocumentOutput{}, err
	}

	location, err := s.ports.Export.ExportDocument(ctx, doc.ID, format)
	if err != nil {
		return nil, ExportDocumentOutput{}, err
	}

	return nil, ExportDocumentOutput{
		ID:       doc.ID,
		Format:   string(format),
		Location: location,
	}, nil
}

// lookup returns the document with id, or the active document for "".
func (s *Server) lookup(id string) (domain.Document, error) {
	if id == "" {
		return s.ports.Workspace.Active(), nil
	}
	return s.ports.Workspace.Get(id)
}

func (s *Server) state(id string) WorkspaceOutput {
	ws := s.ports.Workspace
	return WorkspaceOutput{
		ID:       id,
		ActiveID: ws.ActiveID(),
		Count:    ws.Len(),
	}
}

func summarise(doc domain.Document, activeID string) DocumentSummary {
	return DocumentSummary{
		ID:           doc.ID,
		Title:        markup.Title(doc.Content),
		WordCount:    markup.WordCount(doc.Content),
		LastModified: doc.ModifiedAt().UTC().Format(time.RFC3339),
		Active:       doc.ID == activeID,
	}
}
