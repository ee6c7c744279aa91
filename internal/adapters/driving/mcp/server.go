package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/blankpage/internal/logger"
)

// Version is the MCP server version.
const Version = "0.1.0"

// ServerName is the implementation name announced to clients.
const ServerName = "blankpage"

// shutdownTimeout bounds how long RunHTTP waits for open sessions on exit.
const shutdownTimeout = 5 * time.Second

// Server exposes the user's notes to AI assistants. Every tool call goes
// through the same workspace the editor uses, so edits made here are
// picked up by autosave like any other change.
type Server struct {
	ports  *Ports
	server *mcp.Server
}

// NewServer creates a server over the workspace and, when set, the export
// service.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	impl := &mcp.Implementation{
		Name:    ServerName,
		Version: Version,
	}
	opts := &mcp.ServerOptions{
		Instructions: instructions(ports),
	}

	s := &Server{
		ports:  ports,
		server: mcp.NewServer(impl, opts),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// instructions tells the client how notes are stored and what it may do.
func instructions(ports *Ports) string {
	text := "Blank Page keeps a list of rich-text notes, one of which is active. " +
		"Note content is HTML markup made of <div> blocks with <b>, <i> and <u> emphasis. " +
		"Omit the id to work on the active note."
	if ports.Export == nil {
		return text + " Export is disabled in this session."
	}
	return text + " export_document writes a note as plain text (txt) or a Word document (doc)."
}

// Run serves notes over stdio until ctx is cancelled or the assistant
// closes the pipe.
func (s *Server) Run(ctx context.Context) error {
	logger.Debug("Serving %d notes over stdio", s.ports.Workspace.Len())
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP serves notes over streamable HTTP on addr until ctx is
// cancelled. Open sessions get shutdownTimeout to finish.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("MCP server shutdown: %v", err)
		}
	}()

	logger.Debug("Serving %d notes on %s", s.ports.Workspace.Len(), addr)
	if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("mcp http server: %w", err)
	}
	return nil
}
