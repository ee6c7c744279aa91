// Package clipboard provides a FileSink that copies exports to the
// system clipboard instead of writing files.
package clipboard

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/custodia-labs/blankpage/internal/core/ports/driven"
)

// Ensure Sink implements the interface.
var _ driven.FileSink = (*Sink)(nil)

// Location is what Save reports as the destination.
const Location = "clipboard"

// Sink copies export content to the clipboard.
type Sink struct {
	write func(string) error
}

// NewSink creates a sink backed by the system clipboard.
func NewSink() *Sink {
	return &Sink{write: clipboard.WriteAll}
}

// Available reports whether a clipboard utility is usable on this system.
func Available() bool {
	return !clipboard.Unsupported
}

// Save copies content to the clipboard. Filename and media type are ignored.
func (s *Sink) Save(ctx context.Context, _ string, content, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := s.write(content); err != nil {
		return "", fmt.Errorf("copying to clipboard: %w", err)
	}
	return Location, nil
}
