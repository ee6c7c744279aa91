package driven

import "context"

// FileSink receives exported documents.
// It is the download side effect: the core hands over a filename,
// a payload and a media type and does not observe what happens next.
type FileSink interface {
	// Save delivers content under filename.
	// Returns a human-readable location (a path, "clipboard", ...).
	Save(ctx context.Context, filename, content, mediaType string) (string, error)
}
