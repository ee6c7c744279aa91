package domain

import "time"

// Document is one user note.
// Content is opaque rich-text markup produced by an editing surface;
// it is stored and transformed as text, never as a parsed tree.
type Document struct {
	// ID is the unique identifier, assigned at creation and never changed.
	ID string `json:"id"`

	// Content is the editable markup payload.
	Content string `json:"content"`

	// LastModified is the Unix time in milliseconds of the last content change.
	// Used for display only, never for conflict resolution.
	LastModified int64 `json:"lastModified"`
}

// NewDocument returns an empty document stamped with the given time.
func NewDocument(id string, now time.Time) Document {
	return Document{
		ID:           id,
		LastModified: now.UnixMilli(),
	}
}

// ModifiedAt returns LastModified as a time.Time.
func (d Document) ModifiedAt() time.Time {
	return time.UnixMilli(d.LastModified)
}

// IsEmpty reports whether the document has no content at all.
func (d Document) IsEmpty() bool {
	return d.Content == ""
}

// Workspace is a point-in-time copy of the document collection.
// Documents are in display order (most recently created first).
type Workspace struct {
	Documents []Document
	ActiveID  string
}

// Active returns the active document, falling back to the first one.
// The second return value is false only for an empty workspace.
func (w Workspace) Active() (Document, bool) {
	for i := range w.Documents {
		if w.Documents[i].ID == w.ActiveID {
			return w.Documents[i], true
		}
	}
	if len(w.Documents) > 0 {
		return w.Documents[0], true
	}
	return Document{}, false
}

// Index returns the position of id in the collection, or -1.
func (w Workspace) Index(id string) int {
	for i := range w.Documents {
		if w.Documents[i].ID == id {
			return i
		}
	}
	return -1
}
