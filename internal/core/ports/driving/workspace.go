package driving

import "github.com/custodia-labs/blankpage/internal/core/domain"

// Change describes what a workspace mutation touched.
type Change int

const (
	// ChangeDocuments means the document collection changed
	// (content, order, membership).
	ChangeDocuments Change = 1 << iota

	// ChangeActive means the active document id changed.
	ChangeActive
)

// Has reports whether c includes flag.
func (c Change) Has(flag Change) bool {
	return c&flag != 0
}

// WorkspaceService owns the document collection and the active pointer.
// After construction the collection is never empty and the active id
// always references a present document.
type WorkspaceService interface {
	// Documents returns a copy of the collection in display order.
	Documents() []domain.Document

	// Len returns the number of documents.
	Len() int

	// Active returns the active document.
	Active() domain.Document

	// ActiveID returns the active document id.
	ActiveID() string

	// Get returns the document with id, or domain.ErrNotFound.
	Get(id string) (domain.Document, error)

	// Snapshot returns a copy of the collection and active id.
	Snapshot() domain.Workspace

	// Create prepends a new empty document, makes it active and returns its id.
	Create() string

	// Switch makes id the active document.
	// Unknown ids leave the active document unchanged and return false.
	Switch(id string) bool

	// UpdateContent replaces the content of id and bumps its timestamp.
	// Returns false (and changes nothing) when id is unknown.
	UpdateContent(id, content string) bool

	// Delete removes id. Removing the last document leaves a fresh empty
	// active document; removing the active one activates the first remaining.
	Delete(id string)

	// OnChange registers fn to be called after every mutation.
	// Listeners run synchronously on the mutating goroutine, outside the lock.
	OnChange(fn func(Change))
}
