package services

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/blankpage/internal/core/domain"
	"github.com/custodia-labs/blankpage/internal/core/ports/driven"
	"github.com/custodia-labs/blankpage/internal/core/ports/driving"
)

// Ensure Workspace implements the interface.
var _ driving.WorkspaceService = (*Workspace)(nil)

// Workspace is the document store: an ordered collection of documents and
// the id of the active one.
//
// After NewWorkspace returns, and after every operation:
//   - the collection holds at least one document
//   - the active id references a document in the collection
//   - ids are unique
type Workspace struct {
	mu       sync.RWMutex
	docs     []domain.Document
	activeID string

	ids driven.IDGenerator
	now func() time.Time

	listenersMu sync.Mutex
	listeners   []func(driving.Change)
}

// WorkspaceOption configures a Workspace.
type WorkspaceOption func(*Workspace)

// WithIDGenerator sets the source of new document ids.
func WithIDGenerator(g driven.IDGenerator) WorkspaceOption {
	return func(w *Workspace) {
		if g != nil {
			w.ids = g
		}
	}
}

// WithClock sets the time source for LastModified stamps.
func WithClock(now func() time.Time) WorkspaceOption {
	return func(w *Workspace) {
		if now != nil {
			w.now = now
		}
	}
}

// NewUUIDv7 returns a time-ordered random id.
func NewUUIDv7() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// NewWorkspace builds the store from previously persisted state.
//
// With no documents the store starts with one empty active document.
// Documents without an id get a fresh one and repeated ids keep only
// their first occurrence. When activeID is not in the collection the
// first document becomes active.
func NewWorkspace(persisted []domain.Document, activeID string, opts ...WorkspaceOption) *Workspace {
	w := &Workspace{
		ids: driven.IDGeneratorFunc(NewUUIDv7),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}

	seen := make(map[string]struct{}, len(persisted))
	w.docs = make([]domain.Document, 0, len(persisted)+1)
	for _, doc := range persisted {
		switch _, dup := seen[doc.ID]; {
		case doc.ID == "":
			doc.ID = w.uniqueIDLocked(seen)
		case dup:
			continue
		default:
			seen[doc.ID] = struct{}{}
		}
		w.docs = append(w.docs, doc)
	}

	if len(w.docs) == 0 {
		doc := domain.NewDocument(w.uniqueIDLocked(seen), w.now())
		w.docs = append(w.docs, doc)
	}

	w.activeID = w.docs[0].ID
	if w.indexLocked(activeID) >= 0 {
		w.activeID = activeID
	}

	return w
}

// Documents returns a copy of the collection in display order.
func (w *Workspace) Documents() []domain.Document {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return slices.Clone(w.docs)
}

// Len returns the number of documents.
func (w *Workspace) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.docs)
}

// Active returns the active document, falling back to the first one.
func (w *Workspace) Active() domain.Document {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if i := w.indexLocked(w.activeID); i >= 0 {
		return w.docs[i]
	}
	return w.docs[0]
}

// ActiveID returns the active document id.
func (w *Workspace) ActiveID() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.activeID
}

// Get returns the document with id.
func (w *Workspace) Get(id string) (domain.Document, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	i := w.indexLocked(id)
	if i < 0 {
		return domain.Document{}, fmt.Errorf("document %q: %w", id, domain.ErrNotFound)
	}
	return w.docs[i], nil
}

// Snapshot returns a copy of the collection and the active id.
func (w *Workspace) Snapshot() domain.Workspace {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return domain.Workspace{
		Documents: slices.Clone(w.docs),
		ActiveID:  w.activeID,
	}
}

// Create prepends a new empty document, makes it active and returns its id.
func (w *Workspace) Create() string {
	w.mu.Lock()
	seen := make(map[string]struct{}, len(w.docs))
	for _, d := range w.docs {
		seen[d.ID] = struct{}{}
	}
	doc := domain.NewDocument(w.uniqueIDLocked(seen), w.now())
	w.docs = slices.Insert(w.docs, 0, doc)
	w.activeID = doc.ID
	w.mu.Unlock()

	w.notify(driving.ChangeDocuments | driving.ChangeActive)
	return doc.ID
}

// Switch makes id the active document.
// Unknown ids are ignored and reported by returning false.
func (w *Workspace) Switch(id string) bool {
	w.mu.Lock()
	if w.indexLocked(id) < 0 {
		w.mu.Unlock()
		return false
	}
	changed := w.activeID != id
	w.activeID = id
	w.mu.Unlock()

	if changed {
		w.notify(driving.ChangeActive)
	}
	return true
}

// UpdateContent replaces the content of id and bumps its timestamp.
// Order and the active id are unchanged. Returns false for unknown ids.
func (w *Workspace) UpdateContent(id, content string) bool {
	w.mu.Lock()
	i := w.indexLocked(id)
	if i < 0 {
		w.mu.Unlock()
		return false
	}
	w.docs[i].Content = content
	w.docs[i].LastModified = w.now().UnixMilli()
	w.mu.Unlock()

	w.notify(driving.ChangeDocuments)
	return true
}

// Delete removes id.
//
// Removing the last document leaves a fresh empty document, active.
// Removing the active document activates the first remaining one.
// Unknown ids change nothing.
func (w *Workspace) Delete(id string) {
	w.mu.Lock()
	i := w.indexLocked(id)
	if i < 0 {
		w.mu.Unlock()
		return
	}

	w.docs = slices.Delete(w.docs, i, i+1)
	change := driving.ChangeDocuments

	switch {
	case len(w.docs) == 0:
		seen := map[string]struct{}{id: {}}
		doc := domain.NewDocument(w.uniqueIDLocked(seen), w.now())
		w.docs = append(w.docs, doc)
		w.activeID = doc.ID
		change |= driving.ChangeActive
	case w.activeID == id:
		w.activeID = w.docs[0].ID
		change |= driving.ChangeActive
	}
	w.mu.Unlock()

	w.notify(change)
}

// OnChange registers fn to run after every mutation.
func (w *Workspace) OnChange(fn func(driving.Change)) {
	if fn == nil {
		return
	}
	w.listenersMu.Lock()
	defer w.listenersMu.Unlock()
	w.listeners = append(w.listeners, fn)
}

func (w *Workspace) notify(c driving.Change) {
	w.listenersMu.Lock()
	listeners := slices.Clone(w.listeners)
	w.listenersMu.Unlock()

	for _, fn := range listeners {
		fn(c)
	}
}

func (w *Workspace) indexLocked(id string) int {
	return slices.IndexFunc(w.docs, func(d domain.Document) bool {
		return d.ID == id
	})
}

// uniqueIDLocked draws ids until one is not in seen, then records it.
func (w *Workspace) uniqueIDLocked(seen map[string]struct{}) string {
	for {
		id := w.ids.NewID()
		if _, taken := seen[id]; id != "" && !taken {
			seen[id] = struct{}{}
			return id
		}
	}
}
