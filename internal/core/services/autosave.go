package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/custodia-labs/blankpage/internal/core/domain"
	"github.com/custodia-labs/blankpage/internal/core/ports/driven"
	"github.com/custodia-labs/blankpage/internal/core/ports/driving"
	"github.com/custodia-labs/blankpage/internal/logger"
)

// Ensure AutoSaver implements the interface.
var _ driving.PersistenceService = (*AutoSaver)(nil)

// AutoSaver mirrors a workspace into a key-value store.
//
// Content changes are coalesced: each one cancels the pending write and
// schedules a new one after the debounce window, and the snapshot is taken
// when the timer fires. Active document changes are written immediately.
// The state present when the AutoSaver is created counts as already saved.
type AutoSaver struct {
	kv driven.KeyValueStore
	ws driving.WorkspaceService

	mu       sync.Mutex
	debounce time.Duration
	enabled  bool
	timer    *time.Timer
	gen      uint64
	lastHash uint64
	stopped  bool
	hooks    []func(error)

	// writeMu serialises store writes from timers and explicit saves.
	writeMu sync.Mutex
}

// AutoSaverOption configures an AutoSaver.
type AutoSaverOption func(*AutoSaver)

// WithDebounce sets the coalescing window. Non-positive values keep the default.
func WithDebounce(d time.Duration) AutoSaverOption {
	return func(a *AutoSaver) {
		if d > 0 {
			a.debounce = d
		}
	}
}

// WithAutoSaveEnabled sets whether content changes are written at all.
func WithAutoSaveEnabled(enabled bool) AutoSaverOption {
	return func(a *AutoSaver) {
		a.enabled = enabled
	}
}

// NewAutoSaver attaches an AutoSaver to ws.
func NewAutoSaver(kv driven.KeyValueStore, ws driving.WorkspaceService, opts ...AutoSaverOption) *AutoSaver {
	a := &AutoSaver{
		kv:       kv,
		ws:       ws,
		debounce: domain.DefaultDebounce,
		enabled:  true,
	}
	for _, opt := range opts {
		opt(a)
	}

	if encoded, err := EncodeDocuments(ws.Documents()); err == nil {
		a.lastHash = xxhash.Sum64String(encoded)
	}

	ws.OnChange(a.handleChange)
	return a
}

// SetDebounce changes the coalescing window for subsequent changes.
func (a *AutoSaver) SetDebounce(d time.Duration) {
	if d <= 0 {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.debounce = d
}

// SetEnabled turns debounced writes on or off.
// Disabling drops a pending write; enabling schedules one.
func (a *AutoSaver) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stopped {
		return
	}
	a.enabled = enabled
	a.cancelLocked()
	if enabled {
		a.scheduleLocked()
	}
}

// Enabled reports whether debounced writes are on.
func (a *AutoSaver) Enabled() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.enabled
}

// Pending reports whether a debounced write is scheduled.
func (a *AutoSaver) Pending() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.timer != nil
}

// OnSave registers fn to be called after every documents write attempt,
// with the write error or nil. Skipped writes are not reported.
func (a *AutoSaver) OnSave(fn func(error)) {
	if fn == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.hooks = append(a.hooks, fn)
}

// Flush writes a pending snapshot now. No-op when nothing is pending.
func (a *AutoSaver) Flush(ctx context.Context) error {
	a.mu.Lock()
	if a.timer == nil {
		a.mu.Unlock()
		return nil
	}
	a.cancelLocked()
	a.mu.Unlock()

	return a.writeDocuments(ctx, false)
}

// Save writes the documents and the active id now, even when nothing
// changed or autosave is disabled.
func (a *AutoSaver) Save(ctx context.Context) error {
	a.mu.Lock()
	a.cancelLocked()
	a.mu.Unlock()

	if err := a.writeDocuments(ctx, true); err != nil {
		return err
	}
	return a.writeActiveID(ctx, a.ws.ActiveID())
}

// Stop abandons any pending write and ignores later changes.
func (a *AutoSaver) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cancelLocked()
	a.stopped = true
}

func (a *AutoSaver) handleChange(c driving.Change) {
	a.mu.Lock()
	if a.stopped {
		a.mu.Unlock()
		return
	}
	if c.Has(driving.ChangeDocuments) {
		a.cancelLocked()
		if a.enabled {
			a.scheduleLocked()
		}
	}
	a.mu.Unlock()

	if c.Has(driving.ChangeActive) {
		if err := a.writeActiveID(context.Background(), a.ws.ActiveID()); err != nil {
			logger.Warn("Failed to save active document: %v", err)
		}
	}
}

func (a *AutoSaver) scheduleLocked() {
	a.gen++
	gen := a.gen
	a.timer = time.AfterFunc(a.debounce, func() {
		a.mu.Lock()
		if a.gen != gen || a.stopped {
			a.mu.Unlock()
			return
		}
		a.timer = nil
		a.mu.Unlock()

		if err := a.writeDocuments(context.Background(), false); err != nil {
			logger.Warn("Autosave failed: %v", err)
		}
	})
}

func (a *AutoSaver) cancelLocked() {
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.gen++
}

func (a *AutoSaver) writeDocuments(ctx context.Context, force bool) error {
	a.writeMu.Lock()
	defer a.writeMu.Unlock()

	encoded, err := EncodeDocuments(a.ws.Documents())
	if err != nil {
		return err
	}

	hash := xxhash.Sum64String(encoded)
	a.mu.Lock()
	unchanged := hash == a.lastHash
	a.mu.Unlock()
	if unchanged && !force {
		logger.Debug("Autosave skipped: documents unchanged")
		return nil
	}

	err = a.kv.Set(ctx, domain.KeyDocuments, encoded)
	if err != nil {
		err = fmt.Errorf("save documents: %w", err)
	} else {
		logger.Debug("Saved %d bytes of documents", len(encoded))
	}

	a.mu.Lock()
	if err == nil {
		a.lastHash = hash
	}
	hooks := append([]func(error){}, a.hooks...)
	a.mu.Unlock()

	for _, fn := range hooks {
		fn(err)
	}
	return err
}

func (a *AutoSaver) writeActiveID(ctx context.Context, id string) error {
	if err := a.kv.Set(ctx, domain.KeyActiveDocumentID, EncodeActiveID(id)); err != nil {
		return fmt.Errorf("save active document: %w", err)
	}
	return nil
}
