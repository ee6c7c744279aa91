package driving

import (
	"context"
	"time"
)

// PersistenceService mirrors the workspace into the persistence gateway.
type PersistenceService interface {
	// Save writes the current workspace now, regardless of pending state.
	Save(ctx context.Context) error

	// Flush writes a pending debounced snapshot now. No-op when nothing is pending.
	Flush(ctx context.Context) error

	// Pending reports whether a debounced write is scheduled.
	Pending() bool

	// SetDebounce changes the coalescing window for subsequent mutations.
	SetDebounce(d time.Duration)

	// OnSave registers fn to be called after every documents write attempt.
	OnSave(fn func(error))

	// Stop abandons any pending write and detaches from the workspace.
	Stop()
}
