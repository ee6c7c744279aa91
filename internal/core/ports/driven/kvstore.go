package driven

import "context"

// KeyValueStore is the persistence gateway: a durable string-keyed,
// string-valued store. Values are opaque to the store.
type KeyValueStore interface {
	// Get returns the value for key.
	// The boolean is false when the key has never been written or was deleted.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set writes value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the store.
	Close() error
}
