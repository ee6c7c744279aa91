// Package memory provides in-memory implementations of the driven ports.
// Nothing is persisted; state lives for the lifetime of the value.
// Used for tests and for the "memory" storage backend.
package memory
