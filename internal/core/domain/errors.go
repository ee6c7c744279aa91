package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested document does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedFormat indicates an unknown export format.
	ErrUnsupportedFormat = errors.New("unsupported export format")

	// ErrUnknownPreference indicates a preference name that is not recognised.
	ErrUnknownPreference = errors.New("unknown preference")

	// ErrUnsupportedBackend indicates an unknown storage backend in configuration.
	ErrUnsupportedBackend = errors.New("unsupported storage backend")

	// ErrStoreClosed indicates the persistence store has been closed.
	ErrStoreClosed = errors.New("store closed")
)
