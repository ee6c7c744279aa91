// Package domain defines the core business entities for blankpage.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: One note holding opaque rich-text markup
//   - Workspace: A snapshot of the ordered collection and the active id
//   - Preferences: The user's boolean editor preferences
//   - Export: A rendered export payload with filename and media type
//   - AppConfig: Process configuration (storage backend, debounce window)
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
