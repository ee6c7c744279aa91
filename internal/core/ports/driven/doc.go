// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - KeyValueStore: Persistence gateway for documents and preferences
//   - IDGenerator: Unique document identifiers
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
//   - FileSink: Destination for exported documents. Without it, export
//     rendering still works but ExportActive/ExportDocument fail.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
