// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The Workspace owns the document collection. AutoSaver mirrors it into a
// KeyValueStore, PreferencesService owns the editor flags and ExportService
// renders documents for a FileSink.
package services
