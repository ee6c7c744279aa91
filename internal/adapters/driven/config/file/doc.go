// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data to the local filesystem.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage (~/.blankpage/config.toml)
//   - StateStore: TOML-based persistence gateway for documents and preferences
//   - WatchConfig: reloads a ConfigStore when its file changes on disk
package file
