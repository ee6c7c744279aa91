package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/blankpage/internal/core/domain"
	"github.com/custodia-labs/blankpage/internal/core/ports/driven"
	"github.com/custodia-labs/blankpage/internal/logger"
)

// Ensure StateStore implements the interface.
var _ driven.KeyValueStore = (*StateStore)(nil)

// StateFile is the state file name inside the data directory.
const StateFile = "state.toml"

// BackupSuffix is appended to an unreadable state file when it is set aside.
const BackupSuffix = ".bak"

// stateDocument is the on-disk layout of the state file.
type stateDocument struct {
	State map[string]string `toml:"state"`
}

// StateStore is a driven.KeyValueStore kept in a single TOML file.
// Every write rewrites the whole file through a temporary file and rename.
type StateStore struct {
	mu       sync.RWMutex
	filePath string
	values   map[string]string
	closed   bool
}

// NewStateStore opens the state file in dataDir, creating the directory.
// An unparseable state file is moved to StateFile+BackupSuffix and the
// store starts empty.
func NewStateStore(dataDir string) (*StateStore, error) {
	if dataDir == "" {
		base, err := BaseDir()
		if err != nil {
			return nil, err
		}
		dataDir = filepath.Join(base, "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	s := &StateStore{
		filePath: filepath.Join(dataDir, StateFile),
		values:   make(map[string]string),
	}

	data, err := os.ReadFile(s.filePath)
	switch {
	case os.IsNotExist(err):
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("reading state file: %w", err)
	}

	var doc stateDocument
	if err := toml.Unmarshal(data, &doc); err != nil {
		backup := s.filePath + BackupSuffix
		logger.Warn("Ignoring unreadable state file %s: %v", s.filePath, err)
		if rerr := os.Rename(s.filePath, backup); rerr != nil {
			logger.Warn("Failed to move state file to %s: %v", backup, rerr)
		}
		return s, nil
	}
	if doc.State != nil {
		s.values = doc.State
	}
	return s, nil
}

// Path returns the state file path.
func (s *StateStore) Path() string {
	return s.filePath
}

// Get returns the value stored under key.
func (s *StateStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return "", false, domain.ErrStoreClosed
	}
	val, ok := s.values[key]
	return val, ok, nil
}

// Set stores value under key and rewrites the file.
func (s *StateStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return domain.ErrStoreClosed
	}

	prev, had := s.values[key]
	s.values[key] = value
	if err := s.save(); err != nil {
		if had {
			s.values[key] = prev
		} else {
			delete(s.values, key)
		}
		return err
	}
	return nil
}

// Delete removes key and rewrites the file.
func (s *StateStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return domain.ErrStoreClosed
	}

	prev, had := s.values[key]
	if !had {
		return nil
	}
	delete(s.values, key)
	if err := s.save(); err != nil {
		s.values[key] = prev
		return err
	}
	return nil
}

// Close marks the store closed.
func (s *StateStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// save writes the state file atomically (caller must hold lock).
func (s *StateStore) save() error {
	data, err := toml.Marshal(stateDocument{State: s.values})
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.filePath), ".state-*.toml")
	if err != nil {
		return fmt.Errorf("writing state file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing state file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0600); err != nil {
		return fmt.Errorf("writing state file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.filePath); err != nil {
		return fmt.Errorf("replacing state file: %w", err)
	}
	return nil
}
