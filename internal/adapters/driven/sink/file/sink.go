// Package file provides a FileSink that writes exports to a directory.
package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/custodia-labs/blankpage/internal/core/ports/driven"
)

// Ensure Sink implements the interface.
var _ driven.FileSink = (*Sink)(nil)

// maxCopies bounds the search for a free "name (n).ext" filename.
const maxCopies = 1000

// Sink writes exports into a directory. Existing files are never
// overwritten: a second document.txt becomes "document (1).txt".
type Sink struct {
	mu  sync.RWMutex
	dir string
}

// NewSink creates a sink writing into dir. An empty dir means the current
// working directory; a leading "~" is expanded to the home directory.
func NewSink(dir string) *Sink {
	return &Sink{dir: dir}
}

// Dir returns the configured directory.
func (s *Sink) Dir() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dir
}

// SetDir changes the directory used by subsequent saves.
func (s *Sink) SetDir(dir string) {
	s.mu.Lock()
	s.dir = dir
	s.mu.Unlock()
}

// Save writes content to a free filename and returns its absolute path.
// The media type is not used; the filename carries the extension.
func (s *Sink) Save(ctx context.Context, filename, content, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dir, err := expandDir(s.Dir())
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}

	base := filepath.Base(filename)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	for n := 0; n < maxCopies; n++ {
		name := base
		if n > 0 {
			name = fmt.Sprintf("%s (%d)%s", stem, n, ext)
		}
		path := filepath.Join(dir, name)

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("creating %s: %w", name, err)
		}

		if _, err := f.WriteString(content); err != nil {
			f.Close()
			return "", fmt.Errorf("writing %s: %w", name, err)
		}
		if err := f.Close(); err != nil {
			return "", fmt.Errorf("writing %s: %w", name, err)
		}
		return filepath.Abs(path)
	}

	return "", fmt.Errorf("no free filename for %s in %s", base, dir)
}

func expandDir(dir string) (string, error) {
	switch {
	case dir == "":
		return os.Getwd()
	case dir == "~" || strings.HasPrefix(dir, "~/"):
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting home directory: %w", err)
		}
		return filepath.Join(home, strings.TrimPrefix(dir, "~")), nil
	default:
		return dir, nil
	}
}
