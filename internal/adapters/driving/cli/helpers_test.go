package cli

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/custodia-labs/blankpage/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/blankpage/internal/core/domain"
	"github.com/custodia-labs/blankpage/internal/core/ports/driven"
	"github.com/custodia-labs/blankpage/internal/core/services"
	"github.com/custodia-labs/blankpage/internal/logger"
)

// MockFileSink implements driven.FileSink for testing.
type MockFileSink struct {
	mu        sync.Mutex
	Location  string
	Err       error
	Filenames []string
	Contents  []string
}

func (m *MockFileSink) Save(_ context.Context, filename, content, _ string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return "", m.Err
	}
	m.Filenames = append(m.Filenames, filename)
	m.Contents = append(m.Contents, content)
	return m.Location, nil
}

var _ driven.FileSink = (*MockFileSink)(nil)

// testServices holds the real services wired by setupTestServices.
type testServices struct {
	kv        *memory.KVStore
	workspace *services.Workspace
	prefs     *services.PreferencesService
	saver     *services.AutoSaver
	sink      *MockFileSink
	clipboard *MockFileSink
}

// setupTestServices wires real services over an in-memory store holding
// "a" (active) and "b". New documents get the ids new-1, new-2 and so on.
func setupTestServices() (*testServices, func()) {
	resetFlags()

	var n atomic.Int64
	ids := driven.IDGeneratorFunc(func() string {
		return fmt.Sprintf("new-%d", n.Add(1))
	})

	kv := memory.NewKVStore()
	docs := []domain.Document{
		{ID: "a", Content: "<div>Alpha <b>note</b></div><div>second line</div>", LastModified: 1_700_000_000_000},
		{ID: "b", Content: "<div>Beta</div>", LastModified: 1_700_000_001_000},
	}
	ws := services.NewWorkspace(docs, "a", services.WithIDGenerator(ids))
	prefs := services.NewPreferencesService(context.Background(), kv)
	saver := services.NewAutoSaver(kv, ws, services.WithDebounce(time.Hour))

	env := &testServices{
		kv:        kv,
		workspace: ws,
		prefs:     prefs,
		saver:     saver,
		sink:      &MockFileSink{Location: "/exports/document.txt"},
		clipboard: &MockFileSink{Location: "clipboard"},
	}

	SetServices(Services{
		Workspace:   ws,
		Preferences: prefs,
		Export:      services.NewExportService(ws, env.sink),
		Clipboard:   services.NewExportService(ws, env.clipboard),
		Persistence: saver,
		Config:      domain.DefaultAppConfig(),
	})

	return env, func() {
		saver.Stop()
		SetServices(Services{})
		resetFlags()
	}
}

// resetFlags restores flag variables that persist between executions.
func resetFlags() {
	newContent = ""
	showRaw = false
	editContent = ""
	editFile = ""
	editText = false
	exportClipboard = false
	exportStdout = false
	verbose = false
	logger.SetVerbose(false)
}

// executeCommand runs the root command with args and returns its output.
func executeCommand(args ...string) (string, error) {
	if args == nil {
		args = []string{}
	}
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}
