package file

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchConfig_ReloadsOnWrite(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("autosave.debounce_ms", 500))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := WatchConfig(ctx, store)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(store.Path(), []byte("[autosave]\ndebounce_ms = 50\n"), 0600))

	select {
	case <-events:
	case <-time.After(5 * time.Second):
		t.Fatal("no reload event")
	}
	assert.Equal(t, 50, store.GetInt("autosave.debounce_ms"))
}

func TestWatchConfig_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := WatchConfig(ctx, store)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(dir+"/other.txt", []byte("x"), 0600))

	select {
	case <-events:
		t.Fatal("unexpected reload")
	case <-time.After(3 * reloadDelay):
	}
}

func TestWatchConfig_ClosesOnCancel(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	events, err := WatchConfig(ctx, store)
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-events:
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("channel not closed")
	}
}
