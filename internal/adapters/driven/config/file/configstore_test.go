package file

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_HomeOverride(t *testing.T) {
	home := filepath.Join(t.TempDir(), "bp")
	t.Setenv("BLANKPAGE_HOME", home)

	store, err := NewConfigStore("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "config.toml"), store.Path())
	assert.DirExists(t, home)
}

func TestBaseDir_Default(t *testing.T) {
	t.Setenv("BLANKPAGE_HOME", "")
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot determine home directory")
	}

	dir, err := BaseDir()

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".blankpage"), dir)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("storage.backend", "toml"))
	require.NoError(t, store.Set("autosave.debounce_ms", 250))
	require.NoError(t, store.Set("debug.enabled", true))

	assert.Equal(t, "toml", store.GetString("storage.backend"))
	assert.Equal(t, 250, store.GetInt("autosave.debounce_ms"))
	assert.True(t, store.GetBool("debug.enabled"))

	assert.Empty(t, store.GetString("autosave.debounce_ms"))
	assert.Zero(t, store.GetInt("storage.backend"))
	assert.False(t, store.GetBool("missing"))
}

func TestConfigStore_PersistsAsNestedTables(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set("storage.backend", "sqlite"))
	require.NoError(t, store.Set("storage.data_dir", "/tmp/bp"))
	require.NoError(t, store.Set("autosave.debounce_ms", 750))

	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(raw), "[storage]")
	assert.Contains(t, string(raw), "[autosave]")

	reloaded, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", reloaded.GetString("storage.backend"))
	assert.Equal(t, "/tmp/bp", reloaded.GetString("storage.data_dir"))
	assert.Equal(t, 750, reloaded.GetInt("autosave.debounce_ms"))
}

func TestConfigStore_ReadsHandWrittenFile(t *testing.T) {
	dir := t.TempDir()
	content := `
[storage]
backend = "toml"

[export]
dir = "~/Documents"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(dir)

	require.NoError(t, err)
	assert.Equal(t, "toml", store.GetString("storage.backend"))
	assert.Equal(t, "~/Documents", store.GetString("export.dir"))
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("k", "v"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), nil, 0600))

	store, err := NewConfigStore(dir)

	require.NoError(t, err)
	_, ok := store.Get("anything")
	assert.False(t, ok)
}

func TestNewConfigStore_CorruptedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[[[ nope"), 0600))

	_, err := NewConfigStore(dir)

	assert.Error(t, err)
}

func TestConfigStore_LoadPicksUpExternalEdits(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("autosave.debounce_ms", 500))

	require.NoError(t, os.WriteFile(store.Path(), []byte("[autosave]\ndebounce_ms = 100\n"), 0600))
	require.NoError(t, store.Load())

	assert.Equal(t, 100, store.GetInt("autosave.debounce_ms"))
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Set("export.dir", "/tmp")
			_ = store.GetString("export.dir")
		}()
	}
	wg.Wait()

	assert.Equal(t, "/tmp", store.GetString("export.dir"))
}

func TestFlattenAndNestMap(t *testing.T) {
	nested := map[string]any{
		"storage": map[string]any{"backend": "sqlite", "data_dir": "/d"},
		"top":     int64(1),
	}

	flat := flattenMap(nested, "")
	assert.Equal(t, map[string]any{"storage.backend": "sqlite", "storage.data_dir": "/d", "top": int64(1)}, flat)
	assert.Equal(t, nested, nestMap(flat))
}

func TestNestMap_ValueWinsOverTable(t *testing.T) {
	got := nestMap(map[string]any{"a": "value", "a.b": "shadowed"})

	assert.Equal(t, map[string]any{"a": "value"}, got)
}
