package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/blankpage/internal/core/domain"
)

func TestStateStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	store, err := NewStateStore(t.TempDir())
	require.NoError(t, err)

	_, ok, err := store.Get(ctx, domain.KeyDocuments)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, domain.KeyDocuments, `[{"id":"a","content":"<b>x</b>"}]`))
	val, ok, err := store.Get(ctx, domain.KeyDocuments)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"a","content":"<b>x</b>"}]`, val)

	require.NoError(t, store.Delete(ctx, domain.KeyDocuments))
	_, ok, _ = store.Get(ctx, domain.KeyDocuments)
	assert.False(t, ok)

	assert.NoError(t, store.Delete(ctx, "never-set"))
}

func TestStateStore_PersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	first, err := NewStateStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, domain.KeyActiveDocumentID, `"abc"`))
	require.NoError(t, first.Set(ctx, domain.PreferenceDarkMode.Key(), "true"))
	require.NoError(t, first.Set(ctx, "multi", "line one\nline \"two\""))

	second, err := NewStateStore(dir)
	require.NoError(t, err)

	val, _, err := second.Get(ctx, domain.KeyActiveDocumentID)
	require.NoError(t, err)
	assert.Equal(t, `"abc"`, val)

	val, _, _ = second.Get(ctx, "blankpage-darkmode")
	assert.Equal(t, "true", val)

	val, _, _ = second.Get(ctx, "multi")
	assert.Equal(t, "line one\nline \"two\"", val)
}

func TestStateStore_FileLayout(t *testing.T) {
	ctx := context.Background()
	store, err := NewStateStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, "blankpage-autosave", "false"))

	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(raw), "[state]")
	assert.Contains(t, string(raw), "blankpage-autosave")

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(store.Path()))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files are cleaned up")
}

func TestStateStore_CorruptedFileOpensEmpty(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, StateFile)
	require.NoError(t, os.WriteFile(path, []byte("state = [[["), 0600))

	store, err := NewStateStore(dir)
	require.NoError(t, err)

	_, ok, err := store.Get(ctx, domain.KeyDocuments)
	require.NoError(t, err)
	assert.False(t, ok)

	backup, err := os.ReadFile(path + BackupSuffix)
	require.NoError(t, err)
	assert.Equal(t, "state = [[[", string(backup))
	assert.NoFileExists(t, path)

	require.NoError(t, store.Set(ctx, domain.KeyActiveDocumentID, `"a"`))
	reopened, err := NewStateStore(dir)
	require.NoError(t, err)
	val, ok, err := reopened.Get(ctx, domain.KeyActiveDocumentID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `"a"`, val)
}

func TestStateStore_Closed(t *testing.T) {
	ctx := context.Background()
	store, err := NewStateStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Close())

	_, _, err = store.Get(ctx, "k")
	assert.ErrorIs(t, err, domain.ErrStoreClosed)
	assert.ErrorIs(t, store.Set(ctx, "k", "v"), domain.ErrStoreClosed)
	assert.ErrorIs(t, store.Delete(ctx, "k"), domain.ErrStoreClosed)
}
