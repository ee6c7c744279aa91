package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/blankpage/internal/core/domain"
)

func writeConfig(t *testing.T, home, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.toml"), []byte(body), 0o600))
}

func TestBootstrap_DefaultsToSQLite(t *testing.T) {
	home := t.TempDir()
	t.Setenv("BLANKPAGE_HOME", home)

	s, cleanup, err := bootstrap(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.StorageBackendSQLite, s.Config.Backend)
	assert.Equal(t, filepath.Join(home, "data", LogFile), s.LogPath)
	assert.Equal(t, 1, s.Workspace.Len())
	assert.NotNil(t, s.WatchConfig)

	id := s.Workspace.Create()
	require.True(t, s.Workspace.UpdateContent(id, "<div>kept</div>"))
	require.NoError(t, cleanup())

	s, cleanup, err = bootstrap(context.Background())
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, id, s.Workspace.ActiveID())
	assert.Equal(t, "<div>kept</div>", s.Workspace.Active().Content)
}

func TestBootstrap_TOMLBackend(t *testing.T) {
	home := t.TempDir()
	dataDir := filepath.Join(home, "state")
	t.Setenv("BLANKPAGE_HOME", home)
	writeConfig(t, home, "[storage]\nbackend = \"toml\"\ndata_dir = \""+filepath.ToSlash(dataDir)+"\"\n")

	s, cleanup, err := bootstrap(context.Background())
	require.NoError(t, err)

	require.NoError(t, s.Preferences.Set(context.Background(), domain.PreferenceDarkMode, true))
	require.NoError(t, cleanup())

	assert.FileExists(t, filepath.Join(dataDir, "state.toml"))

	s, cleanup, err = bootstrap(context.Background())
	require.NoError(t, err)
	defer cleanup()

	assert.True(t, s.Preferences.Get().DarkMode)
}

func TestBootstrap_MalformedTOMLStateStartsFresh(t *testing.T) {
	home := t.TempDir()
	dataDir := filepath.Join(home, "state")
	t.Setenv("BLANKPAGE_HOME", home)
	writeConfig(t, home, "[storage]\nbackend = \"toml\"\ndata_dir = \""+filepath.ToSlash(dataDir)+"\"\n")
	require.NoError(t, os.MkdirAll(dataDir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "state.toml"), []byte("state = [[["), 0o600))

	s, cleanup, err := bootstrap(context.Background())
	require.NoError(t, err)
	defer cleanup()

	require.Equal(t, 1, s.Workspace.Len())
	assert.Empty(t, s.Workspace.Active().Content)
	assert.Equal(t, domain.DefaultPreferences(), s.Preferences.Get())
}

func TestBootstrap_AutoSavePreferenceFollowsSaver(t *testing.T) {
	t.Setenv("BLANKPAGE_HOME", t.TempDir())

	s, cleanup, err := bootstrap(context.Background())
	require.NoError(t, err)
	defer cleanup()

	require.NoError(t, s.Preferences.Set(context.Background(), domain.PreferenceAutoSave, false))
	s.Workspace.UpdateContent(s.Workspace.ActiveID(), "<div>draft</div>")

	assert.False(t, s.Persistence.Pending())
}

func TestBootstrap_UnsupportedBackend(t *testing.T) {
	home := t.TempDir()
	t.Setenv("BLANKPAGE_HOME", home)
	writeConfig(t, home, "[storage]\nbackend = \"redis\"\n")

	_, _, err := bootstrap(context.Background())

	assert.ErrorIs(t, err, domain.ErrUnsupportedBackend)
}

func TestOpenStore(t *testing.T) {
	kv, err := openStore(domain.StorageBackendMemory, "")
	require.NoError(t, err)
	require.NoError(t, kv.Set(context.Background(), "k", "v"))
	require.NoError(t, kv.Close())

	_, err = openStore("cloud", t.TempDir())
	assert.ErrorIs(t, err, domain.ErrUnsupportedBackend)
}
