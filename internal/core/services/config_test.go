package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/blankpage/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/blankpage/internal/core/domain"
)

func TestLoadAppConfig_Defaults(t *testing.T) {
	conf, err := LoadAppConfig(memory.NewConfigStore())

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppConfig(), conf)
}

func TestLoadAppConfig_StoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("storage.backend", "toml")
	_ = store.Set("storage.data_dir", "/data")
	_ = store.Set("autosave.debounce_ms", int64(1200))
	_ = store.Set("export.dir", "~/exports")

	conf, err := LoadAppConfig(store)

	require.NoError(t, err)
	assert.Equal(t, domain.StorageBackendTOML, conf.Backend)
	assert.Equal(t, "/data", conf.DataDir)
	assert.Equal(t, 1200*time.Millisecond, conf.Debounce)
	assert.Equal(t, "~/exports", conf.ExportDir)
}

func TestLoadAppConfig_InvalidValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("autosave.debounce_ms", -5)

	conf, err := LoadAppConfig(store)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultDebounce, conf.Debounce)

	_ = store.Set("storage.backend", "postgres")
	_, err = LoadAppConfig(store)
	assert.ErrorIs(t, err, domain.ErrUnsupportedBackend)
}

func TestSaveAppConfig_RoundTrip(t *testing.T) {
	store := memory.NewConfigStore()
	conf := domain.AppConfig{
		Backend:   domain.StorageBackendMemory,
		DataDir:   "/d",
		Debounce:  250 * time.Millisecond,
		ExportDir: "/e",
	}

	require.NoError(t, SaveAppConfig(store, conf))

	got, err := LoadAppConfig(store)
	require.NoError(t, err)
	assert.Equal(t, conf, got)
}
