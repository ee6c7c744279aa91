package services

import (
	"fmt"
	"time"

	"github.com/custodia-labs/blankpage/internal/core/domain"
	"github.com/custodia-labs/blankpage/internal/core/ports/driven"
)

// Config keys for application configuration.
const (
	KeyStorageBackend = "storage.backend"
	KeyStorageDataDir = "storage.data_dir"
	KeyDebounceMillis = "autosave.debounce_ms"
	KeyExportDir      = "export.dir"
)

// LoadAppConfig reads application configuration, filling defaults for
// missing keys. An unknown storage backend is an error; a non-positive
// debounce falls back to the default.
func LoadAppConfig(cfg driven.ConfigStore) (domain.AppConfig, error) {
	conf := domain.DefaultAppConfig()

	if backend := cfg.GetString(KeyStorageBackend); backend != "" {
		conf.Backend = domain.StorageBackend(backend)
		if !conf.Backend.IsValid() {
			return conf, fmt.Errorf("%s = %q: %w", KeyStorageBackend, backend, domain.ErrUnsupportedBackend)
		}
	}

	conf.DataDir = cfg.GetString(KeyStorageDataDir)
	conf.ExportDir = cfg.GetString(KeyExportDir)

	if ms := cfg.GetInt(KeyDebounceMillis); ms > 0 {
		conf.Debounce = time.Duration(ms) * time.Millisecond
	}

	return conf, nil
}

// SaveAppConfig writes every field of conf to cfg.
func SaveAppConfig(cfg driven.ConfigStore, conf domain.AppConfig) error {
	values := []struct {
		key   string
		value any
	}{
		{KeyStorageBackend, conf.Backend.String()},
		{KeyStorageDataDir, conf.DataDir},
		{KeyDebounceMillis, int(conf.Debounce / time.Millisecond)},
		{KeyExportDir, conf.ExportDir},
	}

	for _, v := range values {
		if err := cfg.Set(v.key, v.value); err != nil {
			return fmt.Errorf("saving %s: %w", v.key, err)
		}
	}
	return cfg.Save()
}
