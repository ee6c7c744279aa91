package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	configfile "github.com/custodia-labs/blankpage/internal/adapters/driven/config/file"
	"github.com/custodia-labs/blankpage/internal/adapters/driven/sink/clipboard"
	filesink "github.com/custodia-labs/blankpage/internal/adapters/driven/sink/file"
	"github.com/custodia-labs/blankpage/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/blankpage/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/blankpage/internal/adapters/driving/cli"
	"github.com/custodia-labs/blankpage/internal/core/domain"
	"github.com/custodia-labs/blankpage/internal/core/ports/driven"
	"github.com/custodia-labs/blankpage/internal/core/services"
	"github.com/custodia-labs/blankpage/internal/logger"
)

// LogFile is the TUI log file name inside the data directory.
const LogFile = "blankpage.log"

// bootstrap wires the storage, services and sinks from the config file in
// the blankpage home directory.
func bootstrap(ctx context.Context) (cli.Services, func() error, error) {
	base, err := configfile.BaseDir()
	if err != nil {
		return cli.Services{}, nil, fmt.Errorf("resolving home directory: %w", err)
	}

	configStore, err := configfile.NewConfigStore(base)
	if err != nil {
		return cli.Services{}, nil, fmt.Errorf("opening config: %w", err)
	}

	conf, err := services.LoadAppConfig(configStore)
	if err != nil {
		return cli.Services{}, nil, fmt.Errorf("loading config: %w", err)
	}

	dataDir := conf.DataDir
	if dataDir == "" {
		dataDir = filepath.Join(base, "data")
	}

	kv, err := openStore(conf.Backend, dataDir)
	if err != nil {
		return cli.Services{}, nil, err
	}
	logger.Debug("Storage: %s in %s", conf.Backend, dataDir)

	ws, err := services.LoadWorkspace(ctx, kv)
	if err != nil {
		kv.Close()
		return cli.Services{}, nil, fmt.Errorf("loading documents: %w", err)
	}

	prefs := services.NewPreferencesService(ctx, kv)
	saver := services.NewAutoSaver(kv, ws,
		services.WithDebounce(conf.Debounce),
		services.WithAutoSaveEnabled(prefs.Get().AutoSave),
	)
	prefs.OnChange(func(pref domain.Preference, value bool) {
		if pref == domain.PreferenceAutoSave {
			saver.SetEnabled(value)
		}
	})

	sink := filesink.NewSink(conf.ExportDir)
	export := services.NewExportService(ws, sink)

	s := cli.Services{
		Workspace:   ws,
		Preferences: prefs,
		Export:      export,
		Persistence: saver,
		Config:      conf,
		LogPath:     filepath.Join(dataDir, LogFile),
		WatchConfig: func(ctx context.Context) (<-chan domain.AppConfig, error) {
			return watchConfig(ctx, configStore, saver, sink)
		},
	}
	if clipboard.Available() {
		s.Clipboard = export.WithSink(clipboard.NewSink())
	}

	cleanup := func() error {
		err := saver.Flush(context.WithoutCancel(ctx))
		saver.Stop()
		return errors.Join(err, kv.Close())
	}
	return s, cleanup, nil
}

// openStore opens the key-value store for backend.
func openStore(backend domain.StorageBackend, dataDir string) (driven.KeyValueStore, error) {
	switch backend {
	case domain.StorageBackendSQLite:
		store, err := sqlite.NewStore(dataDir)
		if err != nil {
			return nil, fmt.Errorf("opening database: %w", err)
		}
		return store.KVStore(), nil
	case domain.StorageBackendTOML:
		store, err := configfile.NewStateStore(dataDir)
		if err != nil {
			return nil, fmt.Errorf("opening state file: %w", err)
		}
		return store, nil
	case domain.StorageBackendMemory:
		return memory.NewKVStore(), nil
	default:
		return nil, fmt.Errorf("%q: %w", backend, domain.ErrUnsupportedBackend)
	}
}

// watchConfig applies config file edits to the running services and
// forwards each new configuration. Backend and data dir changes need a
// restart.
func watchConfig(
	ctx context.Context,
	store *configfile.ConfigStore,
	saver *services.AutoSaver,
	sink *filesink.Sink,
) (<-chan domain.AppConfig, error) {
	reloads, err := configfile.WatchConfig(ctx, store)
	if err != nil {
		return nil, err
	}

	out := make(chan domain.AppConfig, 1)
	go func() {
		defer close(out)
		for range reloads {
			conf, err := services.LoadAppConfig(store)
			if err != nil {
				logger.Warn("Ignoring config change: %v", err)
				continue
			}
			saver.SetDebounce(conf.Debounce)
			sink.SetDir(conf.ExportDir)

			select {
			case out <- conf:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}
