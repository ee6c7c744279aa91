package file

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/blankpage/internal/logger"
)

// reloadDelay coalesces the bursts of events editors produce on save.
const reloadDelay = 100 * time.Millisecond

// WatchConfig reloads store whenever its file is written, created or
// replaced, and sends on the returned channel after each successful
// reload. The channel is closed when ctx is done.
//
// The directory is watched rather than the file so that editors that save
// by renaming a temporary file are picked up.
func WatchConfig(ctx context.Context, store *ConfigStore) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := watcher.Add(filepath.Dir(store.Path())); err != nil {
		watcher.Close()
		return nil, err
	}

	events := make(chan struct{}, 1)
	target := filepath.Clean(store.Path())

	go func() {
		defer watcher.Close()
		defer close(events)

		var timer *time.Timer
		fire := make(chan struct{}, 1)
		defer func() {
			if timer != nil {
				timer.Stop()
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}

				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(reloadDelay, func() {
					select {
					case fire <- struct{}{}:
					default:
					}
				})

			case <-fire:
				if err := store.Load(); err != nil {
					logger.Warn("Ignoring unreadable config %s: %v", store.Path(), err)
					continue
				}
				logger.Debug("Reloaded config %s", store.Path())
				select {
				case events <- struct{}{}:
				default:
					// Reload already pending for the reader.
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Debug("Config watcher error: %v", err)
			}
		}
	}()

	return events, nil
}
