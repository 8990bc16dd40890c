// Package watch reports changes to a single file.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces bursts of writes from editors.
const DefaultDebounce = 200 * time.Millisecond

// Event is emitted once per burst of changes to the watched file.
type Event struct {
	Path string
	Op   fsnotify.Op
}

// NewWatcher watches path for changes until ctx is done. The parent
// directory is watched so that editors replacing the file through a rename
// are still noticed. The returned channel is closed when watching stops.
// Watcher errors go to logger at debug level.
func NewWatcher(ctx context.Context, path string, debounce time.Duration, logger *slog.Logger) (<-chan Event, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, err
	}

	events := make(chan Event, 1)

	go func() {
		defer watcher.Close()

		var debounceTimer *time.Timer
		var lastEvent fsnotify.Event

		// Protect against sending to closed channel from timer callback
		var closed bool
		var mu sync.Mutex

		defer func() {
			mu.Lock()
			closed = true
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			mu.Unlock()
			close(events)
		}()

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}

				mu.Lock()
				lastEvent = event
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(debounce, func() {
					mu.Lock()
					defer mu.Unlock()

					if closed {
						return
					}
					select {
					case events <- Event{Path: lastEvent.Name, Op: lastEvent.Op}:
					default:
					}
				})
				mu.Unlock()

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Debug("watch error", "path", abs, "err", err)
			}
		}
	}()

	return events, nil
}

// Run calls fn once and then again after every change to path, until ctx is
// done. Errors from fn are logged and do not stop watching.
func Run(ctx context.Context, path string, debounce time.Duration, logger *slog.Logger, fn func() error) error {
	if logger == nil {
		logger = slog.Default()
	}
	events, err := NewWatcher(ctx, path, debounce, logger)
	if err != nil {
		return err
	}

	if err := fn(); err != nil {
		logger.Error("run failed", "err", err)
	}
	for ev := range events {
		logger.Info("change detected", "path", ev.Path, "op", ev.Op.String())
		if err := fn(); err != nil {
			logger.Error("run failed", "err", err)
		}
	}
	return ctx.Err()
}
