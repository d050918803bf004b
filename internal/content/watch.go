package content

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/nexus/internal/logger"
)

const defaultDebounce = 100 * time.Millisecond

// Watcher reloads a content file into a Store whenever it changes on disk.
// Invalid content is logged and the previous snapshot keeps serving.
type Watcher struct {
	path     string
	store    *Store
	log      *logger.Logger
	debounce time.Duration
	onReload func(error)
}

// NewWatcher creates a watcher for path feeding store.
func NewWatcher(path string, store *Store, log *logger.Logger) *Watcher {
	if log == nil {
		log = logger.Nop()
	}
	return &Watcher{path: path, store: store, log: log, debounce: defaultDebounce}
}

// WithDebounce sets how long the watcher waits for writes to settle.
func (w *Watcher) WithDebounce(d time.Duration) *Watcher {
	w.debounce = d
	return w
}

// OnReload registers fn to be called after every reload attempt with its
// result.
func (w *Watcher) OnReload(fn func(error)) *Watcher {
	w.onReload = fn
	return w
}

// Run watches until ctx is cancelled. The parent directory is watched so that
// editors that replace the file by rename are seen.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	abs, err := filepath.Abs(w.path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", w.path, err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	log := w.log.WithFields(map[string]any{"path": abs})
	log.Info("watching content")

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Error(err, "watch error")

		case <-timer.C:
			err := w.store.Reload(abs)
			if err != nil {
				log.Error(err, "content reload failed, keeping previous snapshot")
			} else {
				log.Info("content reloaded")
			}
			if w.onReload != nil {
				w.onReload(err)
			}
		}
	}
}
