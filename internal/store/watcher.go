package store

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/xq773939719/gitbutler/internal/errors"
	"github.com/xq773939719/gitbutler/internal/logger"
)

// DefaultDebounce coalesces the burst of write events most editors and
// atomic-save implementations produce into a single reload.
const DefaultDebounce = 250 * time.Millisecond

// Watcher reloads a FileStore when another process writes the store file,
// keeping pane widths in sync across windows. Change notifications are
// debounced and delivered on the watcher goroutine.
type Watcher struct {
	fs       *FileStore
	onChange func()
	fsw      *fsnotify.Watcher
	debounce time.Duration

	mu    sync.Mutex
	timer *time.Timer
	done  chan struct{}
}

// Watch starts watching the store's directory (watching the directory, not
// the file, survives rename-based atomic writes). onChange runs after each
// debounced reload and may be nil.
func Watch(fs *FileStore, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.StoreWatchFailed(fs.Path(), err)
	}

	if err := fsw.Add(filepath.Dir(fs.Path())); err != nil {
		fsw.Close()
		return nil, errors.StoreWatchFailed(fs.Path(), err)
	}

	w := &Watcher{
		fs:       fs,
		onChange: onChange,
		fsw:      fsw,
		debounce: DefaultDebounce,
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Close stops the watcher. Pending debounced reloads are dropped.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.mu.Unlock()
	close(w.done)
	return w.fsw.Close()
}

func (w *Watcher) loop() {
	log := logger.WithComponent("store")
	base := filepath.Base(w.fs.Path())

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.trigger()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Warn("watch error", "path", w.fs.Path(), "error", err)
		}
	}
}

// trigger schedules a reload after the debounce window, replacing any
// reload already pending.
func (w *Watcher) trigger() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		log := logger.WithComponent("store")
		if err := w.fs.Reload(); err != nil {
			log.Warn("reload after external write failed", "path", w.fs.Path(), "error", err)
			return
		}
		log.Debug("store reloaded after external write", "path", w.fs.Path())
		if w.onChange != nil {
			w.onChange()
		}
	})
}
