// Package watch reports changes to a single file on disk.
package watch

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

const DebounceTime = 300 * time.Millisecond

// Watcher follows one file at a time. The parent directory is watched so
// editors that replace the file by rename are still seen.
type Watcher struct {
	fs       *fsnotify.Watcher
	onChange func()
	debounce time.Duration

	mu    sync.Mutex
	path  string
	dir   string
	timer *time.Timer

	done chan struct{}
}

// New starts the event goroutine. onChange runs on a timer goroutine.
func New(debounce time.Duration, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		fs:       fsw,
		onChange: onChange,
		debounce: debounce,
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Watch switches to path, dropping any previous file.
func (w *Watcher) Watch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(abs)

	w.mu.Lock()
	defer w.mu.Unlock()

	if abs == w.path {
		return nil
	}
	if w.dir != "" && w.dir != dir {
		_ = w.fs.Remove(w.dir)
	}
	if w.dir != dir {
		if err := w.fs.Add(dir); err != nil {
			w.path, w.dir = "", ""
			return err
		}
	}
	w.path, w.dir = abs, dir
	log.Debug().Str("path", abs).Msg("watching background file")
	return nil
}

// Unwatch stops reporting changes until the next Watch.
func (w *Watcher) Unwatch() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.dir != "" {
		_ = w.fs.Remove(w.dir)
	}
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.path, w.dir = "", ""
}

// Path returns the file currently watched.
func (w *Watcher) Path() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.path
}

// Close releases the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	w.Unwatch()
	err := w.fs.Close()
	<-w.done
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			log.Warn().Err(err).Msg("file watcher error")
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.path == "" || filepath.Clean(event.Name) != w.path {
		return
	}

	// Debounce rapid writes
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.onChange)
}
