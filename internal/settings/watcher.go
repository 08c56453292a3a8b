package settings

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/venus98/AuthMeReloaded/internal/telemetry/logger"
)

// Watcher watches the settings file for changes.
type Watcher struct {
	watcher   *fsnotify.Watcher
	callbacks []func(string)
	mu        sync.RWMutex
	done      chan struct{}
	stopOnce  sync.Once
	log       logger.Logger
}

// NewWatcher creates a new settings file watcher.
func NewWatcher(log logger.Logger) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if log == nil {
		log = logger.Default()
	}

	return &Watcher{
		watcher:   w,
		callbacks: make([]func(string), 0),
		done:      make(chan struct{}),
		log:       log,
	}, nil
}

// Watch adds a settings file to watch.
func (w *Watcher) Watch(path string) error {
	// Watch the directory, not the file, to catch vim-style renames
	dir := filepath.Dir(path)
	if err := w.watcher.Add(dir); err != nil {
		w.log.Error("failed to watch directory", "path", dir, "error", err)
		return err
	}
	w.log.Debug("watching directory for changes",
		"path", dir,
		"file", filepath.Base(path))
	return nil
}

// OnChange registers a callback invoked when a watched file changes.
// The callback receives the path of the changed file.
func (w *Watcher) OnChange(callback func(string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, callback)
}

// Start starts watching for changes. Blocks until Stop is called.
func (w *Watcher) Start() {
	w.log.Info("settings watcher started")

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.log.Debug("settings file changed",
					"file", event.Name,
					"op", event.Op.String())
				w.notifyCallbacks(event.Name)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Error("settings watcher error", "error", err)
		case <-w.done:
			return
		}
	}
}

// StartAsync starts watching in a goroutine.
func (w *Watcher) StartAsync() {
	go w.Start()
}

// Stop stops the watcher. Calls after the first are no-ops.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.done)
		if err = w.watcher.Close(); err != nil {
			w.log.Error("failed to close watcher", "error", err)
			return
		}
		w.log.Info("settings watcher stopped")
	})
	return err
}

// notifyCallbacks calls all registered callbacks.
func (w *Watcher) notifyCallbacks(path string) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for _, cb := range w.callbacks {
		cb(path)
	}
}
