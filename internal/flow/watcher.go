package flow

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/storewave/storefront/internal/logging"
)

// defaultDebounce coalesces the bursts of write events editors and atomic
// file replacements produce into a single reload.
const defaultDebounce = 250 * time.Millisecond

// Watcher hot-reloads a Registry when its definition file changes on disk.
// It watches the parent directory rather than the file itself so that
// rename-based replacements (the common editor save strategy) keep working.
type Watcher struct {
	registry *Registry
	watcher  *fsnotify.Watcher
	log      *logging.Logger
	debounce time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewWatcher creates a Watcher for the registry's definition file.
func NewWatcher(registry *Registry, log *logging.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fsw.Add(filepath.Dir(registry.Path())); err != nil {
		fsw.Close()
		return nil, err
	}

	return &Watcher{
		registry: registry,
		watcher:  fsw,
		log:      log,
		debounce: defaultDebounce,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start begins watching in a background goroutine. Call Stop to shut down.
func (w *Watcher) Start() {
	go w.run()
}

// Stop shuts the watcher down and waits for the watch loop to exit.
func (w *Watcher) Stop() {
	close(w.stopCh)
	<-w.doneCh
}

func (w *Watcher) run() {
	defer close(w.doneCh)
	defer w.watcher.Close()

	target := filepath.Clean(w.registry.Path())

	var timer *time.Timer
	var timerCh <-chan time.Time

	for {
		select {
		case <-w.stopCh:
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerCh = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case <-timerCh:
			timer = nil
			timerCh = nil
			if err := w.registry.Reload(); err != nil {
				// Keep serving the previous flows; the operator sees the
				// parse error in the log.
				w.log.Error("flow reload failed", "path", target, "error", err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("flow watcher error", "error", err)
		}
	}
}
