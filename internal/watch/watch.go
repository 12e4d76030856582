// Package watch re-runs a render whenever the diagram file changes, for
// live editing. It watches the file's directory rather than the file
// itself: most editors save by writing a temp file and renaming it over
// the original, which would silently detach a direct file watch.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/flowviz/flowviz/internal/errors"
	"github.com/flowviz/flowviz/internal/logger"
)

// DefaultDebounce coalesces the burst of events an editor save produces.
const DefaultDebounce = 200 * time.Millisecond

// Watcher watches a single file and invokes a callback after each change.
type Watcher struct {
	path     string
	debounce time.Duration
	log      logger.Logger
}

// New creates a watcher for path. A zero debounce uses DefaultDebounce.
func New(path string, debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{path: path, debounce: debounce, log: logger.Default()}
}

// Run blocks until ctx is canceled, calling onChange after each debounced
// change to the watched file. onChange errors are reported but do not stop
// the watch: a half-saved diagram that fails to parse should not end the
// editing session.
func (w *Watcher) Run(ctx context.Context, onChange func() error) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot start the file watcher",
			"Your platform may limit watch handles; try again without --watch")
	}
	defer fw.Close()

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot watch "+dir,
			"Check the directory exists and is readable")
	}

	base := filepath.Base(w.path)
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != base {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.log.Debug("watch: %s %s", ev.Op, ev.Name)
			timer.Reset(w.debounce)

		case <-timer.C:
			if err := onChange(); err != nil {
				w.log.Warn("watch: refresh failed: %v", err)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Debug("watch: %v", err)
		}
	}
}
