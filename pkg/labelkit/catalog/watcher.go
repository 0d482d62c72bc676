package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/randalmurphal/labelkit/pkg/labelkit/observability"
)

// Watch reloads the catalog whenever path changes on disk. It blocks until
// ctx is cancelled, then returns nil; setup failures and a closed watcher
// return an error.
//
// path may be a single catalog file or a directory of them, matching Load
// and LoadDir. Events are debounced so an editor writing in several bursts
// triggers one reload. A reload that fails is logged and the previous
// template set stays active.
func (c *Catalog) Watch(ctx context.Context, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat watch path: %w", err)
	}
	isDir := info.IsDir()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	reload := func() {
		var err error
		if isDir {
			err = c.LoadDir(path)
		} else {
			err = c.Load(path)
		}
		if err != nil {
			observability.LogCatalogError(c.logger, path, err)
		}
	}

	debounce := newDebouncer(c.debounce)
	defer debounce.stop()

	if c.logger != nil {
		c.logger.Info("catalog watch started",
			"path", path,
			"debounce_ms", c.debounce.Milliseconds(),
		)
	}

	for {
		select {
		case <-ctx.Done():
			if c.logger != nil {
				c.logger.Info("catalog watch stopped", "path", path)
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return errors.New("watcher event channel closed")
			}
			if !relevantEvent(event, isDir) {
				continue
			}
			if c.logger != nil {
				c.logger.Debug("catalog file event",
					"path", event.Name,
					"op", event.Op.String(),
				)
			}
			debounce.trigger(reload)

		case err, ok := <-watcher.Errors:
			if !ok {
				return errors.New("watcher error channel closed")
			}
			if c.logger != nil {
				c.logger.Warn("catalog watch error", "error", err)
			}
		}
	}
}

// relevantEvent filters out events that cannot change catalog content.
// Chmod events are noise, and inside a watched directory only catalog
// documents matter.
func relevantEvent(event fsnotify.Event, isDir bool) bool {
	if event.Op&fsnotify.Chmod == fsnotify.Chmod {
		return false
	}
	if isDir {
		return isCatalogFile(filepath.Base(event.Name))
	}
	return true
}

// debouncer collapses bursts of file events into a single callback after a
// quiet period.
type debouncer struct {
	interval time.Duration
	mu       sync.Mutex
	timer    *time.Timer
	stopped  bool
}

func newDebouncer(interval time.Duration) *debouncer {
	return &debouncer{interval: interval}
}

// trigger schedules fn after the quiet period, resetting the clock if a
// previous trigger is still pending. A zero interval runs fn immediately.
func (d *debouncer) trigger(fn func()) {
	if d.interval <= 0 {
		fn()
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, func() {
		d.mu.Lock()
		stopped := d.stopped
		d.mu.Unlock()
		if !stopped {
			fn()
		}
	})
}

// stop cancels any pending callback.
func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
