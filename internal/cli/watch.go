package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// defaultDebounce is how long a file must stay quiet before a re-render.
const defaultDebounce = 250 * time.Millisecond

// debouncer coalesces bursts of triggers into one call to fn once no
// trigger arrived for window.
type debouncer struct {
	window time.Duration
	fn     func()

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

func newDebouncer(window time.Duration, fn func()) *debouncer {
	return &debouncer{window: window, fn: fn}
}

func (d *debouncer) trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fn)
}

// stop cancels a pending call. Later triggers are ignored.
func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// watchFile calls onChange each time path settles after a write, until ctx
// is done. The parent directory is watched so editors that replace the
// file by rename are still seen. onChange runs on the calling goroutine,
// never concurrently with itself; its errors are reported and watching
// continues.
func watchFile(ctx context.Context, path string, window time.Duration, onChange func() error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	defer w.Close()

	target := filepath.Clean(path)
	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	changed := make(chan struct{}, 1)
	d := newDebouncer(window, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	defer d.stop()

	logger := loggerFromContext(ctx)
	logger.Debug("watching", "path", target)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				d.trigger()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "err", err)
		case <-changed:
			if err := onChange(); err != nil {
				printError("%v", err)
			}
		}
	}
}
