// Package watch notifies when a timeline file changes on disk, so watch
// mode can re-render it. Events are debounced: editors that write in
// several bursts, or replace the file on save, produce a single
// notification.
package watch

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches a single file and emits one signal per settled change.
type Watcher struct {
	path     string
	debounce time.Duration

	watcher *fsnotify.Watcher
	events  chan struct{}
	done    chan struct{}

	closeOnce sync.Once
}

// New starts watching the file at path. The parent directory is watched
// rather than the file itself so that rename-and-replace saves keep
// working. Changes arriving within the debounce window coalesce into one
// event.
func New(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	dir := filepath.Dir(abs)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	w := &Watcher{
		path:     abs,
		debounce: debounce,
		watcher:  fsw,
		events:   make(chan struct{}, 1),
		done:     make(chan struct{}),
	}

	go w.loop()

	return w, nil
}

// Events returns the channel signaled after each settled change.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() {
		close(w.done)
		w.watcher.Close()
	})
	return nil
}

// loop filters directory events down to the watched file and applies the
// debounce window before signaling.
func (w *Watcher) loop() {
	var timer *time.Timer
	var pending <-chan time.Time

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				pending = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case <-pending:
			timer = nil
			pending = nil
			// Drop the signal if the consumer is still rendering the
			// previous change; the next event carries the same meaning.
			select {
			case w.events <- struct{}{}:
			default:
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}
