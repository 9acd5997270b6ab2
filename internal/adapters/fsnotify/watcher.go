// Package fsnotify implements the ports.Watcher interface using github.com/fsnotify/fsnotify.
// It watches the directory containing the target file, filters events down to
// that one file, and debounces rapid events (editors often trigger multiple
// writes per save).
package fsnotify

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceInterval is how long the file must stay quiet before onChange
// fires. A save is usually a truncate followed by one or more writes; firing
// on the first event would read a half-written file.
const debounceInterval = 50 * time.Millisecond

// Watcher implements ports.Watcher using fsnotify.
type Watcher struct {
	fw      *fsnotify.Watcher
	done    chan struct{}
	stopped bool
	mu      sync.Mutex
	onError func(error)
}

// NewWatcher creates a new file system watcher.
func NewWatcher() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fw:   fw,
		done: make(chan struct{}),
	}, nil
}

// Watch starts monitoring filePath.
// onChange is called with the absolute path of the file after it changes.
func (w *Watcher) Watch(filePath string, onChange func(filePath string)) error {
	target, err := filepath.Abs(filePath)
	if err != nil {
		return err
	}
	dir := filepath.Dir(target)
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("watch %s: parent is not a directory", target)
	}

	// Watch the directory, not the file: an atomic save replaces the inode
	// and a file-level watch would silently go dead.
	if err := w.fw.Add(dir); err != nil {
		return err
	}

	go func() {
		var pending *time.Timer
		defer func() {
			if pending != nil {
				pending.Stop()
			}
		}()
		for {
			select {
			case event, ok := <-w.fw.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				// Removal leaves nothing to re-read; the Create that
				// follows an atomic save fires instead.
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}

				if pending != nil {
					pending.Stop()
				}
				pending = time.AfterFunc(debounceInterval, func() {
					if !w.isStopped() {
						onChange(target)
					}
				})

			case err, ok := <-w.fw.Errors:
				if !ok {
					return
				}
				// fsnotify keeps delivering events after an error
				if h := w.errorHook(); h != nil && !w.isStopped() {
					h(err)
				}

			case <-w.done:
				return
			}
		}
	}()

	return nil
}

// OnError registers the callback for errors reported by fsnotify.
func (w *Watcher) OnError(onError func(err error)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onError = onError
}

func (w *Watcher) errorHook() func(error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.onError
}

func (w *Watcher) isStopped() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stopped
}

// Stop ends monitoring and releases all resources.
// Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.done)
	return w.fw.Close()
}
