// Package watch reports changes to a layout file so it can be reloaded
package watch

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultPollInterval is how often the file is checked when no event arrives
const DefaultPollInterval = 500 * time.Millisecond

// WatcherInterface defines the interface for file watchers
type WatcherInterface interface {
	// Changes delivers the watched path each time its contents change.
	// Changes that arrive while one is pending are merged.
	Changes() <-chan string
	Errors() <-chan error
	Close() error
}

// Option configures a Watcher
type Option func(*Watcher)

// WithPollInterval sets the polling backup interval
func WithPollInterval(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.interval = d
		}
	}
}

// Watcher monitors one file for changes
type Watcher struct {
	watcher    *fsnotify.Watcher
	filePath   string
	interval   time.Duration
	modTime    time.Time
	size       int64
	changeChan chan string
	errorChan  chan error
	done       chan struct{}
	closeOnce  sync.Once
}

// NewWatcher starts watching filePath. The file must exist.
func NewWatcher(filePath string, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(filePath)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Editors often replace the file rather than write it, so watch the
	// directory and filter by name
	if err := fsWatcher.Add(filepath.Dir(abs)); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	w := &Watcher{
		watcher:    fsWatcher,
		filePath:   abs,
		interval:   DefaultPollInterval,
		modTime:    info.ModTime(),
		size:       info.Size(),
		changeChan: make(chan string, 1),
		errorChan:  make(chan error, 10),
		done:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	go w.watch()

	return w, nil
}

// Path returns the absolute path being watched
func (w *Watcher) Path() string {
	return w.filePath
}

// watch runs the file watching loop
func (w *Watcher) watch() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	defer close(w.changeChan)
	defer close(w.errorChan)

	for {
		select {
		case <-w.done:
			return

		case <-ticker.C:
			// Polling as backup for file systems without events
			w.checkForChange()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.filePath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.checkForChange()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		}
	}
}

// checkForChange compares the file's modification time and size with the
// last seen values
func (w *Watcher) checkForChange() {
	info, err := os.Stat(w.filePath)
	if err != nil {
		// A replacing save removes the file for a moment
		if !errors.Is(err, os.ErrNotExist) {
			w.sendError(err)
		}
		return
	}
	if info.ModTime().Equal(w.modTime) && info.Size() == w.size {
		return
	}
	w.modTime = info.ModTime()
	w.size = info.Size()

	select {
	case w.changeChan <- w.filePath:
	default:
		// a change is already pending
	}
}

func (w *Watcher) sendError(err error) {
	select {
	case w.errorChan <- err:
	case <-w.done:
	}
}

// Changes returns a channel that receives the path after each change
func (w *Watcher) Changes() <-chan string {
	return w.changeChan
}

// Errors returns a channel of errors that occur during watching
func (w *Watcher) Errors() <-chan error {
	return w.errorChan
}

// Close stops watching the file. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.watcher.Close()
	})
	return err
}

// TestWatcher is a helper for testing that provides direct control over channels
type TestWatcher struct {
	changeChan    chan string
	errorChan     chan error
	closed        bool
	changesClosed bool
	errorsClosed  bool
	mu            sync.Mutex
}

// NewTestWatcher creates a test watcher with controllable channels
func NewTestWatcher() *TestWatcher {
	return &TestWatcher{
		changeChan: make(chan string, 10),
		errorChan:  make(chan error, 10),
	}
}

func (tw *TestWatcher) Changes() <-chan string {
	return tw.changeChan
}

func (tw *TestWatcher) Errors() <-chan error {
	return tw.errorChan
}

func (tw *TestWatcher) Close() error {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if tw.closed {
		return nil
	}
	tw.closed = true

	if !tw.changesClosed {
		close(tw.changeChan)
		tw.changesClosed = true
	}
	if !tw.errorsClosed {
		close(tw.errorChan)
		tw.errorsClosed = true
	}
	return nil
}

// CloseChangesOnly closes only the Changes channel
func (tw *TestWatcher) CloseChangesOnly() {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if !tw.changesClosed {
		close(tw.changeChan)
		tw.changesClosed = true
	}
}

// CloseErrorsOnly closes only the Errors channel
func (tw *TestWatcher) CloseErrorsOnly() {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if !tw.errorsClosed {
		close(tw.errorChan)
		tw.errorsClosed = true
	}
}

// SendChange reports a change of path
func (tw *TestWatcher) SendChange(path string) {
	tw.changeChan <- path
}

// SendError sends a test error to the watcher
func (tw *TestWatcher) SendError(err error) {
	tw.errorChan <- err
}
