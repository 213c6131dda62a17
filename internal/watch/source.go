package watch

import (
	"path/filepath"
	"strings"
)

// SourceWatcher wraps a Watcher and narrows its event stream to PHP
// source files (.php, .phtml, .inc) on create, write, or rename. Each
// matching event is forwarded as its path; several events from a
// single save are not merged into one.
type SourceWatcher struct {
	inner Watcher
	out   chan string
	done  chan struct{}
}

var phpExtensions = map[string]bool{
	".php":   true,
	".phtml": true,
	".inc":   true,
}

// NewSourceWatcher wraps w, starting a goroutine that filters w's
// event stream down to PHP source paths.
func NewSourceWatcher(w Watcher) *SourceWatcher {
	sw := &SourceWatcher{inner: w, out: make(chan string, 128), done: make(chan struct{})}
	go sw.loop()
	return sw
}

func (sw *SourceWatcher) loop() {
	defer close(sw.out)
	for {
		select {
		case ev, ok := <-sw.inner.Events():
			if !ok {
				return
			}
			if ev.Op&(OpCreate|OpWrite|OpRename) == 0 {
				continue
			}
			if !phpExtensions[strings.ToLower(filepath.Ext(ev.Path))] {
				continue
			}
			select {
			case sw.out <- ev.Path:
			case <-sw.done:
				return
			}
		case <-sw.done:
			return
		}
	}
}

// Changed emits the path of every PHP source file that was created,
// written, or renamed.
func (sw *SourceWatcher) Changed() <-chan string { return sw.out }

// Errors passes through the underlying watcher's error stream.
func (sw *SourceWatcher) Errors() <-chan error { return sw.inner.Errors() }

// Add watches dir (and, per the underlying backend, only that single
// directory level — callers walk a tree and Add each subdirectory
// themselves, matching fsnotify's own non-recursive semantics).
func (sw *SourceWatcher) Add(dir string) error { return sw.inner.Add(dir) }

// Close stops the filtering goroutine and closes the underlying
// watcher.
func (sw *SourceWatcher) Close() error {
	close(sw.done)
	return sw.inner.Close()
}
