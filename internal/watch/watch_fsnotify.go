package watch

import (
	"time"

	"github.com/fsnotify/fsnotify"
)

// fsnotifyOpBits maps each fsnotify bit to its local Op equivalent.
// Table-driven rather than a chain of `if ev.Op&X != 0` checks so
// adding a bit later (fsnotify has none pending, but the vendor API
// has grown before) is a one-line addition here instead of a new
// branch buried in loop().
var fsnotifyOpBits = [...]struct {
	from fsnotify.Op
	to   Op
}{
	{fsnotify.Create, OpCreate},
	{fsnotify.Write, OpWrite},
	{fsnotify.Remove, OpRemove},
	{fsnotify.Rename, OpRename},
	{fsnotify.Chmod, OpChmod},
}

func translateOp(fsOp fsnotify.Op) Op {
	var op Op
	for _, b := range fsnotifyOpBits {
		if fsOp&b.from != 0 {
			op |= b.to
		}
	}
	return op
}

// FSNotifyWatcher implements Watcher using fsnotify for OS-native
// filesystem notifications. It stays a generic path watcher — PHP-file
// filtering belongs in SourceWatcher, not here, so this type stays
// reusable for anything that wants raw create/write/remove/rename/chmod
// events on a directory.
type FSNotifyWatcher struct {
	w   *fsnotify.Watcher
	evC chan Event
	erC chan error
}

// NewFSWatcher creates a new FSNotifyWatcher and starts its
// event-translation goroutine.
func NewFSWatcher() (*FSNotifyWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	fw := &FSNotifyWatcher{w: w, evC: make(chan Event, 128), erC: make(chan error, 1)}
	go fw.loop()
	return fw, nil
}

// loop drains fsnotify's two channels for the lifetime of the
// underlying watcher, translating each raw event into this package's
// own Event shape until fsnotify closes both channels on Close.
func (fw *FSNotifyWatcher) loop() {
	for {
		select {
		case ev, ok := <-fw.w.Events:
			if !ok {
				return
			}
			fw.evC <- Event{Path: ev.Name, Op: translateOp(ev.Op), Time: time.Now()}
		case err, ok := <-fw.w.Errors:
			if !ok {
				return
			}
			fw.erC <- err
		}
	}
}

func (fw *FSNotifyWatcher) Events() <-chan Event     { return fw.evC }
func (fw *FSNotifyWatcher) Errors() <-chan error     { return fw.erC }
func (fw *FSNotifyWatcher) Add(path string) error    { return fw.w.Add(path) }
func (fw *FSNotifyWatcher) Remove(path string) error { return fw.w.Remove(path) }
func (fw *FSNotifyWatcher) Close() error             { return fw.w.Close() }
