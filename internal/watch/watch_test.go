package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestOpString(t *testing.T) {
	tests := []struct {
		op   Op
		want string
	}{
		{0, "NONE"},
		{OpCreate, "CREATE"},
		{OpWrite, "WRITE"},
		{OpCreate | OpWrite, "CREATE|WRITE"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("Op(%d).String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}

func TestFSNotifyWatcher_DetectsWrite(t *testing.T) {
	fw, err := NewFSWatcher()
	if err != nil {
		t.Skip("fsnotify not supported:", err)
	}
	defer fw.Close()

	dir := t.TempDir()
	if err := fw.Add(dir); err != nil {
		t.Fatal(err)
	}

	target := filepath.Join(dir, "f.php")
	go func() { _ = os.WriteFile(target, []byte("<?php"), 0o644) }()

	select {
	case ev := <-fw.Events():
		if ev.Path == "" {
			t.Fatal("empty path in event")
		}
	case err := <-fw.Errors():
		t.Fatalf("unexpected watcher error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for fsnotify event")
	}
}

func TestSourceWatcher_FiltersNonPHP(t *testing.T) {
	fw, err := NewFSWatcher()
	if err != nil {
		t.Skip("fsnotify not supported:", err)
	}
	sw := NewSourceWatcher(fw)
	defer sw.Close()

	dir := t.TempDir()
	if err := sw.Add(dir); err != nil {
		t.Fatal(err)
	}

	go func() {
		_ = os.WriteFile(filepath.Join(dir, "note.txt"), []byte("ignored"), 0o644)
		time.Sleep(50 * time.Millisecond)
		_ = os.WriteFile(filepath.Join(dir, "index.php"), []byte("<?php"), 0o644)
	}()

	select {
	case path := <-sw.Changed():
		if filepath.Ext(path) != ".php" {
			t.Fatalf("expected a .php path, got %q", path)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timeout waiting for filtered change")
	}
}
