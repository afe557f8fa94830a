package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/standardbeagle/lci/internal/store/persist"
)

func TestClassifyDistinguishesCodeDocsAndConfig(t *testing.T) {
	cases := []struct {
		path string
		op   fsnotify.Op
		want Action
	}{
		{"src/main.go", fsnotify.Write, ActionReindexCode},
		{"src/main.go", fsnotify.Remove, ActionRemoveCode},
		{"docs/readme.md", fsnotify.Write, ActionReindexDocument},
		{"docs/readme.md", fsnotify.Remove, ActionRemoveDocument},
		{".codewalk.kdl", fsnotify.Write, ActionReloadConfig},
	}
	for _, c := range cases {
		if got := classify(c.path, c.op); got != c.want {
			t.Errorf("classify(%q, %v) = %v, want %v", c.path, c.op, got, c.want)
		}
	}
}

func TestHotReloadPollerFiresOnMetaChange(t *testing.T) {
	dir := t.TempDir()
	if err := persist.WriteMeta(dir, persist.Meta{FileCount: 1}); err != nil {
		t.Fatalf("unexpected error writing meta: %v", err)
	}

	fired := make(chan struct{}, 1)
	poller := NewHotReloadPoller(dir, 10*time.Millisecond, func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go poller.Run(ctx)

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("expected onReload to fire for the initial meta.json observation")
	}

	time.Sleep(5 * time.Millisecond)
	if err := persist.WriteMeta(dir, persist.Meta{FileCount: 2}); err != nil {
		t.Fatalf("unexpected error rewriting meta: %v", err)
	}
	if err := os.Chtimes(persist.MetaPath(dir), time.Now().Add(time.Second), time.Now().Add(time.Second)); err != nil {
		t.Fatalf("unexpected error bumping mtime: %v", err)
	}

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("expected onReload to fire after meta.json changed")
	}
}

func TestIsDocPath(t *testing.T) {
	if !isDocPath(filepath.Join("a", "b.md")) {
		t.Error("expected .md to be a doc path")
	}
	if isDocPath(filepath.Join("a", "b.go")) {
		t.Error("expected .go to not be a doc path")
	}
}
