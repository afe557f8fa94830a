// Package watch implements the two watchers §4.7 requires: UnifiedWatcher,
// an fsnotify-backed, debounced watcher over source/config/doc files that
// dispatches a typed Action per changed path, and HotReloadPoller, which
// polls the store's meta.json/state.json modification times to detect an
// index rebuilt by another process. Both are grounded on the teacher's
// internal/indexing.FileWatcher/eventDebouncer pair, split into two
// separately testable types per the original Rust watcher/{hot_reload,
// unified}.rs split.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/standardbeagle/lci/internal/config"
	"github.com/standardbeagle/lci/internal/debug"
)

// Action is what UnifiedWatcher decides to do about one changed path.
type Action int

const (
	ActionNone Action = iota
	ActionReindexCode
	ActionRemoveCode
	ActionReindexDocument
	ActionRemoveDocument
	ActionReloadConfig
)

func (a Action) String() string {
	switch a {
	case ActionReindexCode:
		return "reindex_code"
	case ActionRemoveCode:
		return "remove_code"
	case ActionReindexDocument:
		return "reindex_document"
	case ActionRemoveDocument:
		return "remove_document"
	case ActionReloadConfig:
		return "reload_config"
	default:
		return "none"
	}
}

// Handler is called once per debounced, classified path change.
type Handler func(path string, action Action)

// UnifiedWatcher watches source files, the project's doc set, and its own
// config file, classifying each fsnotify event into one Action (§4.7.2).
type UnifiedWatcher struct {
	cfg       *config.Config
	gitignore *config.GitignoreParser
	fsw       *fsnotify.Watcher
	debounce  time.Duration
	handler   Handler

	mu     sync.Mutex
	events map[string]fsnotify.Op
	timer  *time.Timer

	wg sync.WaitGroup
}

// NewUnifiedWatcher builds a watcher over cfg.WorkspaceRoot. handler is
// invoked from the debounce-flush goroutine, never concurrently with
// itself.
func NewUnifiedWatcher(cfg *config.Config, handler Handler) (*UnifiedWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	gp := config.NewGitignoreParser()
	_ = gp.LoadGitignore(cfg.WorkspaceRoot)

	debounce := time.Duration(cfg.FileWatch.DebounceMs) * time.Millisecond
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}

	return &UnifiedWatcher{
		cfg:       cfg,
		gitignore: gp,
		fsw:       fsw,
		debounce:  debounce,
		handler:   handler,
		events:    make(map[string]fsnotify.Op),
	}, nil
}

// Start adds recursive watches under the workspace root and begins
// processing events until ctx is cancelled.
func (w *UnifiedWatcher) Start(ctx context.Context) error {
	if !w.cfg.FileWatch.Enabled {
		debug.LogIndexing("file watching disabled in configuration\n")
		return nil
	}
	if err := w.addWatches(w.cfg.WorkspaceRoot); err != nil {
		return err
	}

	w.wg.Add(1)
	go w.run(ctx)
	return nil
}

// Stop closes the underlying fsnotify watcher and waits for the event loop
// to exit.
func (w *UnifiedWatcher) Stop() error {
	err := w.fsw.Close()
	w.wg.Wait()
	return err
}

func (w *UnifiedWatcher) addWatches(root string) error {
	visited := make(map[string]bool)
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil || !info.IsDir() {
			return nil
		}
		real, err := filepath.EvalSymlinks(path)
		if err != nil {
			return nil
		}
		if visited[real] {
			return filepath.SkipDir
		}
		visited[real] = true

		if w.shouldIgnoreDir(path) {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(path); err != nil {
			debug.LogIndexing("failed to watch directory %s: %v\n", path, err)
		}
		return nil
	})
}

func (w *UnifiedWatcher) shouldIgnoreDir(path string) bool {
	rel, err := filepath.Rel(w.cfg.WorkspaceRoot, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)
	if w.gitignore != nil && w.gitignore.ShouldIgnore(rel, true) {
		return true
	}
	for _, pattern := range w.cfg.Exclude {
		if ok, _ := doublestar.Match(pattern, rel+"/"); ok {
			return true
		}
	}
	return false
}

func (w *UnifiedWatcher) run(ctx context.Context) {
	defer w.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(ctx, ev)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			debug.LogIndexing("watcher error: %v\n", err)
		}
	}
}

func (w *UnifiedWatcher) handleEvent(ctx context.Context, ev fsnotify.Event) {
	info, statErr := os.Stat(ev.Name)
	if statErr == nil && info.IsDir() {
		if ev.Op&fsnotify.Create != 0 && !w.shouldIgnoreDir(ev.Name) {
			_ = w.fsw.Add(ev.Name)
		}
		return
	}
	if !w.interesting(ev.Name) {
		return
	}
	w.schedule(ctx, ev.Name, ev.Op)
}

func (w *UnifiedWatcher) interesting(path string) bool {
	rel, err := filepath.Rel(w.cfg.WorkspaceRoot, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)
	if w.gitignore != nil && w.gitignore.ShouldIgnore(rel, false) {
		return false
	}
	if len(w.cfg.Include) == 0 {
		return true
	}
	for _, pattern := range w.cfg.Include {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return filepath.Base(path) == ".codewalk.kdl"
}

func (w *UnifiedWatcher) schedule(ctx context.Context, path string, op fsnotify.Op) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.events[path] = op
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() { w.flush(ctx) })
}

func (w *UnifiedWatcher) flush(ctx context.Context) {
	w.mu.Lock()
	events := w.events
	w.events = make(map[string]fsnotify.Op)
	w.mu.Unlock()

	for path, op := range events {
		select {
		case <-ctx.Done():
			return
		default:
		}
		if w.handler != nil {
			w.handler(path, classify(path, op))
		}
	}
}

// classify maps a path and fsnotify op onto the Action handlers act on,
// per §4.7.2's "handler-dispatch model returning an action enum".
func classify(path string, op fsnotify.Op) Action {
	removed := op&fsnotify.Remove != 0 || op&fsnotify.Rename != 0

	if filepath.Base(path) == ".codewalk.kdl" {
		return ActionReloadConfig
	}
	if isDocPath(path) {
		if removed {
			return ActionRemoveDocument
		}
		return ActionReindexDocument
	}
	if removed {
		return ActionRemoveCode
	}
	return ActionReindexCode
}

func isDocPath(path string) bool {
	switch filepath.Ext(path) {
	case ".md", ".mdx", ".rst", ".txt":
		return true
	default:
		return false
	}
}
