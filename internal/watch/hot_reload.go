package watch

import (
	"context"
	"os"
	"time"

	"github.com/standardbeagle/lci/internal/store/persist"
)

// HotReloadPoller watches meta.json and state.json's modification times so
// a long-running tool-server process notices when a separate `codewalk
// index` run has replaced the on-disk index underneath it (§4.7.1), without
// needing an fsnotify watch on the store's own output files (which would
// otherwise fire on the very writes this process itself performs).
type HotReloadPoller struct {
	indexDir string
	interval time.Duration
	onReload func()

	lastMeta  time.Time
	lastState time.Time
}

// NewHotReloadPoller builds a poller over indexDir, calling onReload
// whenever either meta.json or state.json's mtime advances.
func NewHotReloadPoller(indexDir string, interval time.Duration, onReload func()) *HotReloadPoller {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &HotReloadPoller{indexDir: indexDir, interval: interval, onReload: onReload}
}

// Run polls until ctx is cancelled. It is meant to be run in its own
// goroutine; callers needing a clean shutdown should cancel ctx and not
// call Run again on the same poller.
func (p *HotReloadPoller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.checkOnce()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.checkOnce()
		}
	}
}

func (p *HotReloadPoller) checkOnce() {
	changed := false

	if mt, ok := modTime(persist.MetaPath(p.indexDir)); ok && mt.After(p.lastMeta) {
		p.lastMeta = mt
		changed = true
	}
	if mt, ok := modTime(persist.StatePath(p.indexDir)); ok && mt.After(p.lastState) {
		p.lastState = mt
		changed = true
	}

	if changed && p.onReload != nil {
		p.onReload()
	}
}

func modTime(path string) (time.Time, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}
