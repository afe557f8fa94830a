// Package pipeline implements the four-stage READ→PARSE→COLLECT→INDEX
// indexing pipeline (§4.5): bounded channels connect errgroup-coordinated
// worker pools, so a slow stage applies backpressure to the ones feeding it
// rather than buffering without limit.
package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"runtime"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/standardbeagle/lci/internal/config"
	"github.com/standardbeagle/lci/internal/langregistry"
)

// FileTask is what READ sends to PARSE: an unopened file plus the language
// id the registry resolved from its extension.
type FileTask struct {
	Path       string
	LanguageID string
}

// channelBuffers scales task/result channel capacity with CPU count, the
// same shape as the teacher's calculateOptimalChannelBuffers but simplified
// to two tiers since this pipeline has no file-count estimate up front.
func channelBuffers() (taskBuffer, resultBuffer int) {
	cpu := runtime.NumCPU()
	taskBuffer = cpu * 8
	resultBuffer = cpu * 16
	if taskBuffer < 8 {
		taskBuffer = 8
	}
	if resultBuffer < 16 {
		resultBuffer = 16
	}
	return taskBuffer, resultBuffer
}

// Scanner walks a project root applying include/exclude globs and
// .gitignore rules, emitting one FileTask per file the registry recognizes
// (§4.5 READ: "skip unsupported extensions before the PARSE stage ever
// sees them").
type Scanner struct {
	cfg       *config.Config
	registry  *langregistry.Registry
	gitignore *config.GitignoreParser
}

// NewScanner builds a Scanner bound to one project's configuration and
// language registry.
func NewScanner(cfg *config.Config, registry *langregistry.Registry) *Scanner {
	s := &Scanner{cfg: cfg, registry: registry}
	gp := config.NewGitignoreParser()
	if err := gp.LoadGitignore(cfg.WorkspaceRoot); err == nil {
		s.gitignore = gp
	}
	return s
}

// Walk sends one FileTask per matching file to out, closing it when the
// walk completes or ctx is cancelled. It never returns tasks for a
// directory tree once that directory itself matches an exclude pattern,
// so exclusions like node_modules/** prune entire subtrees instead of
// filtering file-by-file.
func (s *Scanner) Walk(ctx context.Context, out chan<- FileTask) error {
	defer close(out)

	root := s.cfg.WorkspaceRoot
	return filepath.Walk(root, func(path string, info os.FileInfo, walkErr error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if walkErr != nil {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		if info.IsDir() {
			if rel != "." && s.excluded(rel+"/", true) {
				return filepath.SkipDir
			}
			return nil
		}

		if s.excluded(rel, false) || !s.included(rel) {
			return nil
		}

		ext := filepath.Ext(path)
		langID, ok := s.registry.ForExtension(ext)
		if !ok {
			return nil
		}

		select {
		case out <- FileTask{Path: path, LanguageID: langID}:
		case <-ctx.Done():
			return ctx.Err()
		}
		return nil
	})
}

func (s *Scanner) excluded(relPath string, isDir bool) bool {
	if s.gitignore != nil && s.gitignore.ShouldIgnore(relPath, isDir) {
		return true
	}
	for _, pattern := range s.cfg.Exclude {
		if ok, _ := doublestar.Match(pattern, relPath); ok {
			return true
		}
	}
	return false
}

func (s *Scanner) included(relPath string) bool {
	if len(s.cfg.Include) == 0 {
		return true
	}
	for _, pattern := range s.cfg.Include {
		if ok, _ := doublestar.Match(pattern, relPath); ok {
			return true
		}
	}
	return false
}
