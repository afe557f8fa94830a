package pipeline_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/standardbeagle/lci/internal/behavior"
	"github.com/standardbeagle/lci/internal/config"
	"github.com/standardbeagle/lci/internal/langregistry"
	"github.com/standardbeagle/lci/internal/parser"
	"github.com/standardbeagle/lci/internal/pipeline"
	"github.com/standardbeagle/lci/internal/resolve"
	"github.com/standardbeagle/lci/internal/store"
	"github.com/standardbeagle/lci/internal/types"
)

func goOnlyRegistry() *langregistry.Registry {
	reg := langregistry.New()
	reg.Register(langregistry.Definition{
		ID:          "go",
		Extensions:  []string{".go"},
		NewParser:   func() langregistry.Parser { return parser.NewGoParser() },
		NewBehavior: func() langregistry.Behavior { return behavior.NewGo() },
		Enabled:     true,
	})
	reg.Finalize()
	return reg
}

// relativeClassifier mirrors the Classifier cmd/codewalk passes to
// pipeline.Run: a relative-looking import path is Internal, everything else Unknown.
func relativeClassifier(importPath string) (types.ImportOrigin, string) {
	if strings.HasPrefix(importPath, ".") {
		return types.OriginInternal, importPath
	}
	return types.OriginUnknown, ""
}

func TestRunIndexesAndResolvesACallAcrossFiles(t *testing.T) {
	root := t.TempDir()
	const calleeSrc = "package sample\n\nfunc Helper() int {\n\treturn 1\n}\n"
	const callerSrc = "package sample\n\nfunc Main() int {\n\treturn Helper()\n}\n"
	if err := os.WriteFile(filepath.Join(root, "helper.go"), []byte(calleeSrc), 0o644); err != nil {
		t.Fatalf("write helper.go: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "main.go"), []byte(callerSrc), 0o644); err != nil {
		t.Fatalf("write main.go: %v", err)
	}

	cfg := config.Default(root)
	registry := goOnlyRegistry()
	behaviors := map[string]behavior.LanguageBehavior{"go": behavior.NewGo()}
	st := store.New(16)

	stats, err := pipeline.Run(context.Background(), cfg, registry, behaviors, st, st, resolve.Classifier(relativeClassifier))
	if err != nil {
		t.Fatalf("Run returned an error: %v", err)
	}
	if stats.FilesScanned != 2 {
		t.Fatalf("expected 2 files scanned, got %d", stats.FilesScanned)
	}
	if stats.FilesFailed != 0 {
		t.Fatalf("expected no failed files, got %d", stats.FilesFailed)
	}

	helpers := st.ByName("Helper")
	if len(helpers) != 1 {
		t.Fatalf("expected Helper to be indexed exactly once, got %d", len(helpers))
	}
	mains := st.ByName("Main")
	if len(mains) != 1 {
		t.Fatalf("expected Main to be indexed exactly once, got %d", len(mains))
	}

	callers := st.Incoming(helpers[0].ID, types.RelCalls)
	if len(callers) != 1 || callers[0].FromID != mains[0].ID {
		t.Fatalf("expected Main to be recorded as Helper's caller, got %+v", callers)
	}
}
