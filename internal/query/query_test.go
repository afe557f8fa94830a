package query

import (
	"testing"

	"github.com/standardbeagle/lci/internal/store"
	"github.com/standardbeagle/lci/internal/types"
)

func TestFindSymbolReturnsContext(t *testing.T) {
	st := store.New(2)
	st.FileStore.Put(types.FileRegistration{Path: "a.rs", FileID: 1})
	st.SymbolStore.Put(types.Symbol{ID: 1, Name: "helper", Kind: types.SymbolFunction, FileID: 1, LanguageID: "rust"})

	svc := New(st, nil, nil, "")
	results, err := svc.FindSymbol("helper", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].Symbol.Name != "helper" {
		t.Fatalf("unexpected results: %+v", results)
	}
	if results[0].FilePath != "a.rs" {
		t.Fatalf("expected file path a.rs, got %q", results[0].FilePath)
	}
}

func TestFindSymbolNotFound(t *testing.T) {
	svc := New(store.New(1), nil, nil, "")
	if _, err := svc.FindSymbol("missing", ""); err == nil {
		t.Fatal("expected an error for an unknown symbol name")
	}
}

func TestGetCallsAndFindCallers(t *testing.T) {
	st := store.New(2)
	st.FileStore.Put(types.FileRegistration{Path: "a.rs", FileID: 1})
	st.FileStore.Put(types.FileRegistration{Path: "b.rs", FileID: 2})
	helper := types.Symbol{ID: 1, Name: "helper", Kind: types.SymbolFunction, FileID: 1}
	main := types.Symbol{ID: 2, Name: "main", Kind: types.SymbolFunction, FileID: 2}
	st.SymbolStore.Put(helper)
	st.SymbolStore.Put(main)
	st.PutRelationship(types.Relationship{FromID: main.ID, ToID: helper.ID, Kind: types.RelCalls})
	st.PutRelationship(types.Relationship{FromID: helper.ID, ToID: main.ID, Kind: types.RelCalledBy})

	svc := New(st, nil, nil, "")

	calls, err := svc.GetCalls("main", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(calls) != 1 || calls[0].Symbol.Name != "helper" {
		t.Fatalf("expected main to call helper, got %+v", calls)
	}

	callers, err := svc.FindCallers("helper", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(callers) != 1 || callers[0].Symbol.Name != "main" {
		t.Fatalf("expected helper's caller to be main, got %+v", callers)
	}
}

func TestAnalyzeImpactRespectsDepth(t *testing.T) {
	st := store.New(3)
	for i, path := range []string{"a.rs", "b.rs", "c.rs"} {
		st.FileStore.Put(types.FileRegistration{Path: path, FileID: types.FileID(i + 1)})
	}
	leaf := types.Symbol{ID: 1, Name: "leaf", FileID: 1}
	mid := types.Symbol{ID: 2, Name: "mid", FileID: 2}
	top := types.Symbol{ID: 3, Name: "top", FileID: 3}
	st.SymbolStore.Put(leaf)
	st.SymbolStore.Put(mid)
	st.SymbolStore.Put(top)
	st.PutRelationship(types.Relationship{FromID: mid.ID, ToID: leaf.ID, Kind: types.RelCalls})
	st.PutRelationship(types.Relationship{FromID: top.ID, ToID: mid.ID, Kind: types.RelCalls})

	svc := New(st, nil, nil, "")
	within1, err := svc.AnalyzeImpact("leaf", 1, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(within1) != 1 || within1[0].Name != "mid" {
		t.Fatalf("expected only mid within depth 1, got %+v", within1)
	}

	within2, err := svc.AnalyzeImpact("leaf", 2, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(within2) != 2 {
		t.Fatalf("expected mid and top within depth 2, got %+v", within2)
	}
}

func TestGetIndexInfoCountsSymbolsAndKinds(t *testing.T) {
	st := store.New(2)
	st.FileStore.Put(types.FileRegistration{Path: "a.rs", FileID: 1})
	st.SymbolStore.Put(types.Symbol{ID: 1, Name: "helper", Kind: types.SymbolFunction, FileID: 1})
	st.SymbolStore.Put(types.Symbol{ID: 2, Name: "Widget", Kind: types.SymbolStruct, FileID: 1})

	svc := New(st, nil, nil, "")
	info := svc.GetIndexInfo(t.TempDir())
	if info.SymbolCount != 2 {
		t.Fatalf("expected 2 symbols, got %d", info.SymbolCount)
	}
	if info.Semantic.Enabled {
		t.Fatal("expected semantic search to be disabled with a nil embedder")
	}
	if len(info.ByKind) != 2 {
		t.Fatalf("expected 2 distinct kinds, got %+v", info.ByKind)
	}
}

func TestSemanticSearchDocsErrorsWithoutEmbedder(t *testing.T) {
	svc := New(store.New(1), nil, nil, "")
	if _, err := svc.SemanticSearchDocs(nil, "query", 5, 0.5, ""); err == nil {
		t.Fatal("expected an error when semantic search is not configured")
	}
}
