package store

import (
	"testing"

	"github.com/standardbeagle/lci/internal/types"
)

func TestSymbolStoreModuleLookup(t *testing.T) {
	s := NewSymbolStore(4)
	s.Put(types.Symbol{ID: 1, Name: "Handler", FileID: 1, ModulePath: "app/http"})
	s.Put(types.Symbol{ID: 2, Name: "Handler", FileID: 2, ModulePath: "app/http"})

	sym, ok := s.SymbolByModuleAndName("app/http", "Handler")
	if !ok {
		t.Fatal("expected a match for app/http.Handler")
	}
	if sym.ID != 2 {
		t.Fatalf("expected last write to win, got symbol id %d", sym.ID)
	}

	siblings := s.SymbolsInModule("app/http", 1)
	if len(siblings) != 1 || siblings[0].ID != 2 {
		t.Fatalf("expected excludeFile to drop the caller's own symbol, got %+v", siblings)
	}
}

func TestFileStoreUnchangedShortCircuit(t *testing.T) {
	fs := NewFileStore()
	fs.Put(types.FileRegistration{Path: "a.go", FileID: 1, ContentHash: 42})

	if !fs.Unchanged("a.go", 42) {
		t.Fatal("expected matching hash to report unchanged")
	}
	if fs.Unchanged("a.go", 7) {
		t.Fatal("expected differing hash to report changed")
	}
	if fs.Unchanged("missing.go", 42) {
		t.Fatal("expected unknown path to report changed")
	}
}

func TestStoreSatisfiesPersistedLookupAndSink(t *testing.T) {
	st := New(8)
	st.SymbolStore.Put(types.Symbol{ID: 1, Name: "Run", FileID: 1, ModulePath: "cmd/app"})
	st.ImportStore.Put(1, []types.Import{{FileID: 1, Path: "fmt"}})

	if got := st.ImportsForFile(1); len(got) != 1 || got[0].Path != "fmt" {
		t.Fatalf("expected one fmt import, got %+v", got)
	}
	if got := st.SymbolsInFile(1); len(got) != 1 || got[0].Name != "Run" {
		t.Fatalf("expected Run symbol in file 1, got %+v", got)
	}

	stubID := st.PutExternalStub("net/http", "ListenAndServe")
	if stubID == 0 {
		t.Fatal("expected a non-zero stub id")
	}
	st.PutRelationship(types.Relationship{FromID: 1, ToID: stubID, Kind: types.RelCalls})
	if edges := st.OutgoingAll(1); len(edges) != 1 {
		t.Fatalf("expected one outgoing edge, got %+v", edges)
	}
}
