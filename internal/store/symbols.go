// Package store implements the persisted side of the indexer: a symbol and
// file registry, a relationship graph, a full-text search index, a vector
// store for embeddings, and atomic on-disk persistence (§4.6). Every
// sub-store is safe for concurrent readers and a single concurrent writer,
// the same contract the teacher's SymbolStore/PostingsIndex/
// UniversalSymbolGraph types document.
package store

import (
	"sync"

	"github.com/standardbeagle/lci/internal/types"
)

// SymbolStore holds every indexed Symbol using parallel arrays rather than
// a map of pointers, the same cache-friendly layout the teacher's
// SymbolStore uses: an append-only data slice plus an id->index map for
// O(1) lookup, so Range-style iteration stays allocation-free.
type SymbolStore struct {
	mu sync.RWMutex

	data  []types.Symbol
	index map[types.SymbolID]int

	byFile       map[types.FileID][]types.SymbolID
	byModule     map[string][]types.SymbolID
	byModuleName map[string]types.SymbolID // "modulePath\x00name" -> id, last-write-wins
	byName       map[string][]types.SymbolID
}

// NewSymbolStore returns an empty store sized for expectedSize symbols.
func NewSymbolStore(expectedSize int) *SymbolStore {
	return &SymbolStore{
		data:         make([]types.Symbol, 0, expectedSize),
		index:        make(map[types.SymbolID]int, expectedSize*2),
		byFile:       make(map[types.FileID][]types.SymbolID),
		byModule:     make(map[string][]types.SymbolID),
		byModuleName: make(map[string]types.SymbolID),
		byName:       make(map[string][]types.SymbolID),
	}
}

func moduleNameKey(modulePath, name string) string {
	return modulePath + "\x00" + name
}

// Put inserts or overwrites a symbol and refreshes its secondary indexes.
func (s *SymbolStore) Put(sym types.Symbol) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx, exists := s.index[sym.ID]; exists {
		s.data[idx] = sym
	} else {
		s.index[sym.ID] = len(s.data)
		s.data = append(s.data, sym)
	}

	s.byFile[sym.FileID] = append(s.byFile[sym.FileID], sym.ID)
	if sym.ModulePath != "" {
		s.byModule[sym.ModulePath] = append(s.byModule[sym.ModulePath], sym.ID)
		s.byModuleName[moduleNameKey(sym.ModulePath, sym.Name)] = sym.ID
	}
	s.byName[sym.Name] = append(s.byName[sym.Name], sym.ID)
}

// ByName returns every symbol registered under name, across all files and
// modules — the lookup find_symbol and get_calls/find_callers's
// function_name argument need before any module-qualified resolution.
func (s *SymbolStore) ByName(name string) []types.Symbol {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.byName[name]
	out := make([]types.Symbol, 0, len(ids))
	for _, id := range ids {
		if idx, ok := s.index[id]; ok {
			out = append(out, s.data[idx])
		}
	}
	return out
}

// Get returns the symbol for id, or false if unknown.
func (s *SymbolStore) Get(id types.SymbolID) (types.Symbol, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.index[id]
	if !ok {
		return types.Symbol{}, false
	}
	return s.data[idx], true
}

// ImportsForFile, which resolve.PersistedLookup also needs, is defined on
// ImportStore (imports.go), which holds the actual data; Store gets it
// through embedding, and SymbolStore does not have it.

// SymbolsInFile returns every symbol registered against fileID, in
// insertion order.
func (s *SymbolStore) SymbolsInFile(file types.FileID) []types.Symbol {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.byFile[file]
	out := make([]types.Symbol, 0, len(ids))
	for _, id := range ids {
		if idx, ok := s.index[id]; ok {
			out = append(out, s.data[idx])
		}
	}
	return out
}

// SymbolsInModule returns every symbol whose ModulePath equals modulePath,
// excluding any belonging to excludeFile (the file doing the lookup, so it
// does not see itself as a "sibling").
func (s *SymbolStore) SymbolsInModule(modulePath string, excludeFile types.FileID) []types.Symbol {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.byModule[modulePath]
	out := make([]types.Symbol, 0, len(ids))
	for _, id := range ids {
		idx, ok := s.index[id]
		if !ok {
			continue
		}
		sym := s.data[idx]
		if sym.FileID == excludeFile {
			continue
		}
		out = append(out, sym)
	}
	return out
}

// SymbolByModuleAndName looks up a single qualified symbol, last write
// wins on duplicate (module, name) pairs — the same ambiguity a language's
// DisambiguateSymbol is expected to resolve further upstream.
func (s *SymbolStore) SymbolByModuleAndName(modulePath, name string) (types.Symbol, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byModuleName[moduleNameKey(modulePath, name)]
	if !ok {
		return types.Symbol{}, false
	}
	idx, ok := s.index[id]
	if !ok {
		return types.Symbol{}, false
	}
	return s.data[idx], true
}

// VisibleCrossFileSymbols returns up to cap symbols from files other than
// fromFile, in store (insertion) order. It is the building block behind
// §4.4's "visible cross-file symbols up to a cap" tier; callers needing
// visibility filtering apply LanguageBehavior.IsSymbolVisibleFromFile on
// top of this.
func (s *SymbolStore) VisibleCrossFileSymbols(fromFile types.FileID, cap int) []types.Symbol {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.Symbol, 0, cap)
	for _, sym := range s.data {
		if len(out) >= cap {
			break
		}
		if sym.FileID == fromFile {
			continue
		}
		out = append(out, sym)
	}
	return out
}

// All returns every stored symbol; used by the full-text indexer's initial
// bulk load and by get_index_info.
func (s *SymbolStore) All() []types.Symbol {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.Symbol, len(s.data))
	copy(out, s.data)
	return out
}

// Len reports how many symbols are stored.
func (s *SymbolStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
