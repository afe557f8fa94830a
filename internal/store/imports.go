package store

import (
	"sync"

	"github.com/standardbeagle/lci/internal/types"
)

// ImportStore holds every file's registered imports, keyed by FileID so
// ImportsForFile (the method resolve.PersistedLookup needs) is an O(1)
// map read rather than a scan.
type ImportStore struct {
	mu      sync.RWMutex
	byFile  map[types.FileID][]types.Import
}

// NewImportStore returns an empty ImportStore.
func NewImportStore() *ImportStore {
	return &ImportStore{byFile: make(map[types.FileID][]types.Import)}
}

// Put replaces fileID's import set, the shape a re-index of a changed file
// needs (old imports must not linger after a file drops one).
func (s *ImportStore) Put(fileID types.FileID, imports []types.Import) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byFile[fileID] = append([]types.Import(nil), imports...)
}

// ImportsForFile satisfies resolve.PersistedLookup.
func (s *ImportStore) ImportsForFile(file types.FileID) []types.Import {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]types.Import(nil), s.byFile[file]...)
}
