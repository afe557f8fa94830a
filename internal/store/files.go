package store

import (
	"sync"

	"github.com/standardbeagle/lci/internal/types"
)

// FileStore tracks one FileRegistration per indexed path, the durable
// record §3 "File registration" describes. ContentHash lets a re-scan skip
// re-parsing a file whose bytes have not changed since the last index.
type FileStore struct {
	mu        sync.RWMutex
	byPath    map[string]types.FileRegistration
	byFileID  map[types.FileID]string
}

// NewFileStore returns an empty FileStore.
func NewFileStore() *FileStore {
	return &FileStore{
		byPath:   make(map[string]types.FileRegistration),
		byFileID: make(map[types.FileID]string),
	}
}

// Put registers or updates a file.
func (s *FileStore) Put(reg types.FileRegistration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byPath[reg.Path] = reg
	s.byFileID[reg.FileID] = reg.Path
}

// Lookup returns the registration for path, if one exists.
func (s *FileStore) Lookup(path string) (types.FileRegistration, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	reg, ok := s.byPath[path]
	return reg, ok
}

// Unchanged reports whether path is already registered with the given
// content hash, the READ-stage short-circuit of §4.5.
func (s *FileStore) Unchanged(path string, hash uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	reg, ok := s.byPath[path]
	return ok && reg.ContentHash == hash
}

// PathForFile resolves a FileID back to its path, used by query
// operations that report file locations.
func (s *FileStore) PathForFile(id types.FileID) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	path, ok := s.byFileID[id]
	return path, ok
}

// Remove drops a file's registration, used when the watcher observes a
// delete (§4.7 RemoveCode).
func (s *FileStore) Remove(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if reg, ok := s.byPath[path]; ok {
		delete(s.byFileID, reg.FileID)
	}
	delete(s.byPath, path)
}

// Count returns the number of registered files.
func (s *FileStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byPath)
}
