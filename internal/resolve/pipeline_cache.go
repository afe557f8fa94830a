package resolve

import "github.com/standardbeagle/lci/internal/types"

// SymbolCache is the pipeline-path lookup surface (§4.4 "Pipeline path
// (during indexing)"). It never touches persistent storage, making it the
// hot path in COLLECT: every lookup is an in-memory map read against the
// batch currently being built plus whatever earlier batches in this wave
// have already been merged in.
type SymbolCache interface {
	LookupCandidates(name string, limit int) []types.Symbol
	Get(id types.SymbolID) (types.Symbol, bool)
	SymbolsInFile(file types.FileID) []types.Symbol
	Resolve(name string, caller types.Symbol, callRange *types.Range, imports []types.Import) Outcome
}

// MemCache is the concrete in-memory SymbolCache that COLLECT fills and
// reads for one indexing wave; INDEX resolves against the store instead.
type MemCache struct {
	byID     map[types.SymbolID]types.Symbol
	byName   map[string][]types.SymbolID
	byFile   map[types.FileID][]types.SymbolID
}

// NewMemCache returns an empty MemCache.
func NewMemCache() *MemCache {
	return &MemCache{
		byID:   make(map[types.SymbolID]types.Symbol),
		byName: make(map[string][]types.SymbolID),
		byFile: make(map[types.FileID][]types.SymbolID),
	}
}

// Add inserts or replaces sym in the cache.
func (c *MemCache) Add(sym types.Symbol) {
	if _, exists := c.byID[sym.ID]; !exists {
		c.byName[sym.Name] = append(c.byName[sym.Name], sym.ID)
		c.byFile[sym.FileID] = append(c.byFile[sym.FileID], sym.ID)
	}
	c.byID[sym.ID] = sym
}

// Remove deletes every trace of a file's symbols from the cache, used by
// remove_file (§3 Lifecycle, §8 invariant 4).
func (c *MemCache) Remove(file types.FileID) {
	for _, id := range c.byFile[file] {
		sym := c.byID[id]
		delete(c.byID, id)
		ids := c.byName[sym.Name]
		for i, cand := range ids {
			if cand == id {
				c.byName[sym.Name] = append(ids[:i], ids[i+1:]...)
				break
			}
		}
	}
	delete(c.byFile, file)
}

func (c *MemCache) Get(id types.SymbolID) (types.Symbol, bool) {
	s, ok := c.byID[id]
	return s, ok
}

func (c *MemCache) SymbolsInFile(file types.FileID) []types.Symbol {
	ids := c.byFile[file]
	out := make([]types.Symbol, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.byID[id])
	}
	return out
}

func (c *MemCache) LookupCandidates(name string, limit int) []types.Symbol {
	ids := c.byName[name]
	if limit <= 0 || limit > len(ids) {
		limit = len(ids)
	}
	out := make([]types.Symbol, 0, limit)
	for _, id := range ids[:limit] {
		out = append(out, c.byID[id])
	}
	return out
}

// Resolve implements the three-way pipeline-path lookup: it first checks
// imports for a binding exposing `name`, then falls back to any symbol in
// the cache named `name`, returning Ambiguous when more than one candidate
// remains after that filtering.
func (c *MemCache) Resolve(name string, caller types.Symbol, _ *types.Range, imports []types.Import) Outcome {
	for _, imp := range imports {
		for _, exposed := range ExposedNames(imp) {
			if exposed == name {
				return Found
			}
		}
	}
	candidates := c.byName[name]
	switch len(candidates) {
	case 0:
		return NotFound
	case 1:
		return Found
	default:
		return Ambiguous
	}
}
