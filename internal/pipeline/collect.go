package pipeline

import (
	"time"

	"github.com/standardbeagle/lci/internal/behavior"
	"github.com/standardbeagle/lci/internal/langregistry"
	"github.com/standardbeagle/lci/internal/resolve"
	"github.com/standardbeagle/lci/internal/types"
)

// Collector runs COLLECT (§4.5): it assigns stable ids to one file's raw
// parse output and hands every relationship whose caller was captured as a
// symbol to INDEX's second resolution phase as an UnresolvedRelationship;
// no target is resolved here. Run drives one Collector from a single
// COLLECT goroutine. Its id allocators are plain counters with no locking,
// so calls to Collect on one Collector must not overlap.
type Collector struct {
	fileIDs   *types.IDAllocator
	symbolIDs *types.IDAllocator
	registry  *langregistry.Registry
	cache     *resolve.MemCache
	projectRoot string
}

// NewCollector returns a Collector sharing one id space and one symbol
// cache across an entire indexing wave.
func NewCollector(registry *langregistry.Registry, cache *resolve.MemCache, projectRoot string) *Collector {
	return &Collector{
		fileIDs:     types.NewIDAllocator(),
		symbolIDs:   types.NewIDAllocator(),
		registry:    registry,
		cache:       cache,
		projectRoot: projectRoot,
	}
}

// Collect turns one ParseUnit into a partial IndexBatch. Every Collector's
// file and symbol allocators start from the same first id, so two
// Collectors feeding one store would hand out overlapping ids.
func (c *Collector) Collect(unit ParseUnit, beh behavior.LanguageBehavior) types.IndexBatch {
	batch := types.NewIndexBatch()
	if unit.Err != nil {
		return batch
	}

	fileID := types.FileID(c.fileIDs.Next())
	def, _ := c.registry.Get(unit.LanguageID)

	modulePath, _ := beh.ModulePathFromFile(unit.Path, c.projectRoot, def.Extensions)

	batch.Files = append(batch.Files, types.FileRegistration{
		Path:        unit.Path,
		FileID:      fileID,
		ContentHash: unit.ContentHash,
		LanguageID:  unit.LanguageID,
		Timestamp:   currentTime(),
	})

	nameToID := make(map[string]types.SymbolID, len(unit.Result.Symbols))
	finalSymbols := make([]types.Symbol, 0, len(unit.Result.Symbols))

	for _, raw := range unit.Result.Symbols {
		id := types.SymbolID(c.symbolIDs.Next())
		visibility := raw.Visibility
		if !raw.VisibilitySet && raw.Signature != "" {
			// Parser evidence (if any) already lives on raw.Visibility;
			// only fall back to the behavior's textual rule when the
			// parser left the zero value untouched.
			visibility = beh.ParseVisibility(raw.Signature)
		}
		sym := types.Symbol{
			ID:         id,
			Name:       raw.Name,
			Kind:       raw.Kind,
			FileID:     fileID,
			Range:      raw.Range,
			Signature:  raw.Signature,
			DocComment: raw.DocComment,
			Visibility: visibility,
			Scope:      raw.Scope,
			LanguageID: unit.LanguageID,
		}
		beh.ConfigureSymbol(&sym, modulePath)

		nameToID[raw.Name] = id
		finalSymbols = append(finalSymbols, sym)
		batch.Symbols = append(batch.Symbols, types.SymbolFile{Symbol: sym, Path: unit.Path})
		c.cache.Add(sym)
	}

	for _, raw := range unit.Result.Imports {
		batch.Imports = append(batch.Imports, types.Import{
			FileID:     fileID,
			Path:       raw.Path,
			Alias:      raw.Alias,
			IsGlob:     raw.IsGlob,
			IsTypeOnly: raw.IsTypeOnly,
		})
	}

	localCtx := resolve.BuildPipelineContext(fileID, c.cache, batch.Imports, beh.IsResolvableSymbol)
	for _, sym := range finalSymbols {
		localCtx.AddSymbol(sym.Name, sym.ID, resolve.LevelModuleFile)
	}

	for _, raw := range unit.Result.Relationships {
		fromID, ok := nameToID[raw.FromName]
		if !ok {
			continue // the caller itself was not captured as a symbol; drop (§4.5 COLLECT step 4)
		}
		batch.Unresolved = append(batch.Unresolved, types.UnresolvedRelationship{
			FromID:   fromID,
			FromName: raw.FromName,
			ToName:   raw.ToName,
			FileID:   fileID,
			Kind:     raw.Kind,
			Metadata: raw.Metadata,
			ToRange:  raw.ToRange,
		})
	}

	return batch
}

// currentTime is the pipeline's one indirection point for wall-clock reads,
// isolated so tests can substitute a fixed clock without threading a
// context value through every Collect call.
var currentTime = time.Now
