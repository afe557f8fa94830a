package pipeline

import (
	"github.com/standardbeagle/lci/internal/behavior"
	"github.com/standardbeagle/lci/internal/resolve"
	"github.com/standardbeagle/lci/internal/types"
)

// RelationshipSink is what INDEX writes resolved edges into; internal/store
// provides the concrete implementation. Kept minimal and defined here
// (rather than imported from internal/store) for the same reason
// resolve.PersistedLookup is defined in internal/resolve: it lets this
// package stay ignorant of any concrete storage engine.
type RelationshipSink interface {
	PutRelationship(rel types.Relationship)
	PutExternalStub(modulePath, name string) types.SymbolID

	// ApplyBatch writes one batch's files, imports, and symbols before
	// resolution runs against them; internal/store.Store is the concrete
	// implementation every real caller passes as both store and sink.
	ApplyBatch(batch types.IndexBatch)
}

// Indexer runs the second resolution phase (§4.5 INDEX): every
// UnresolvedRelationship COLLECT deferred is resolved against the full,
// cross-file PersistedLookup view, classified for validity by the owning
// language's compatibility table, and written to the sink in both
// directions. A relationship whose target cannot be found anywhere, even
// after resolution, is stubbed as an external symbol (§4.5 "resolve_external
// call_target") rather than dropped, so impact-analysis queries still see
// the edge.
type Indexer struct {
	store     resolve.PersistedLookup
	sink      RelationshipSink
	classify  resolve.Classifier
	behaviors map[string]behavior.LanguageBehavior
}

// NewIndexer builds an Indexer bound to one store/sink pair. behaviors maps
// a symbol's LanguageID to the LanguageBehavior that owns its resolution
// policy.
func NewIndexer(store resolve.PersistedLookup, sink RelationshipSink, classify resolve.Classifier, behaviors map[string]behavior.LanguageBehavior) *Indexer {
	return &Indexer{store: store, sink: sink, classify: classify, behaviors: behaviors}
}

// ResolveBatch processes every UnresolvedRelationship in batch, looking up
// the owning file's symbols to recover the caller's language and module
// path for behavior dispatch. It returns the number of resolved edges
// dropped for failing the owning language's compatibility table (§4.5
// "drop invalid pairs (counted)").
func (ix *Indexer) ResolveBatch(batch types.IndexBatch) int {
	dropped := 0
	for _, unresolved := range batch.Unresolved {
		if ix.resolveOne(unresolved) {
			dropped++
		}
	}
	return dropped
}

// resolveOne resolves and materializes one relationship, returning true if
// the edge was dropped for failing IsValidRelationship.
func (ix *Indexer) resolveOne(u types.UnresolvedRelationship) bool {
	fromSymbols := ix.store.SymbolsInFile(u.FileID)
	var from types.Symbol
	found := false
	for _, sym := range fromSymbols {
		if sym.ID == u.FromID {
			from, found = sym, true
			break
		}
	}
	if !found {
		return false
	}

	beh, ok := ix.behaviors[from.LanguageID]
	if !ok {
		return false
	}

	scope := resolve.BuildFullContext(u.FileID, ix.store, nil, ix.classify, beh.IsResolvableSymbol)
	for _, sym := range fromSymbols {
		scope.AddSymbol(sym.Name, sym.ID, resolve.LevelModuleFile)
	}

	toID, outcome := scope.Resolve(u.ToName)
	switch outcome {
	case resolve.Found:
		toSym, ok := ix.store.Get(toID)
		if ok && !beh.IsValidRelationship(from.Kind, toSym.Kind, u.Kind) {
			return true
		}
		ix.materialize(from, toID, u)
	case resolve.Ambiguous:
		candidateIDs := scope.Candidates(u.ToName)
		candidates := make([]types.Symbol, 0, len(candidateIDs))
		for _, id := range candidateIDs {
			if sym, ok := ix.store.SymbolByModuleAndName(from.ModulePath, u.ToName); ok && sym.ID == id {
				candidates = append(candidates, sym)
			}
		}
		if picked, ok := beh.DisambiguateSymbol(u.ToName, candidates, u.Kind, behavior.RoleCallTarget); ok {
			if toSym, ok := ix.store.Get(picked); ok && !beh.IsValidRelationship(from.Kind, toSym.Kind, u.Kind) {
				return true
			}
			ix.materialize(from, picked, u)
		}
	default:
		if module, symbol, ok := beh.ResolveExternalCallTarget(u, scope); ok {
			stubID := ix.sink.PutExternalStub(module, symbol)
			ix.materialize(from, stubID, u)
		}
	}
	return false
}

func (ix *Indexer) materialize(from types.Symbol, toID types.SymbolID, u types.UnresolvedRelationship) {
	rel := types.Relationship{FromID: from.ID, ToID: toID, Kind: u.Kind, Metadata: u.Metadata}
	ix.sink.PutRelationship(rel)
	ix.sink.PutRelationship(types.Relationship{
		FromID:   toID,
		ToID:     from.ID,
		Kind:     u.Kind.Inverse(),
		Metadata: u.Metadata,
	})

	if u.Kind == types.RelExtends || u.Kind == types.RelImplements {
		if beh, ok := ix.behaviors[from.LanguageID]; ok {
			beh.CreateInheritanceResolver().AddInheritance(from.ID, toID, u.Kind)
		}
	}
}
