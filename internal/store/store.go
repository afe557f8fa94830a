package store

import (
	"github.com/standardbeagle/lci/internal/store/fulltext"
	"github.com/standardbeagle/lci/internal/store/relstore"
	"github.com/standardbeagle/lci/internal/types"
)

// Store aggregates every persisted sub-store behind one value. Embedding
// *SymbolStore and *ImportStore gives Store every method
// resolve.PersistedLookup needs (ImportsForFile, SymbolsInFile,
// SymbolsInModule, VisibleCrossFileSymbols, SymbolByModuleAndName) through
// plain method promotion, and *relstore.Store gives it PutRelationship/
// PutExternalStub for pipeline.RelationshipSink — so Store satisfies both
// interfaces structurally without redeclaring a single method.
type Store struct {
	*SymbolStore
	*ImportStore
	*FileStore
	*relstore.Store
	FullText *fulltext.Index
}

// New returns an empty, fully wired Store sized for expectedSymbols.
func New(expectedSymbols int) *Store {
	return &Store{
		SymbolStore: NewSymbolStore(expectedSymbols),
		ImportStore: NewImportStore(),
		FileStore:   NewFileStore(),
		Store:       relstore.New(),
		FullText:    fulltext.New(3),
	}
}

// ApplyBatch writes one IndexBatch's symbols, imports, and file
// registrations into the store and full-text index. Relationship
// resolution happens separately via pipeline.Indexer, which needs the
// store already populated with this batch's symbols to resolve against.
func (s *Store) ApplyBatch(batch types.IndexBatch) {
	for _, reg := range batch.Files {
		s.FileStore.Put(reg)
	}
	byFile := make(map[types.FileID][]types.Import)
	for _, imp := range batch.Imports {
		byFile[imp.FileID] = append(byFile[imp.FileID], imp)
	}
	for fileID, imports := range byFile {
		s.ImportStore.Put(fileID, imports)
	}
	for _, sf := range batch.Symbols {
		s.SymbolStore.Put(sf.Symbol)
		s.FullText.Add(sf.Symbol.LanguageID, fulltext.Document{
			SymbolID:  sf.Symbol.ID,
			Name:      sf.Symbol.Name,
			Doc:       sf.Symbol.DocComment,
			Signature: sf.Symbol.Signature,
		})
	}
}
