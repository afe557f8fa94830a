package types

import "time"

// FileRegistration is the durable record of one indexed file (§3 "File
// registration"). ContentHash is recomputed on every READ; an unchanged hash
// short-circuits the rest of the pipeline for that file.
type FileRegistration struct {
	Path        string
	FileID      FileID
	ContentHash uint64
	LanguageID  string
	Timestamp   time.Time
}

// UnresolvedRelationship is a RawRelationship whose FromID was resolved
// locally during COLLECT; COLLECT resolves no targets, so every target is
// looked up in INDEX's second resolution phase (§4.5 COLLECT step 4).
type UnresolvedRelationship struct {
	FromID   SymbolID
	FromName string
	ToName   string
	FileID   FileID
	Kind     RelationshipKind
	Metadata *RelMetadata
	ToRange  Range
}

// SymbolFile pairs a final Symbol with the path it came from, the shape the
// full-text store wants for a new document (§4.6).
type SymbolFile struct {
	Symbol Symbol
	Path   string
}

// IndexBatch is the unit COLLECT hands to INDEX (§3 IndexBatch). Merge is
// associative; batches are commutative only for symbols of disjoint files,
// since two batches touching the same file would race on that file's
// symbol ids.
type IndexBatch struct {
	Symbols    []SymbolFile
	Imports    []Import
	Unresolved []UnresolvedRelationship
	Files      []FileRegistration
}

// Merge appends other's contents onto b. Callers must ensure
// b and other do not share a FileID, or the associativity guarantee does
// not hold.
func (b *IndexBatch) Merge(other IndexBatch) {
	b.Symbols = append(b.Symbols, other.Symbols...)
	b.Imports = append(b.Imports, other.Imports...)
	b.Unresolved = append(b.Unresolved, other.Unresolved...)
	b.Files = append(b.Files, other.Files...)
}

// NewIndexBatch returns an empty batch with capacity hints for a
// single-file COLLECT result.
func NewIndexBatch() IndexBatch {
	return IndexBatch{
		Symbols:    make([]SymbolFile, 0, 16),
		Imports:    make([]Import, 0, 4),
		Unresolved: make([]UnresolvedRelationship, 0, 8),
		Files:      make([]FileRegistration, 0, 1),
	}
}
