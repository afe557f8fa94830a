// Package parser implements the per-language PARSE stage (§4.1): turning one
// file's source bytes into Raw* types that name symbols, imports, and
// relationships by text rather than id. All ten registered languages share
// one tree-sitter-backed Engine (engine.go); a LanguageSpec (spec.go) is the
// only per-language data a parser supplies.
package parser

import (
	"github.com/standardbeagle/lci/internal/types"
)

// Result is everything one file's PARSE step produces, handed to COLLECT
// unmodified (§3, §4.5).
type Result struct {
	Symbols       []types.RawSymbol
	Imports       []types.RawImport
	Relationships []types.RawRelationship
	Calls         []types.MethodCall
	// UnknownNodeKinds is the slot for node kinds the query set did not
	// recognize (§4.1 "coverage tracking"); Engine.Parse never fills it,
	// so it is always empty.
	UnknownNodeKinds []string
}

// Parser is the contract every language parser satisfies. It is
// deliberately narrow: PARSE never needs more than this to stay
// language-agnostic (§4.1).
type Parser interface {
	LanguageID() string
	Parse(content []byte, ctx *Context) (Result, error)
}

// MaxTraversalDepth bounds recursive node visits so a pathologically nested
// file (generated code, minified bundles) cannot blow the goroutine stack
// (§4.1 "bounded recursion depth").
const MaxTraversalDepth = 100

// Context carries the per-file bookkeeping a parser needs but that does not
// belong in the language-agnostic Result: the file id for range-free raw
// types that still need file association downstream, and a doc-comment
// lookaside used by languages whose grammar attaches comments as siblings
// rather than as AST children of the symbol they document.
type Context struct {
	FileID       types.FileID
	FilePath     string
	PrecedingDoc map[int]string // symbol start line -> doc comment text
}

// NewContext returns an empty Context for one file.
func NewContext(fileID types.FileID, filePath string) *Context {
	return &Context{FileID: fileID, FilePath: filePath, PrecedingDoc: make(map[int]string)}
}
