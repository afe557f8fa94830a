package parser

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/standardbeagle/lci/internal/types"
)

// LanguageSpec is the only per-language input the shared Engine needs: a
// lazily-constructed tree-sitter Language plus the tree-sitter queries that
// locate symbols, imports, and calls in that language's grammar (§4.1,
// §4.2 "one behavior/parser pair per language id"). Each registered
// language supplies exactly one of these; all query execution, range
// extraction, and doc-comment attachment live in engine.go and are shared.
type LanguageSpec struct {
	ID       string
	Language func() *tree_sitter.Language

	// SymbolQuery captures whole-symbol nodes under a capture name (e.g.
	// "function", "method", "class") with the defining identifier under
	// "<name>.name". CaptureKinds maps each base capture name to the
	// SymbolKind it produces.
	SymbolQuery  string
	CaptureKinds map[string]types.SymbolKind

	// ImportQuery captures whole import statements under "import", with
	// the path/module text under ImportPathCapture.
	ImportQuery       string
	ImportPathCapture string

	// CallQuery captures call sites under "call", with the invoked name
	// under "call.method" and an optional receiver under "call.receiver".
	CallQuery string

	// ImplementsQuery captures one interface/trait a type declares
	// satisfying, with the implementing type under "impl.child" and the
	// satisfied interface/trait under "impl.parent". Nil for grammars with
	// no syntactic implements form (Go's interface satisfaction is
	// structural, not declared; Zig has no such concept).
	ImplementsQuery string

	// ExtendsQuery captures one base type a type declares extending, with
	// the subtype under "extend.child" and the base type under
	// "extend.parent". Grammars whose base-list syntax does not distinguish
	// extends from implements (C#) route every base-list entry through
	// this query; RelExtends's compatibility rule accepts interface,
	// trait, struct, enum, and class on both sides, so the matrix still
	// validates whichever the entry actually was.
	ExtendsQuery string

	// UsesQuery captures one type reference (a parameter, field, or return
	// type) under "use.type"; the referencing symbol is recovered the same
	// way a call's caller is: the tightest enclosing declaration.
	UsesQuery string

	// DocCommentNodeKind is the grammar's line/block comment node kind,
	// used to pick up a comment immediately preceding a symbol.
	DocCommentNodeKind string
}
