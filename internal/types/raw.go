package types

// Raw* types are what PARSE emits, before COLLECT assigns ids (§3 "Raw vs.
// final types"). They carry names and ranges instead of ids so a file can be
// parsed completely independently of every other file and of the store.

// RawSymbol is a parsed-but-unassigned symbol.
type RawSymbol struct {
	Name       string
	Kind       SymbolKind
	Range      Range
	Signature  string
	DocComment string
	Visibility Visibility
	// VisibilitySet marks Visibility as parser evidence (read directly from
	// the AST) rather than the field's unset zero value, so COLLECT knows
	// when it is safe to fall back to the behavior's textual rule (§3).
	VisibilitySet bool
	Scope      Scope
	// ModulePath is filled in by the owning LanguageBehavior during COLLECT
	// (configure_symbol), not by the parser itself, since it depends on the
	// file's location in the project, which the parser does not know.
	ModulePath string
}

// RawImport is a parsed-but-unbound import; it lacks a FileID because the
// parser runs before COLLECT allocates one.
type RawImport struct {
	Path       string
	Alias      string
	IsGlob     bool
	IsTypeOnly bool
}

// RawRelationship is a parsed-but-unresolved edge, named by text rather than
// id. FromRange pinpoints the calling symbol when two symbols in the same
// file share a name; ToRange assists second-phase disambiguation when the
// target also shares its name with other candidates (§3).
type RawRelationship struct {
	FromName  string
	FromRange Range
	ToName    string
	ToRange   Range
	Kind      RelationshipKind
	Metadata  *RelMetadata
}

// MethodCall is the structured shape a parser's method-call finder returns;
// behaviors dispatch on IsStatic/Receiver to resolve static, instance, and
// self calls uniformly (§4.1, §4.2 ResolveMethodCall).
type MethodCall struct {
	Caller      string
	MethodName  string
	Receiver    string // empty if none (bare function call)
	IsStatic    bool
	Range       Range
	CallerRange Range
}
