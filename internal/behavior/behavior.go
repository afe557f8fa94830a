// Package behavior implements per-language semantics that cannot live in a
// parser (§4.2): visibility rules, module-path computation, import
// matching, inheritance/protocol modeling, and resolution-context
// construction. One LanguageBehavior implementation exists per registered
// language; all satisfy this single interface so the pipeline and
// resolution engine never special-case a language by name.
package behavior

import (
	"github.com/standardbeagle/lci/internal/config"
	"github.com/standardbeagle/lci/internal/resolve"
	"github.com/standardbeagle/lci/internal/types"
)

// LanguageBehavior is the full per-language capability set from §4.2.
type LanguageBehavior interface {
	LanguageID() string

	// ModuleSeparator returns the language's module-path separator, e.g.
	// "::" for Rust, "." for Python/Java, "/" for Go, `\` for PHP.
	ModuleSeparator() string

	// FormatModulePath joins a base module path with a symbol name using
	// the language's separator.
	FormatModulePath(base, symbolName string) string

	// ModulePathFromFile computes the canonical module string for a file,
	// given the project root and the registry's extensions for this
	// language (so the extension can be stripped before joining
	// components).
	ModulePathFromFile(filePath, projectRoot string, extensions []string) (string, bool)

	// ParseVisibility is the fallback visibility classifier used when a
	// parser did not already set one from AST evidence (§3: "parser
	// evidence wins").
	ParseVisibility(signature string) types.Visibility

	SupportsTraits() bool
	SupportsInherentMethods() bool
	InheritanceRelationName() string

	// CreateResolutionContext returns a new, empty ResolutionScope for the
	// given file; every built-in behavior returns resolve.NewScope(fileID).
	// Populated scopes come from internal/resolve's BuildFullContext and
	// BuildPipelineContext, which the pipeline calls directly.
	CreateResolutionContext(fileID types.FileID) resolve.ResolutionScope
	CreateInheritanceResolver() resolve.InheritanceResolver

	// IsResolvableSymbol filters local variables, parameters, and private
	// class members out of cross-scope lookup.
	IsResolvableSymbol(sym types.Symbol) bool

	// IsSymbolVisibleFromFile implements the language's visibility rule
	// for a lookup originating in fromFile (S2, S4).
	IsSymbolVisibleFromFile(sym types.Symbol, fromFile types.FileID, fromModulePath string, inheritance resolve.InheritanceResolver) bool

	// ImportMatchesSymbol implements relative-path normalization and
	// wildcard semantics for a single import against a candidate symbol's
	// module path (S3).
	ImportMatchesSymbol(importPath, symbolModulePath string, importingModule string) bool

	// ResolveMethodCall dispatches a parsed MethodCall to a target symbol
	// id, given a receiver->type map (populated from FindVariableTypes)
	// and the pipeline-side symbol cache.
	ResolveMethodCall(call types.MethodCall, receiverTypes map[string]string, ctx resolve.ResolutionScope, cache resolve.SymbolCache) (types.SymbolID, resolve.Outcome)

	// DisambiguateSymbol picks among same-named candidates during
	// relationship resolution.
	DisambiguateSymbol(name string, candidates []types.Symbol, kind types.RelationshipKind, role DisambiguationRole) (types.SymbolID, bool)

	// IsValidRelationship delegates to the universal compatibility table
	// by default; a language may override to add (never remove) pairs.
	IsValidRelationship(fromKind, toKind types.SymbolKind, kind types.RelationshipKind) bool

	// ResolveExternalCallTarget implements resolve_external_call_target
	// (§4.5): when an edge resolves to nothing in-project, this decides
	// whether it is still worth stubbing as an external symbol, and if so
	// which (module, symbol) pair to stub it under. Returns ok=false when
	// the call cannot be pinned to a real import.
	ResolveExternalCallTarget(u types.UnresolvedRelationship, scope *resolve.Scope) (module, symbol string, ok bool)

	// ConfigureSymbol is called once per raw symbol during COLLECT step 2:
	// it fills in ModulePath and may refine Visibility from module
	// context, but must never overwrite a parser-derived value (§3).
	ConfigureSymbol(sym *types.Symbol, modulePath string)
}

// DisambiguationRole tells DisambiguateSymbol which side of a relationship
// is being resolved, since the right tie-break heuristic differs for a call
// target versus an inheritance parent.
type DisambiguationRole uint8

const (
	RoleCallTarget DisambiguationRole = iota
	RoleInheritanceParent
	RoleGenericReference
)

// State is the small, per-session, in-memory bookkeeping a behavior may
// need while a single indexing run is in flight (file/module/import
// tracking). It is never durable; the store is durable (§4.2 "Behaviors may
// hold a small in-memory BehaviorState").
type State struct {
	fileModules map[types.FileID]string
	fileImports map[types.FileID][]types.Import
}

// NewState returns an empty State.
func NewState() *State {
	return &State{
		fileModules: make(map[types.FileID]string),
		fileImports: make(map[types.FileID][]types.Import),
	}
}

func (s *State) RegisterFile(id types.FileID, modulePath string) {
	s.fileModules[id] = modulePath
}

func (s *State) ModulePath(id types.FileID) (string, bool) {
	mp, ok := s.fileModules[id]
	return mp, ok
}

func (s *State) AddImport(imp types.Import) {
	s.fileImports[imp.FileID] = append(s.fileImports[imp.FileID], imp)
}

func (s *State) ImportsForFile(id types.FileID) []types.Import {
	return s.fileImports[id]
}

// ProjectRules aliases config.ResolverRules (tsconfig-style path aliases,
// Java/PHP source roots). No behavior reads it: every ModulePathFromFile
// derives the module path from the file path, project root and extensions
// alone.
type ProjectRules = config.ResolverRules
