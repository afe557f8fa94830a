// Package resolve implements the language-agnostic resolution engine (§4.4):
// scope stacks, import-binding bookkeeping, the inheritance resolver, and
// the two context-construction entry points (full path and pipeline path).
// Nothing here knows about a specific language; internal/behavior supplies
// the per-language policy (visibility, import matching, disambiguation) that
// drives this package's generic mechanics.
package resolve

import "github.com/standardbeagle/lci/internal/types"

// Level is a scope's priority tier for lookup, highest first per §4.4:
// Local > Module (imports > file symbols > same-package) > Package > Global.
type Level uint8

const (
	LevelLocal Level = iota
	LevelModuleImports
	LevelModuleFile
	LevelModulePackage
	LevelPackage
	LevelGlobal
)

// Outcome is the three-way result of a name resolution attempt (§4.4
// PipelineSymbolCache.resolve).
type Outcome uint8

const (
	NotFound Outcome = iota
	Found
	Ambiguous
)

// ResolutionScope is the per-file view of which names resolve to which
// symbol ids (§4.4). Both construction paths (full and pipeline) produce a
// value satisfying this interface.
type ResolutionScope interface {
	FileID() types.FileID
	AddSymbol(name string, id types.SymbolID, level Level)
	Resolve(name string) (types.SymbolID, Outcome)
	Candidates(name string) []types.SymbolID
	EnterScope()
	ExitScope()
	PopulateImports(imports []types.Import)
	RegisterImportBinding(binding types.ImportBinding)
}

// scopeFrame is one level of the local scope stack pushed by EnterScope.
type scopeFrame map[string]types.SymbolID

// Scope is the concrete, language-agnostic ResolutionScope implementation.
// Every built-in behavior's CreateResolutionContext returns a plain *Scope;
// none embeds or wraps it.
type Scope struct {
	file types.FileID

	locals []scopeFrame // stack; top of stack is innermost Local scope

	moduleImports map[string][]types.SymbolID
	moduleFile    map[string][]types.SymbolID
	modulePackage map[string][]types.SymbolID
	pkg           map[string][]types.SymbolID
	global        map[string][]types.SymbolID

	bindings []types.ImportBinding
}

// NewScope returns an empty Scope rooted at file.
func NewScope(file types.FileID) *Scope {
	return &Scope{
		file:          file,
		moduleImports: make(map[string][]types.SymbolID),
		moduleFile:    make(map[string][]types.SymbolID),
		modulePackage: make(map[string][]types.SymbolID),
		pkg:           make(map[string][]types.SymbolID),
		global:        make(map[string][]types.SymbolID),
	}
}

func (s *Scope) FileID() types.FileID { return s.file }

func (s *Scope) EnterScope() { s.locals = append(s.locals, scopeFrame{}) }

func (s *Scope) ExitScope() {
	if len(s.locals) > 0 {
		s.locals = s.locals[:len(s.locals)-1]
	}
}

func (s *Scope) AddSymbol(name string, id types.SymbolID, level Level) {
	if level == LevelLocal {
		if len(s.locals) == 0 {
			s.EnterScope()
		}
		s.locals[len(s.locals)-1][name] = id
		return
	}
	bucket := s.bucketFor(level)
	(*bucket)[name] = append((*bucket)[name], id)
}

func (s *Scope) bucketFor(level Level) *map[string][]types.SymbolID {
	switch level {
	case LevelModuleImports:
		return &s.moduleImports
	case LevelModuleFile:
		return &s.moduleFile
	case LevelModulePackage:
		return &s.modulePackage
	case LevelPackage:
		return &s.pkg
	default:
		return &s.global
	}
}

// Resolve walks Local > ModuleImports > ModuleFile > ModulePackage >
// Package > Global, in that order, returning the first hit. A bucket with
// more than one candidate at the same level is Ambiguous rather than an
// arbitrary pick — callers needing a pick call Candidates and delegate to
// LanguageBehavior.DisambiguateSymbol.
func (s *Scope) Resolve(name string) (types.SymbolID, Outcome) {
	for i := len(s.locals) - 1; i >= 0; i-- {
		if id, ok := s.locals[i][name]; ok {
			return id, Found
		}
	}
	for _, bucket := range []map[string][]types.SymbolID{
		s.moduleImports, s.moduleFile, s.modulePackage, s.pkg, s.global,
	} {
		if ids, ok := bucket[name]; ok {
			switch len(ids) {
			case 0:
				continue
			case 1:
				return ids[0], Found
			default:
				return 0, Ambiguous
			}
		}
	}
	return 0, NotFound
}

// Candidates returns every symbol id registered under name across all
// scope levels, most-local first, for use by DisambiguateSymbol.
func (s *Scope) Candidates(name string) []types.SymbolID {
	var out []types.SymbolID
	for i := len(s.locals) - 1; i >= 0; i-- {
		if id, ok := s.locals[i][name]; ok {
			out = append(out, id)
		}
	}
	for _, bucket := range []map[string][]types.SymbolID{
		s.moduleImports, s.moduleFile, s.modulePackage, s.pkg, s.global,
	} {
		out = append(out, bucket[name]...)
	}
	return out
}

// PopulateImports is a no-op on Scope, and no type in this module
// overrides it; it exists so callers holding only a ResolutionScope can
// call it uniformly. Imports reach a Scope through RegisterImportBinding,
// which BuildFullContext calls once per binding.
func (s *Scope) PopulateImports(imports []types.Import) {}

// RegisterImportBinding inserts an internal binding with a known symbol
// into ModuleImports scope under its primary (exposed) name, which is how
// `use X::Y` propagates a resolvable Y (§4.4).
func (s *Scope) RegisterImportBinding(binding types.ImportBinding) {
	s.bindings = append(s.bindings, binding)
	if binding.Origin == types.OriginInternal && binding.ResolvedSymbol != 0 {
		s.AddSymbol(binding.ExposedName, binding.ResolvedSymbol, LevelModuleImports)
	}
}

// Bindings returns every import binding registered so far, for callers that
// need to inspect origins directly (e.g. import_matches_symbol tests).
func (s *Scope) Bindings() []types.ImportBinding { return s.bindings }
