package behavior

import (
	"strings"

	"github.com/standardbeagle/lci/internal/resolve"
	"github.com/standardbeagle/lci/internal/types"
)

// Rust implements LanguageBehavior for Rust. Module paths use `::`;
// visibility follows `pub`/`pub(crate)`/private-by-default; traits provide
// both interface-like dispatch and inherent impl blocks exist separately,
// so both SupportsTraits and SupportsInherentMethods are true.
type Rust struct {
	state   *State
	inherit *resolve.Graph
}

func NewRust() *Rust {
	return &Rust{state: NewState(), inherit: resolve.NewGraph()}
}

func (r *Rust) LanguageID() string      { return "rust" }
func (r *Rust) ModuleSeparator() string { return "::" }

func (r *Rust) FormatModulePath(base, symbolName string) string {
	switch {
	case base == "":
		return symbolName
	case symbolName == "" || symbolName == "<file>":
		return base
	default:
		return base + "::" + symbolName
	}
}

func (r *Rust) ModulePathFromFile(filePath, projectRoot string, extensions []string) (string, bool) {
	rel := strings.TrimPrefix(filePath, projectRoot)
	rel = strings.TrimPrefix(rel, "/")
	for _, ext := range extensions {
		rel = strings.TrimSuffix(rel, ext)
	}
	rel = strings.TrimSuffix(rel, "/mod")
	rel = strings.TrimSuffix(rel, "/lib")
	rel = strings.TrimSuffix(rel, "/main")
	if rel == "" {
		return "crate", true
	}
	return "crate::" + strings.ReplaceAll(rel, "/", "::"), true
}

func (r *Rust) ParseVisibility(signature string) types.Visibility {
	trimmed := strings.TrimSpace(signature)
	switch {
	case strings.Contains(trimmed, "pub(crate)"):
		return types.VisibilityCrate
	case strings.Contains(trimmed, "pub("):
		return types.VisibilityModule
	case strings.HasPrefix(trimmed, "pub ") || strings.Contains(trimmed, " pub "):
		return types.VisibilityPublic
	default:
		return types.VisibilityPrivate
	}
}

func (r *Rust) SupportsTraits() bool            { return true }
func (r *Rust) SupportsInherentMethods() bool   { return true }
func (r *Rust) InheritanceRelationName() string { return "implements" }

func (r *Rust) CreateResolutionContext(fileID types.FileID) resolve.ResolutionScope {
	return resolve.NewScope(fileID)
}

func (r *Rust) CreateInheritanceResolver() resolve.InheritanceResolver { return r.inherit }

func (r *Rust) IsResolvableSymbol(sym types.Symbol) bool {
	switch sym.Scope.Context {
	case types.ScopeLocal, types.ScopeParameter:
		return false
	case types.ScopeClassMember:
		return sym.Visibility != types.VisibilityPrivate
	default:
		return true
	}
}

func (r *Rust) IsSymbolVisibleFromFile(sym types.Symbol, fromFile types.FileID, fromModulePath string, _ resolve.InheritanceResolver) bool {
	switch sym.Visibility {
	case types.VisibilityPublic:
		return true
	case types.VisibilityCrate:
		return true // single-module indexing treats the whole project as one crate
	case types.VisibilityModule:
		return sym.ModulePath == fromModulePath
	default:
		return sym.FileID == fromFile
	}
}

// ImportMatchesSymbol compares a `use` path against a symbol's `::`-joined
// module path verbatim, except that a `::*` glob matches any direct child
// of its base path; Rust has no relative-import syntax at this level
// (super::/self:: are resolved to absolute crate paths before this check).
func (r *Rust) ImportMatchesSymbol(importPath, symbolModulePath string, _ string) bool {
	if importPath == symbolModulePath {
		return true
	}
	if base, ok := strings.CutSuffix(importPath, "::*"); ok {
		rest, ok := strings.CutPrefix(symbolModulePath, base+"::")
		return ok && !strings.Contains(rest, "::")
	}
	return false
}

func (r *Rust) ResolveMethodCall(call types.MethodCall, receiverTypes map[string]string, ctx resolve.ResolutionScope, cache resolve.SymbolCache) (types.SymbolID, resolve.Outcome) {
	return resolveMethodCallGeneric(call, receiverTypes, ctx, cache)
}

func (r *Rust) DisambiguateSymbol(name string, candidates []types.Symbol, kind types.RelationshipKind, role DisambiguationRole) (types.SymbolID, bool) {
	return disambiguateByFileProximity(candidates)
}

func (r *Rust) IsValidRelationship(fromKind, toKind types.SymbolKind, kind types.RelationshipKind) bool {
	return types.IsValidRelationship(fromKind, toKind, kind)
}

func (r *Rust) ResolveExternalCallTarget(u types.UnresolvedRelationship, scope *resolve.Scope) (module, symbol string, ok bool) {
	return resolveExternalCallTargetGeneric(u, scope)
}

func (r *Rust) ConfigureSymbol(sym *types.Symbol, modulePath string) {
	sym.ModulePath = modulePath
}
