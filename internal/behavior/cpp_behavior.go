package behavior

import (
	"strings"

	"github.com/standardbeagle/lci/internal/resolve"
	"github.com/standardbeagle/lci/internal/types"
)

// Cpp implements LanguageBehavior for C++. Namespaces use `::`; visibility
// is tracked per access-specifier block in the parser and carried on the
// signature the same way Rust's `pub` is, so ParseVisibility mirrors Rust's
// keyword scan with C++ spelling.
type Cpp struct {
	state   *State
	inherit *resolve.Graph
}

func NewCpp() *Cpp {
	return &Cpp{state: NewState(), inherit: resolve.NewGraph()}
}

func (c *Cpp) LanguageID() string      { return "cpp" }
func (c *Cpp) ModuleSeparator() string { return "::" }

func (c *Cpp) FormatModulePath(base, symbolName string) string {
	switch {
	case base == "":
		return symbolName
	case symbolName == "" || symbolName == "<file>":
		return base
	default:
		return base + "::" + symbolName
	}
}

func (c *Cpp) ModulePathFromFile(filePath, projectRoot string, extensions []string) (string, bool) {
	rel := strings.TrimPrefix(filePath, projectRoot)
	rel = strings.TrimPrefix(rel, "/")
	for _, ext := range extensions {
		rel = strings.TrimSuffix(rel, ext)
	}
	return strings.ReplaceAll(rel, "/", "::"), true
}

func (c *Cpp) ParseVisibility(signature string) types.Visibility {
	switch {
	case strings.Contains(signature, "private:") || strings.Contains(signature, "private "):
		return types.VisibilityPrivate
	case strings.Contains(signature, "protected:") || strings.Contains(signature, "protected "):
		return types.VisibilityModule
	case strings.HasPrefix(strings.TrimSpace(signature), "static "):
		return types.VisibilityCrate // translation-unit-local linkage
	default:
		return types.VisibilityPublic
	}
}

func (c *Cpp) SupportsTraits() bool            { return false }
func (c *Cpp) SupportsInherentMethods() bool   { return true }
func (c *Cpp) InheritanceRelationName() string { return "extends" }

func (c *Cpp) CreateResolutionContext(fileID types.FileID) resolve.ResolutionScope {
	return resolve.NewScope(fileID)
}

func (c *Cpp) CreateInheritanceResolver() resolve.InheritanceResolver { return c.inherit }

func (c *Cpp) IsResolvableSymbol(sym types.Symbol) bool {
	switch sym.Scope.Context {
	case types.ScopeLocal, types.ScopeParameter:
		return false
	case types.ScopeClassMember:
		return sym.Visibility != types.VisibilityPrivate
	default:
		return true
	}
}

func (c *Cpp) IsSymbolVisibleFromFile(sym types.Symbol, fromFile types.FileID, fromModulePath string, _ resolve.InheritanceResolver) bool {
	switch sym.Visibility {
	case types.VisibilityPublic:
		return true
	case types.VisibilityCrate:
		return sym.FileID == fromFile
	case types.VisibilityModule:
		return sym.ModulePath == fromModulePath
	default:
		return sym.FileID == fromFile
	}
}

func (c *Cpp) ImportMatchesSymbol(importPath, symbolModulePath string, _ string) bool {
	return importPath == symbolModulePath
}

func (c *Cpp) ResolveMethodCall(call types.MethodCall, receiverTypes map[string]string, ctx resolve.ResolutionScope, cache resolve.SymbolCache) (types.SymbolID, resolve.Outcome) {
	return resolveMethodCallGeneric(call, receiverTypes, ctx, cache)
}

func (c *Cpp) DisambiguateSymbol(name string, candidates []types.Symbol, kind types.RelationshipKind, role DisambiguationRole) (types.SymbolID, bool) {
	return disambiguateByFileProximity(candidates)
}

func (c *Cpp) IsValidRelationship(fromKind, toKind types.SymbolKind, kind types.RelationshipKind) bool {
	return types.IsValidRelationship(fromKind, toKind, kind)
}

func (c *Cpp) ResolveExternalCallTarget(u types.UnresolvedRelationship, scope *resolve.Scope) (module, symbol string, ok bool) {
	return resolveExternalCallTargetGeneric(u, scope)
}

func (c *Cpp) ConfigureSymbol(sym *types.Symbol, modulePath string) {
	sym.ModulePath = modulePath
}
