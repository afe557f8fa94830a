package behavior

import (
	"strings"

	"github.com/standardbeagle/lci/internal/resolve"
	"github.com/standardbeagle/lci/internal/types"
)

// CSharp implements LanguageBehavior for C#. Namespaces are dot-separated
// like Java, but C# additionally has `internal` (assembly-wide) visibility,
// which this indexer maps onto VisibilityCrate since there is no
// per-assembly boundary tracked at the file level.
type CSharp struct {
	state   *State
	inherit *resolve.Graph
}

func NewCSharp() *CSharp {
	return &CSharp{state: NewState(), inherit: resolve.NewGraph()}
}

func (c *CSharp) LanguageID() string      { return "csharp" }
func (c *CSharp) ModuleSeparator() string { return "." }

func (c *CSharp) FormatModulePath(base, symbolName string) string {
	switch {
	case base == "":
		return symbolName
	case symbolName == "" || symbolName == "<file>":
		return base
	default:
		return base + "." + symbolName
	}
}

func (c *CSharp) ModulePathFromFile(filePath, projectRoot string, extensions []string) (string, bool) {
	rel := strings.TrimPrefix(filePath, projectRoot)
	rel = strings.TrimPrefix(rel, "/")
	for _, ext := range extensions {
		rel = strings.TrimSuffix(rel, ext)
	}
	dir := rel
	if i := strings.LastIndex(rel, "/"); i >= 0 {
		dir = rel[:i]
	} else {
		dir = ""
	}
	return strings.ReplaceAll(dir, "/", "."), true
}

func (c *CSharp) ParseVisibility(signature string) types.Visibility {
	trimmed := strings.TrimSpace(signature)
	switch {
	case strings.Contains(trimmed, "private "):
		return types.VisibilityPrivate
	case strings.Contains(trimmed, "protected "):
		return types.VisibilityModule
	case strings.Contains(trimmed, "internal "):
		return types.VisibilityCrate
	case strings.Contains(trimmed, "public "):
		return types.VisibilityPublic
	default:
		return types.VisibilityCrate // C# defaults to internal when unmarked
	}
}

func (c *CSharp) SupportsTraits() bool            { return true } // interfaces
func (c *CSharp) SupportsInherentMethods() bool   { return false }
func (c *CSharp) InheritanceRelationName() string { return "implements" }

func (c *CSharp) CreateResolutionContext(fileID types.FileID) resolve.ResolutionScope {
	return resolve.NewScope(fileID)
}

func (c *CSharp) CreateInheritanceResolver() resolve.InheritanceResolver { return c.inherit }

func (c *CSharp) IsResolvableSymbol(sym types.Symbol) bool {
	switch sym.Scope.Context {
	case types.ScopeLocal, types.ScopeParameter:
		return false
	case types.ScopeClassMember:
		return sym.Visibility != types.VisibilityPrivate
	default:
		return true
	}
}

func (c *CSharp) IsSymbolVisibleFromFile(sym types.Symbol, fromFile types.FileID, fromModulePath string, _ resolve.InheritanceResolver) bool {
	switch sym.Visibility {
	case types.VisibilityPublic:
		return true
	case types.VisibilityCrate:
		return true // project-wide internal, single-assembly assumption
	case types.VisibilityModule:
		return sym.ModulePath == fromModulePath
	default:
		return sym.FileID == fromFile
	}
}

func (c *CSharp) ImportMatchesSymbol(importPath, symbolModulePath string, _ string) bool {
	return importPath == symbolModulePath
}

func (c *CSharp) ResolveMethodCall(call types.MethodCall, receiverTypes map[string]string, ctx resolve.ResolutionScope, cache resolve.SymbolCache) (types.SymbolID, resolve.Outcome) {
	return resolveMethodCallGeneric(call, receiverTypes, ctx, cache)
}

func (c *CSharp) DisambiguateSymbol(name string, candidates []types.Symbol, kind types.RelationshipKind, role DisambiguationRole) (types.SymbolID, bool) {
	return disambiguateByFileProximity(candidates)
}

func (c *CSharp) IsValidRelationship(fromKind, toKind types.SymbolKind, kind types.RelationshipKind) bool {
	return types.IsValidRelationship(fromKind, toKind, kind)
}

func (c *CSharp) ResolveExternalCallTarget(u types.UnresolvedRelationship, scope *resolve.Scope) (module, symbol string, ok bool) {
	return resolveExternalCallTargetGeneric(u, scope)
}

func (c *CSharp) ConfigureSymbol(sym *types.Symbol, modulePath string) {
	sym.ModulePath = modulePath
}
