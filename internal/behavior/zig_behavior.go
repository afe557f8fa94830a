package behavior

import (
	"strings"

	"github.com/standardbeagle/lci/internal/resolve"
	"github.com/standardbeagle/lci/internal/types"
)

// Zig implements LanguageBehavior for Zig. Files are already implicit
// structs/namespaces; `pub` is the only visibility keyword, and there is
// no inheritance mechanism at all beyond struct composition.
type Zig struct {
	state   *State
	inherit *resolve.Graph
}

func NewZig() *Zig {
	return &Zig{state: NewState(), inherit: resolve.NewGraph()}
}

func (z *Zig) LanguageID() string      { return "zig" }
func (z *Zig) ModuleSeparator() string { return "." }

func (z *Zig) FormatModulePath(base, symbolName string) string {
	switch {
	case base == "":
		return symbolName
	case symbolName == "" || symbolName == "<file>":
		return base
	default:
		return base + "." + symbolName
	}
}

func (z *Zig) ModulePathFromFile(filePath, projectRoot string, extensions []string) (string, bool) {
	rel := strings.TrimPrefix(filePath, projectRoot)
	rel = strings.TrimPrefix(rel, "/")
	for _, ext := range extensions {
		rel = strings.TrimSuffix(rel, ext)
	}
	return strings.ReplaceAll(rel, "/", "."), true
}

func (z *Zig) ParseVisibility(signature string) types.Visibility {
	if strings.Contains(strings.TrimSpace(signature), "pub ") {
		return types.VisibilityPublic
	}
	return types.VisibilityCrate // file-private: IsSymbolVisibleFromFile accepts it only from the same file
}

func (z *Zig) SupportsTraits() bool            { return false }
func (z *Zig) SupportsInherentMethods() bool   { return true }
func (z *Zig) InheritanceRelationName() string { return "implements" }

func (z *Zig) CreateResolutionContext(fileID types.FileID) resolve.ResolutionScope {
	return resolve.NewScope(fileID)
}

func (z *Zig) CreateInheritanceResolver() resolve.InheritanceResolver { return z.inherit }

func (z *Zig) IsResolvableSymbol(sym types.Symbol) bool {
	switch sym.Scope.Context {
	case types.ScopeLocal, types.ScopeParameter:
		return false
	default:
		return true
	}
}

func (z *Zig) IsSymbolVisibleFromFile(sym types.Symbol, fromFile types.FileID, fromModulePath string, _ resolve.InheritanceResolver) bool {
	if sym.Visibility == types.VisibilityPublic {
		return true
	}
	return sym.FileID == fromFile
}

func (z *Zig) ImportMatchesSymbol(importPath, symbolModulePath string, _ string) bool {
	return importPath == symbolModulePath
}

func (z *Zig) ResolveMethodCall(call types.MethodCall, receiverTypes map[string]string, ctx resolve.ResolutionScope, cache resolve.SymbolCache) (types.SymbolID, resolve.Outcome) {
	return resolveMethodCallGeneric(call, receiverTypes, ctx, cache)
}

func (z *Zig) DisambiguateSymbol(name string, candidates []types.Symbol, kind types.RelationshipKind, role DisambiguationRole) (types.SymbolID, bool) {
	return disambiguateByFileProximity(candidates)
}

func (z *Zig) IsValidRelationship(fromKind, toKind types.SymbolKind, kind types.RelationshipKind) bool {
	return types.IsValidRelationship(fromKind, toKind, kind)
}

func (z *Zig) ResolveExternalCallTarget(u types.UnresolvedRelationship, scope *resolve.Scope) (module, symbol string, ok bool) {
	return resolveExternalCallTargetGeneric(u, scope)
}

func (z *Zig) ConfigureSymbol(sym *types.Symbol, modulePath string) {
	sym.ModulePath = modulePath
}
