package behavior

import (
	"strings"

	"github.com/standardbeagle/lci/internal/resolve"
	"github.com/standardbeagle/lci/internal/types"
)

// JavaScript implements LanguageBehavior for plain JS/JSX. It shares its
// relative-import normalization with TypeScript (CommonJS/ESM both use the
// same ./ and ../ conventions) but has no class-visibility keywords beyond
// ES2022 `#private` fields, so ParseVisibility is more permissive than
// TypeScript's.
type JavaScript struct {
	state   *State
	inherit *resolve.Graph
}

func NewJavaScript() *JavaScript {
	return &JavaScript{state: NewState(), inherit: resolve.NewGraph()}
}

func (j *JavaScript) LanguageID() string      { return "javascript" }
func (j *JavaScript) ModuleSeparator() string { return "." }

func (j *JavaScript) FormatModulePath(base, _ string) string { return base }

func (j *JavaScript) ModulePathFromFile(filePath, projectRoot string, extensions []string) (string, bool) {
	rel := strings.TrimPrefix(filePath, projectRoot)
	rel = strings.TrimPrefix(rel, "/")
	for _, ext := range extensions {
		rel = strings.TrimSuffix(rel, ext)
	}
	rel = strings.TrimSuffix(rel, "/index")
	return strings.ReplaceAll(rel, "/", "."), true
}

func (j *JavaScript) ParseVisibility(signature string) types.Visibility {
	switch {
	case strings.Contains(signature, "#"):
		return types.VisibilityPrivate
	case strings.Contains(signature, "export "):
		return types.VisibilityPublic
	default:
		// CommonJS has no export keyword on the declaration itself;
		// module.exports wiring is tracked separately, so default open.
		return types.VisibilityPublic
	}
}

func (j *JavaScript) SupportsTraits() bool            { return false }
func (j *JavaScript) SupportsInherentMethods() bool   { return true }
func (j *JavaScript) InheritanceRelationName() string { return "extends" }

func (j *JavaScript) CreateResolutionContext(fileID types.FileID) resolve.ResolutionScope {
	return resolve.NewScope(fileID)
}

func (j *JavaScript) CreateInheritanceResolver() resolve.InheritanceResolver { return j.inherit }

func (j *JavaScript) IsResolvableSymbol(sym types.Symbol) bool {
	switch sym.Scope.Context {
	case types.ScopeLocal, types.ScopeParameter:
		return false
	case types.ScopeClassMember:
		return sym.Visibility != types.VisibilityPrivate
	default:
		return true
	}
}

func (j *JavaScript) IsSymbolVisibleFromFile(sym types.Symbol, fromFile types.FileID, fromModulePath string, _ resolve.InheritanceResolver) bool {
	if sym.Visibility == types.VisibilityPublic {
		return true
	}
	return sym.FileID == fromFile
}

func (j *JavaScript) ImportMatchesSymbol(importPath, symbolModulePath string, importingModule string) bool {
	if importPath == symbolModulePath {
		return true
	}
	if importingModule == "" {
		return false
	}
	resolved := resolveRelativeTSImport(importPath, importingModule)
	return resolved == symbolModulePath || resolved+".index" == symbolModulePath
}

func (j *JavaScript) ResolveMethodCall(call types.MethodCall, receiverTypes map[string]string, ctx resolve.ResolutionScope, cache resolve.SymbolCache) (types.SymbolID, resolve.Outcome) {
	return resolveMethodCallGeneric(call, receiverTypes, ctx, cache)
}

func (j *JavaScript) DisambiguateSymbol(name string, candidates []types.Symbol, kind types.RelationshipKind, role DisambiguationRole) (types.SymbolID, bool) {
	return disambiguateByFileProximity(candidates)
}

func (j *JavaScript) IsValidRelationship(fromKind, toKind types.SymbolKind, kind types.RelationshipKind) bool {
	return types.IsValidRelationship(fromKind, toKind, kind)
}

func (j *JavaScript) ResolveExternalCallTarget(u types.UnresolvedRelationship, scope *resolve.Scope) (module, symbol string, ok bool) {
	return resolveExternalCallTargetGeneric(u, scope)
}

func (j *JavaScript) ConfigureSymbol(sym *types.Symbol, modulePath string) {
	sym.ModulePath = modulePath
}
