package behavior

import (
	"strings"

	"github.com/standardbeagle/lci/internal/resolve"
	"github.com/standardbeagle/lci/internal/types"
)

// TypeScript implements LanguageBehavior for TypeScript. JavaScript
// (javascript_behavior.go) is a separate type that reuses the same
// relative-import resolution. Module paths are dot-joined from the
// directory-relative file path; tsconfig path aliases
// (config.ResolverRules) are not applied.
type TypeScript struct {
	state   *State
	inherit *resolve.Graph
}

func NewTypeScript() *TypeScript {
	return &TypeScript{state: NewState(), inherit: resolve.NewGraph()}
}

func (t *TypeScript) LanguageID() string      { return "typescript" }
func (t *TypeScript) ModuleSeparator() string { return "." }

func (t *TypeScript) FormatModulePath(base, _ string) string { return base }

func (t *TypeScript) ModulePathFromFile(filePath, projectRoot string, extensions []string) (string, bool) {
	rel := strings.TrimPrefix(filePath, projectRoot)
	rel = strings.TrimPrefix(rel, "/")
	for _, ext := range extensions {
		rel = strings.TrimSuffix(rel, ext)
	}
	rel = strings.TrimSuffix(rel, "/index")
	return strings.ReplaceAll(rel, "/", "."), true
}

func (t *TypeScript) ParseVisibility(signature string) types.Visibility {
	switch {
	case strings.Contains(signature, "export "):
		return types.VisibilityPublic
	case strings.Contains(signature, "private ") || strings.Contains(signature, "#"):
		return types.VisibilityPrivate
	case strings.Contains(signature, "protected "):
		return types.VisibilityModule
	default:
		return types.VisibilityPrivate
	}
}

func (t *TypeScript) SupportsTraits() bool            { return true } // interfaces
func (t *TypeScript) SupportsInherentMethods() bool   { return true }
func (t *TypeScript) InheritanceRelationName() string { return "implements" }

func (t *TypeScript) CreateResolutionContext(fileID types.FileID) resolve.ResolutionScope {
	return resolve.NewScope(fileID)
}

func (t *TypeScript) CreateInheritanceResolver() resolve.InheritanceResolver { return t.inherit }

func (t *TypeScript) IsResolvableSymbol(sym types.Symbol) bool {
	switch sym.Scope.Context {
	case types.ScopeLocal, types.ScopeParameter:
		return false
	case types.ScopeClassMember:
		return sym.Visibility != types.VisibilityPrivate
	default:
		return true
	}
}

func (t *TypeScript) IsSymbolVisibleFromFile(sym types.Symbol, fromFile types.FileID, fromModulePath string, _ resolve.InheritanceResolver) bool {
	if sym.Visibility == types.VisibilityPublic {
		return true
	}
	if sym.FileID == fromFile {
		return true
	}
	if sym.Visibility == types.VisibilityModule {
		return sym.ModulePath == fromModulePath
	}
	return false
}

// ImportMatchesSymbol implements TypeScript's relative-import normalization
// (S3): "./button" and "../ui/button" both resolve against importingModule.
func (t *TypeScript) ImportMatchesSymbol(importPath, symbolModulePath string, importingModule string) bool {
	if importPath == symbolModulePath {
		return true
	}
	if importingModule == "" {
		return false
	}
	resolved := resolveRelativeTSImport(importPath, importingModule)
	return resolved == symbolModulePath || resolved+".index" == symbolModulePath
}

func resolveRelativeTSImport(importPath, importingModule string) string {
	normalize := func(p string) string { return strings.ReplaceAll(p, "/", ".") }

	switch {
	case strings.HasPrefix(importPath, "./"):
		rel := normalize(strings.TrimPrefix(importPath, "./"))
		if importingModule == "" {
			return rel
		}
		return importingModule + "." + rel
	case strings.HasPrefix(importPath, "../"):
		parts := strings.Split(importingModule, ".")
		remaining := importPath
		for strings.HasPrefix(remaining, "../") {
			if len(parts) > 0 {
				parts = parts[:len(parts)-1]
			}
			remaining = remaining[3:]
		}
		if remaining != "" {
			for _, seg := range strings.Split(normalize(remaining), ".") {
				if seg != "" {
					parts = append(parts, seg)
				}
			}
		}
		return strings.Join(parts, ".")
	default:
		return importPath
	}
}

func (t *TypeScript) ResolveMethodCall(call types.MethodCall, receiverTypes map[string]string, ctx resolve.ResolutionScope, cache resolve.SymbolCache) (types.SymbolID, resolve.Outcome) {
	return resolveMethodCallGeneric(call, receiverTypes, ctx, cache)
}

func (t *TypeScript) DisambiguateSymbol(name string, candidates []types.Symbol, kind types.RelationshipKind, role DisambiguationRole) (types.SymbolID, bool) {
	return disambiguateByFileProximity(candidates)
}

func (t *TypeScript) IsValidRelationship(fromKind, toKind types.SymbolKind, kind types.RelationshipKind) bool {
	return types.IsValidRelationship(fromKind, toKind, kind)
}

func (t *TypeScript) ResolveExternalCallTarget(u types.UnresolvedRelationship, scope *resolve.Scope) (module, symbol string, ok bool) {
	return resolveExternalCallTargetGeneric(u, scope)
}

func (t *TypeScript) ConfigureSymbol(sym *types.Symbol, modulePath string) {
	sym.ModulePath = modulePath
}
