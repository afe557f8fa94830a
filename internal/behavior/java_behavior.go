package behavior

import (
	"strings"

	"github.com/standardbeagle/lci/internal/resolve"
	"github.com/standardbeagle/lci/internal/types"
)

// Java implements LanguageBehavior for Java. ParseVisibility maps the four
// Java access levels onto Public (public), Module (protected), Crate
// (package-private) and Private. IsSymbolVisibleFromFile treats a protected
// member like a package-private one, visible only from the same package or
// file; subclass access from another package is not checked (the
// inheritance resolver argument is unused). Methods
// live in class bodies rather than separate inherent-impl blocks, so
// SupportsInherentMethods is false.
type Java struct {
	state   *State
	inherit *resolve.Graph
}

func NewJava() *Java {
	return &Java{state: NewState(), inherit: resolve.NewGraph()}
}

func (j *Java) LanguageID() string      { return "java" }
func (j *Java) ModuleSeparator() string { return "." }

func (j *Java) FormatModulePath(base, symbolName string) string {
	switch {
	case base == "":
		return symbolName
	case symbolName == "<file>":
		return base
	default:
		return base + "." + symbolName
	}
}

func (j *Java) ModulePathFromFile(filePath, projectRoot string, extensions []string) (string, bool) {
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

func (j *Java) ParseVisibility(signature string) types.Visibility {
	trimmed := strings.TrimSpace(signature)
	switch {
	case strings.Contains(trimmed, "private"):
		return types.VisibilityPrivate
	case strings.Contains(trimmed, "protected"):
		return types.VisibilityModule
	case strings.Contains(trimmed, "public"):
		return types.VisibilityPublic
	default:
		return types.VisibilityCrate // package-private
	}
}

func (j *Java) SupportsTraits() bool            { return true } // interfaces
func (j *Java) SupportsInherentMethods() bool   { return false }
func (j *Java) InheritanceRelationName() string { return "implements" }

func (j *Java) CreateResolutionContext(fileID types.FileID) resolve.ResolutionScope {
	return resolve.NewScope(fileID)
}

func (j *Java) CreateInheritanceResolver() resolve.InheritanceResolver { return j.inherit }

func (j *Java) IsResolvableSymbol(sym types.Symbol) bool {
	switch sym.Scope.Context {
	case types.ScopeLocal, types.ScopeParameter:
		return false
	case types.ScopeClassMember:
		return sym.Visibility != types.VisibilityPrivate
	default:
		return true
	}
}

func (j *Java) IsSymbolVisibleFromFile(sym types.Symbol, fromFile types.FileID, fromModulePath string, _ resolve.InheritanceResolver) bool {
	switch sym.Visibility {
	case types.VisibilityPublic:
		return true
	case types.VisibilityCrate, types.VisibilityModule:
		return sym.ModulePath == fromModulePath || sym.FileID == fromFile
	default:
		return sym.FileID == fromFile
	}
}

// ImportMatchesSymbol implements Java's single-type and wildcard (`import
// com.example.*`) forms, stripping a leading "static " marker used to
// encode static imports.
func (j *Java) ImportMatchesSymbol(importPath, symbolModulePath string, _ string) bool {
	importPath = strings.TrimPrefix(importPath, "static ")
	if base, ok := strings.CutSuffix(importPath, ".*"); ok {
		rest, ok := strings.CutPrefix(symbolModulePath, base+".")
		return ok && !strings.Contains(rest, ".")
	}
	return importPath == symbolModulePath
}

func (j *Java) ResolveMethodCall(call types.MethodCall, receiverTypes map[string]string, ctx resolve.ResolutionScope, cache resolve.SymbolCache) (types.SymbolID, resolve.Outcome) {
	return resolveMethodCallGeneric(call, receiverTypes, ctx, cache)
}

func (j *Java) DisambiguateSymbol(name string, candidates []types.Symbol, kind types.RelationshipKind, role DisambiguationRole) (types.SymbolID, bool) {
	return disambiguateByFileProximity(candidates)
}

func (j *Java) IsValidRelationship(fromKind, toKind types.SymbolKind, kind types.RelationshipKind) bool {
	return types.IsValidRelationship(fromKind, toKind, kind)
}

func (j *Java) ResolveExternalCallTarget(u types.UnresolvedRelationship, scope *resolve.Scope) (module, symbol string, ok bool) {
	return resolveExternalCallTargetGeneric(u, scope)
}

func (j *Java) ConfigureSymbol(sym *types.Symbol, modulePath string) {
	sym.ModulePath = modulePath
}
