package behavior

import (
	"strings"

	"github.com/standardbeagle/lci/internal/resolve"
	"github.com/standardbeagle/lci/internal/types"
)

// PHP implements LanguageBehavior for PHP. Namespaces use a backslash
// separator; methods are always defined within classes/traits, so
// SupportsInherentMethods is false while SupportsTraits is true.
type PHP struct {
	state   *State
	inherit *resolve.Graph
}

func NewPHP() *PHP {
	return &PHP{state: NewState(), inherit: resolve.NewGraph()}
}

func (p *PHP) LanguageID() string      { return "php" }
func (p *PHP) ModuleSeparator() string { return `\` }

// FormatModulePath returns the base unchanged: PHP parsers assign more
// specific per-method paths themselves rather than relying on name-joining.
func (p *PHP) FormatModulePath(base, _ string) string { return base }

func (p *PHP) ModulePathFromFile(filePath, projectRoot string, extensions []string) (string, bool) {
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
	if dir == "" {
		return "", true
	}
	return `\` + strings.ReplaceAll(dir, "/", `\`), true
}

func (p *PHP) ParseVisibility(signature string) types.Visibility {
	switch {
	case strings.Contains(signature, "private "):
		return types.VisibilityPrivate
	case strings.Contains(signature, "protected "):
		return types.VisibilityModule
	default:
		// public keyword or no modifier: PHP defaults open.
		return types.VisibilityPublic
	}
}

func (p *PHP) SupportsTraits() bool            { return true }
func (p *PHP) SupportsInherentMethods() bool   { return false }
func (p *PHP) InheritanceRelationName() string { return "implements" }

func (p *PHP) CreateResolutionContext(fileID types.FileID) resolve.ResolutionScope {
	return resolve.NewScope(fileID)
}

func (p *PHP) CreateInheritanceResolver() resolve.InheritanceResolver { return p.inherit }

func (p *PHP) IsResolvableSymbol(sym types.Symbol) bool {
	switch sym.Scope.Context {
	case types.ScopeLocal, types.ScopeParameter:
		return false
	case types.ScopeClassMember:
		return sym.Visibility != types.VisibilityPrivate
	default:
		return true
	}
}

func (p *PHP) IsSymbolVisibleFromFile(sym types.Symbol, fromFile types.FileID, fromModulePath string, _ resolve.InheritanceResolver) bool {
	if sym.Visibility == types.VisibilityPublic {
		return true
	}
	if sym.FileID == fromFile {
		return true
	}
	return sym.Visibility == types.VisibilityModule && sym.ModulePath == fromModulePath
}

// ImportMatchesSymbol checks exact match first, then compares with leading
// backslashes stripped from both sides (Symfony\Component vs
// \Symfony\Component namespace-import conventions).
func (p *PHP) ImportMatchesSymbol(importPath, symbolModulePath string, _ string) bool {
	if importPath == symbolModulePath {
		return true
	}
	return strings.TrimPrefix(importPath, `\`) == strings.TrimPrefix(symbolModulePath, `\`)
}

func (p *PHP) ResolveMethodCall(call types.MethodCall, receiverTypes map[string]string, ctx resolve.ResolutionScope, cache resolve.SymbolCache) (types.SymbolID, resolve.Outcome) {
	return resolveMethodCallGeneric(call, receiverTypes, ctx, cache)
}

func (p *PHP) DisambiguateSymbol(name string, candidates []types.Symbol, kind types.RelationshipKind, role DisambiguationRole) (types.SymbolID, bool) {
	return disambiguateByFileProximity(candidates)
}

func (p *PHP) IsValidRelationship(fromKind, toKind types.SymbolKind, kind types.RelationshipKind) bool {
	return types.IsValidRelationship(fromKind, toKind, kind)
}

func (p *PHP) ResolveExternalCallTarget(u types.UnresolvedRelationship, scope *resolve.Scope) (module, symbol string, ok bool) {
	return resolveExternalCallTargetGeneric(u, scope)
}

func (p *PHP) ConfigureSymbol(sym *types.Symbol, modulePath string) {
	sym.ModulePath = modulePath
}
