package behavior

import (
	"strings"

	"github.com/standardbeagle/lci/internal/resolve"
	"github.com/standardbeagle/lci/internal/types"
)

// Python implements LanguageBehavior for Python. There is no enforced
// visibility keyword; convention governs it instead: a single leading
// underscore signals module-private, a double leading underscore signals
// name-mangled (class-private), and everything else is public.
type Python struct {
	state   *State
	inherit *resolve.Graph
}

func NewPython() *Python {
	return &Python{state: NewState(), inherit: resolve.NewGraph()}
}

func (p *Python) LanguageID() string      { return "python" }
func (p *Python) ModuleSeparator() string { return "." }

func (p *Python) FormatModulePath(base, symbolName string) string {
	switch {
	case base == "":
		return symbolName
	case symbolName == "" || symbolName == "<module>":
		return base
	default:
		return base + "." + symbolName
	}
}

func (p *Python) ModulePathFromFile(filePath, projectRoot string, extensions []string) (string, bool) {
	rel := strings.TrimPrefix(filePath, projectRoot)
	rel = strings.TrimPrefix(rel, "/")
	for _, ext := range extensions {
		rel = strings.TrimSuffix(rel, ext)
	}
	rel = strings.TrimSuffix(rel, "/__init__")
	return strings.ReplaceAll(rel, "/", "."), true
}

// ParseVisibility applies Python's naming convention: the name itself
// (carried at the end of the signature) decides, never a keyword.
func (p *Python) ParseVisibility(signature string) types.Visibility {
	name := pythonSignatureName(signature)
	switch {
	case strings.HasPrefix(name, "__") && strings.HasSuffix(name, "__"):
		return types.VisibilityPublic // dunder names such as __init__
	case strings.HasPrefix(name, "__") && !strings.HasSuffix(name, "__"):
		return types.VisibilityPrivate
	case strings.HasPrefix(name, "_"):
		return types.VisibilityModule
	default:
		return types.VisibilityPublic
	}
}

func pythonSignatureName(signature string) string {
	trimmed := strings.TrimSpace(signature)
	trimmed = strings.TrimPrefix(trimmed, "async ")
	trimmed = strings.TrimPrefix(trimmed, "def ")
	trimmed = strings.TrimPrefix(trimmed, "class ")
	for i, r := range trimmed {
		if r == '(' || r == ':' || r == ' ' || r == '=' {
			return trimmed[:i]
		}
	}
	return trimmed
}

func (p *Python) SupportsTraits() bool            { return false }
func (p *Python) SupportsInherentMethods() bool   { return false }
func (p *Python) InheritanceRelationName() string { return "extends" }

func (p *Python) CreateResolutionContext(fileID types.FileID) resolve.ResolutionScope {
	return resolve.NewScope(fileID)
}

func (p *Python) CreateInheritanceResolver() resolve.InheritanceResolver { return p.inherit }

func (p *Python) IsResolvableSymbol(sym types.Symbol) bool {
	switch sym.Scope.Context {
	case types.ScopeLocal, types.ScopeParameter:
		return false
	case types.ScopeClassMember:
		return sym.Visibility != types.VisibilityPrivate
	default:
		return true
	}
}

func (p *Python) IsSymbolVisibleFromFile(sym types.Symbol, fromFile types.FileID, fromModulePath string, _ resolve.InheritanceResolver) bool {
	if sym.Visibility == types.VisibilityPublic {
		return true
	}
	if sym.FileID == fromFile {
		return true
	}
	return sym.Visibility == types.VisibilityModule && sym.ModulePath == fromModulePath
}

// ImportMatchesSymbol handles Python's relative-import dots (`.` = current
// package, `..` = parent) by popping module_parts per leading dot, then
// appending the remainder, matching the same shape as TypeScript's `../`
// handling but with dot-run syntax instead of `../` segments.
func (p *Python) ImportMatchesSymbol(importPath, symbolModulePath string, importingModule string) bool {
	if importPath == symbolModulePath {
		return true
	}
	if !strings.HasPrefix(importPath, ".") || importingModule == "" {
		return false
	}
	dots := 0
	for dots < len(importPath) && importPath[dots] == '.' {
		dots++
	}
	remainder := importPath[dots:]
	parts := strings.Split(importingModule, ".")
	pop := dots
	if pop > len(parts) {
		pop = len(parts)
	}
	parts = parts[:len(parts)-pop]
	if remainder != "" {
		parts = append(parts, strings.Split(remainder, ".")...)
	}
	resolved := strings.Join(parts, ".")
	return resolved == symbolModulePath
}

func (p *Python) ResolveMethodCall(call types.MethodCall, receiverTypes map[string]string, ctx resolve.ResolutionScope, cache resolve.SymbolCache) (types.SymbolID, resolve.Outcome) {
	return resolveMethodCallGeneric(call, receiverTypes, ctx, cache)
}

func (p *Python) DisambiguateSymbol(name string, candidates []types.Symbol, kind types.RelationshipKind, role DisambiguationRole) (types.SymbolID, bool) {
	return disambiguateByFileProximity(candidates)
}

func (p *Python) IsValidRelationship(fromKind, toKind types.SymbolKind, kind types.RelationshipKind) bool {
	return types.IsValidRelationship(fromKind, toKind, kind)
}

func (p *Python) ResolveExternalCallTarget(u types.UnresolvedRelationship, scope *resolve.Scope) (module, symbol string, ok bool) {
	return resolveExternalCallTargetGeneric(u, scope)
}

func (p *Python) ConfigureSymbol(sym *types.Symbol, modulePath string) {
	sym.ModulePath = modulePath
}
