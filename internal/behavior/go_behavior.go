package behavior

import (
	"path"
	"strings"

	"github.com/standardbeagle/lci/internal/resolve"
	"github.com/standardbeagle/lci/internal/types"
)

// Go implements LanguageBehavior for Go. Visibility follows Go's
// capitalization rule (S4): an identifier whose first letter is uppercase
// is Public; everything else is Private. Module paths are directories, not
// file names — all symbols in one file share their package's module path
// (grounded on the original implementation's go/behavior.rs).
type Go struct {
	state *State
	inherit *resolve.Graph
}

func NewGo() *Go {
	return &Go{state: NewState(), inherit: resolve.NewGraph()}
}

func (g *Go) LanguageID() string    { return "go" }
func (g *Go) ModuleSeparator() string { return "/" }

func (g *Go) FormatModulePath(base, _ string) string {
	// Go packages are directories; the symbol name never joins the module
	// path the way it does in a class-scoped language.
	return base
}

func (g *Go) ModulePathFromFile(filePath, projectRoot string, extensions []string) (string, bool) {
	rel := strings.TrimPrefix(filePath, projectRoot)
	rel = strings.TrimPrefix(rel, "/")
	for _, ext := range extensions {
		rel = strings.TrimSuffix(rel, ext)
	}
	dir := path.Dir(rel)
	if dir == "." || dir == "" {
		return ".", true
	}
	return dir, true
}

// ParseVisibility applies Go's capitalization rule to the first identifier
// it can find in a `func`/`type`/`var`/`const` signature (S4).
func (g *Go) ParseVisibility(signature string) types.Visibility {
	name := extractGoIdentifier(signature)
	if name == "" {
		return types.VisibilityPrivate
	}
	r := rune(name[0])
	if r >= 'A' && r <= 'Z' {
		return types.VisibilityPublic
	}
	return types.VisibilityPrivate
}

func extractGoIdentifier(signature string) string {
	switch {
	case strings.HasPrefix(signature, "func "):
		rest := strings.TrimSpace(signature[len("func "):])
		if strings.HasPrefix(rest, "(") {
			if end := strings.Index(rest, ") "); end >= 0 {
				rest = strings.TrimSpace(rest[end+2:])
			}
		}
		return firstWord(rest, "(")
	case strings.HasPrefix(signature, "type "):
		return firstWord(signature[len("type "):], " ")
	case strings.HasPrefix(signature, "var "):
		return firstWord(signature[len("var "):], " ")
	case strings.HasPrefix(signature, "const "):
		return firstWord(signature[len("const "):], " ")
	default:
		for _, word := range strings.Fields(signature) {
			if len(word) > 0 && isAlpha(rune(word[0])) {
				return word
			}
		}
		return ""
	}
}

func firstWord(s, sep string) string {
	s = strings.TrimSpace(s)
	if i := strings.Index(s, sep); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

func (g *Go) SupportsTraits() bool           { return false } // interfaces, not traits
func (g *Go) SupportsInherentMethods() bool  { return true }
func (g *Go) InheritanceRelationName() string { return "implements" }

func (g *Go) CreateResolutionContext(fileID types.FileID) resolve.ResolutionScope {
	return resolve.NewScope(fileID)
}

func (g *Go) CreateInheritanceResolver() resolve.InheritanceResolver { return g.inherit }

// IsResolvableSymbol allows Go's package-level forward references: function,
// struct, interface, constant, and type-alias symbols resolve regardless of
// declaration order; methods always resolve within their file; other
// symbols fall back to their ScopeContext (S4/§4.2).
func (g *Go) IsResolvableSymbol(sym types.Symbol) bool {
	switch sym.Kind {
	case types.SymbolFunction, types.SymbolStruct, types.SymbolInterface, types.SymbolConstant, types.SymbolTypeAlias, types.SymbolMethod:
		return true
	}
	switch sym.Scope.Context {
	case types.ScopeModule, types.ScopeGlobal, types.ScopePackage:
		return true
	case types.ScopeLocal, types.ScopeParameter:
		return false
	case types.ScopeClassMember:
		return sym.Visibility == types.VisibilityPublic
	default:
		return false
	}
}

// IsSymbolVisibleFromFile implements Go's package-bound visibility: Public
// symbols are visible everywhere; Private symbols are visible only from
// files in the same package (module path).
func (g *Go) IsSymbolVisibleFromFile(sym types.Symbol, fromFile types.FileID, fromModulePath string, _ resolve.InheritanceResolver) bool {
	if sym.Visibility == types.VisibilityPublic {
		return true
	}
	if sym.FileID == fromFile {
		return true
	}
	return sym.ModulePath != "" && sym.ModulePath == fromModulePath
}

// ImportMatchesSymbol compares a Go import path against a symbol's package
// (directory) module path, verbatim — Go has no relative imports.
func (g *Go) ImportMatchesSymbol(importPath, symbolModulePath string, _ string) bool {
	return strings.TrimSuffix(importPath, "/") == strings.TrimSuffix(symbolModulePath, "/")
}

func (g *Go) ResolveMethodCall(call types.MethodCall, receiverTypes map[string]string, ctx resolve.ResolutionScope, cache resolve.SymbolCache) (types.SymbolID, resolve.Outcome) {
	return resolveMethodCallGeneric(call, receiverTypes, ctx, cache)
}

func (g *Go) DisambiguateSymbol(name string, candidates []types.Symbol, kind types.RelationshipKind, role DisambiguationRole) (types.SymbolID, bool) {
	return disambiguateByFileProximity(candidates)
}

func (g *Go) IsValidRelationship(fromKind, toKind types.SymbolKind, kind types.RelationshipKind) bool {
	return types.IsValidRelationship(fromKind, toKind, kind)
}

func (g *Go) ResolveExternalCallTarget(u types.UnresolvedRelationship, scope *resolve.Scope) (module, symbol string, ok bool) {
	return resolveExternalCallTargetGeneric(u, scope)
}

func (g *Go) ConfigureSymbol(sym *types.Symbol, modulePath string) {
	sym.ModulePath = modulePath
}
