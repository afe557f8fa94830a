package resolve

import (
	"path"
	"strings"

	"github.com/standardbeagle/lci/internal/types"
)

// ExposedNames enumerates every local name an import introduces: the alias
// if present, the last path segment, and the full path itself (§4.4 "
// exposed_name enumerates all local names introduced"). Duplicates are
// removed while preserving the alias-first priority order a lookup should
// prefer.
func ExposedNames(imp types.Import) []string {
	seen := make(map[string]struct{}, 3)
	var out []string
	add := func(name string) {
		if name == "" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	add(imp.Alias)
	add(lastSegment(imp.Path))
	add(imp.Path)
	return out
}

func lastSegment(importPath string) string {
	cleaned := strings.TrimSuffix(importPath, "/")
	base := path.Base(cleaned)
	// Strip common separators a language might use instead of "/": "::" and ".".
	if i := strings.LastIndex(base, "::"); i >= 0 {
		base = base[i+2:]
	}
	if i := strings.LastIndex(base, "."); i >= 0 && !strings.HasPrefix(base, ".") {
		base = base[i+1:]
	}
	return base
}

// Classifier decides whether an import path refers to a symbol already
// known to this build (Internal), a symbol outside it (External), or
// something that cannot be determined here (Unknown). The caller of
// BuildBindings supplies it; cmd/codewalk passes one through pipeline.Run
// that treats paths starting with "." as Internal and everything else as
// Unknown, deferring to the external-stub machinery at INDEX time.
// BuildBindings has no built-in default and calls classify for every
// import, so it must be non-nil.
type Classifier func(importPath string) (origin types.ImportOrigin, resolvedSymbolModulePath string)

// BuildBindings converts a file's raw imports into ImportBindings, using
// classify to assign an origin to each and lookupModule to find the symbol
// id for internal bindings whose target module is already indexed.
func BuildBindings(imports []types.Import, classify Classifier, lookupModule func(modulePath, name string) (types.SymbolID, bool)) []types.ImportBinding {
	var out []types.ImportBinding
	for _, imp := range imports {
		origin, targetModule := classify(imp.Path)
		names := ExposedNames(imp)
		if len(names) == 0 {
			out = append(out, types.ImportBinding{Import: imp, Origin: origin})
			continue
		}
		for _, name := range names {
			b := types.ImportBinding{Import: imp, ExposedName: name, Origin: origin}
			if origin == types.OriginInternal && lookupModule != nil {
				if id, ok := lookupModule(targetModule, lastSegment(imp.Path)); ok {
					b.ResolvedSymbol = id
				}
			}
			out = append(out, b)
		}
	}
	return out
}
