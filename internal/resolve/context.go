package resolve

import "github.com/standardbeagle/lci/internal/types"

// PersistedLookup is the minimal read surface the full-path (post-index)
// context constructor needs from the store. It is defined here rather than
// imported from internal/store so this package never depends on a concrete
// storage engine; internal/store's types satisfy it structurally.
type PersistedLookup interface {
	ImportsForFile(file types.FileID) []types.Import
	SymbolsInFile(file types.FileID) []types.Symbol
	SymbolsInModule(modulePath string, excludeFile types.FileID) []types.Symbol
	VisibleCrossFileSymbols(fromFile types.FileID, cap int) []types.Symbol
	SymbolByModuleAndName(modulePath, name string) (types.Symbol, bool)
	Get(id types.SymbolID) (types.Symbol, bool)
}

const defaultCrossFileCap = 500

// BuildFullContext implements §4.4's "Full path (post-index)" construction:
// it merges persisted imports with any in-memory (current-session) imports,
// dedups by (path, alias), classifies each import's origin, adds the file's
// own resolvable symbols, same-module/package symbols excluding the file
// itself, visible cross-file symbols up to a cap, and finally indexes
// symbols by fully-qualified module path for qualified lookup.
func BuildFullContext(
	file types.FileID,
	store PersistedLookup,
	sessionImports []types.Import,
	classify Classifier,
	isResolvable func(types.Symbol) bool,
) *Scope {
	scope := NewScope(file)

	merged := dedupImports(append(append([]types.Import{}, store.ImportsForFile(file)...), sessionImports...))
	scope.PopulateImports(merged)

	bindings := BuildBindings(merged, classify, func(modulePath, name string) (types.SymbolID, bool) {
		if sym, ok := store.SymbolByModuleAndName(modulePath, name); ok {
			return sym.ID, true
		}
		return 0, false
	})
	for _, b := range bindings {
		scope.RegisterImportBinding(b)
	}

	for _, sym := range store.SymbolsInFile(file) {
		if isResolvable == nil || isResolvable(sym) {
			scope.AddSymbol(sym.Name, sym.ID, LevelModuleFile)
			if sym.ModulePath != "" {
				scope.AddSymbol(sym.ModulePath, sym.ID, LevelModuleFile)
			}
		}
	}

	var ownModule string
	if own := store.SymbolsInFile(file); len(own) > 0 {
		ownModule = own[0].ModulePath
	}
	if ownModule != "" {
		for _, sym := range store.SymbolsInModule(ownModule, file) {
			if isResolvable == nil || isResolvable(sym) {
				scope.AddSymbol(sym.Name, sym.ID, LevelModulePackage)
			}
		}
	}

	for _, sym := range store.VisibleCrossFileSymbols(file, defaultCrossFileCap) {
		scope.AddSymbol(sym.Name, sym.ID, LevelGlobal)
		if sym.ModulePath != "" {
			scope.AddSymbol(sym.ModulePath, sym.ID, LevelGlobal)
		}
	}

	return scope
}

func dedupImports(imports []types.Import) []types.Import {
	seen := make(map[[2]string]bool, len(imports))
	out := make([]types.Import, 0, len(imports))
	for _, imp := range imports {
		key := [2]string{imp.Path, imp.Alias}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, imp)
	}
	return out
}

// BuildPipelineContext implements §4.4's "Pipeline path (during indexing)"
// construction: a thin Scope seeded directly from the in-memory SymbolCache
// for the current wave, with no store access at all.
func BuildPipelineContext(file types.FileID, cache SymbolCache, imports []types.Import, isResolvable func(types.Symbol) bool) *Scope {
	scope := NewScope(file)
	scope.PopulateImports(imports)
	for _, sym := range cache.SymbolsInFile(file) {
		if isResolvable == nil || isResolvable(sym) {
			scope.AddSymbol(sym.Name, sym.ID, LevelModuleFile)
		}
	}
	return scope
}
