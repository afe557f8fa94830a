package resolve

import "github.com/standardbeagle/lci/internal/types"

// InheritanceResolver tracks the type hierarchy discovered while indexing:
// class/interface/trait extension and implementation edges, keyed by
// symbol id so it never holds an owning reference into another symbol
// (§9 "Cyclic graphs"). It must detect cycles and be monotonic within a
// session (§4.4).
type InheritanceResolver interface {
	AddInheritance(child, parent types.SymbolID, kind types.RelationshipKind)
	IsSubtype(a, b types.SymbolID) bool
	InheritanceChain(t types.SymbolID) []types.SymbolID
	ResolveMethod(t types.SymbolID, method string) (types.SymbolID, bool)
	AllMethods(t types.SymbolID) []types.SymbolID
	RegisterMethod(owner types.SymbolID, name string, method types.SymbolID)
}

// Graph is the generic, language-agnostic InheritanceResolver
// implementation. Every LanguageBehavior.CreateInheritanceResolver may
// return one directly, or wrap it to add language-specific method lookup
// (e.g. Go's implicit interface satisfaction).
type Graph struct {
	parents   map[types.SymbolID][]types.SymbolID
	methods   map[types.SymbolID]map[string]types.SymbolID
	chainMemo map[types.SymbolID][]types.SymbolID
}

// NewGraph returns an empty inheritance graph.
func NewGraph() *Graph {
	return &Graph{
		parents: make(map[types.SymbolID][]types.SymbolID),
		methods: make(map[types.SymbolID]map[string]types.SymbolID),
	}
}

// AddInheritance records a child->parent edge. Adding an edge that would
// close a cycle is silently rejected: the graph stays the largest
// cycle-free subset added so far, which keeps IsSubtype and
// InheritanceChain from looping (§8 boundary behavior: "cyclic inheritance
// (must not loop)").
func (g *Graph) AddInheritance(child, parent types.SymbolID, _ types.RelationshipKind) {
	if child == parent {
		return
	}
	if g.isSubtype(parent, child, make(map[types.SymbolID]bool)) {
		return // would create a cycle
	}
	g.parents[child] = append(g.parents[child], parent)
	g.chainMemo = nil
}

func (g *Graph) IsSubtype(a, b types.SymbolID) bool {
	if a == b {
		return true
	}
	return g.isSubtype(a, b, make(map[types.SymbolID]bool))
}

func (g *Graph) isSubtype(a, b types.SymbolID, visited map[types.SymbolID]bool) bool {
	if a == b {
		return true
	}
	if visited[a] {
		return false
	}
	visited[a] = true
	for _, p := range g.parents[a] {
		if g.isSubtype(p, b, visited) {
			return true
		}
	}
	return false
}

// InheritanceChain returns the transitive parent set of t, visited-set
// guarded against cycles, iteratively rather than recursively (§9).
func (g *Graph) InheritanceChain(t types.SymbolID) []types.SymbolID {
	visited := map[types.SymbolID]bool{t: true}
	var chain []types.SymbolID
	queue := append([]types.SymbolID{}, g.parents[t]...)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if visited[cur] {
			continue
		}
		visited[cur] = true
		chain = append(chain, cur)
		queue = append(queue, g.parents[cur]...)
	}
	return chain
}

// RegisterMethod records a method owned directly by t, for ResolveMethod
// and AllMethods.
func (g *Graph) RegisterMethod(owner types.SymbolID, name string, method types.SymbolID) {
	if g.methods[owner] == nil {
		g.methods[owner] = make(map[string]types.SymbolID)
	}
	g.methods[owner][name] = method
}

// ResolveMethod finds `method` on t, falling back to the inheritance chain
// nearest-ancestor-first (method resolution order).
func (g *Graph) ResolveMethod(t types.SymbolID, method string) (types.SymbolID, bool) {
	if m, ok := g.methods[t][method]; ok {
		return m, true
	}
	for _, anc := range g.InheritanceChain(t) {
		if m, ok := g.methods[anc][method]; ok {
			return m, true
		}
	}
	return 0, false
}

// AllMethods returns every method visible on t, own methods first,
// deduplicated by name (own methods shadow inherited ones of the same
// name).
func (g *Graph) AllMethods(t types.SymbolID) []types.SymbolID {
	seen := make(map[string]bool)
	var out []types.SymbolID
	for name, id := range g.methods[t] {
		seen[name] = true
		out = append(out, id)
	}
	for _, anc := range g.InheritanceChain(t) {
		for name, id := range g.methods[anc] {
			if seen[name] {
				continue
			}
			seen[name] = true
			out = append(out, id)
		}
	}
	return out
}
