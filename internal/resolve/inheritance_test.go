package resolve

import (
	"testing"

	"github.com/standardbeagle/lci/internal/types"
)

func TestInheritanceChainAndSubtype(t *testing.T) {
	g := NewGraph()
	g.AddInheritance(2, 1, types.RelExtends) // child 2 extends parent 1
	g.AddInheritance(3, 2, types.RelExtends) // child 3 extends parent 2

	if !g.IsSubtype(3, 1) {
		t.Fatal("expected 3 to be a transitive subtype of 1")
	}
	if g.IsSubtype(1, 3) {
		t.Fatal("1 should not be a subtype of its own descendant")
	}
	chain := g.InheritanceChain(3)
	if len(chain) != 2 {
		t.Fatalf("expected chain of length 2, got %v", chain)
	}
}

func TestInheritanceRejectsCycle(t *testing.T) {
	g := NewGraph()
	g.AddInheritance(2, 1, types.RelExtends)
	g.AddInheritance(1, 2, types.RelExtends) // would close a cycle; must be rejected

	if g.IsSubtype(1, 2) && g.IsSubtype(2, 1) {
		t.Fatal("cyclic inheritance must not make both directions true")
	}
}

func TestResolveMethodFallsBackToAncestor(t *testing.T) {
	g := NewGraph()
	g.AddInheritance(2, 1, types.RelExtends)
	g.RegisterMethod(1, "greet", 100)

	method, ok := g.ResolveMethod(2, "greet")
	if !ok || method != 100 {
		t.Fatalf("expected inherited method 100, got %d ok=%v", method, ok)
	}
}

func TestAllMethodsOwnShadowsInherited(t *testing.T) {
	g := NewGraph()
	g.AddInheritance(2, 1, types.RelExtends)
	g.RegisterMethod(1, "greet", 100)
	g.RegisterMethod(2, "greet", 200)

	methods := g.AllMethods(2)
	if len(methods) != 1 || methods[0] != 200 {
		t.Fatalf("expected only own greet(200), got %v", methods)
	}
}
