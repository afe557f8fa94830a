package resolve

import (
	"testing"

	"github.com/standardbeagle/lci/internal/types"
)

func TestScopeLocalShadowsModule(t *testing.T) {
	s := NewScope(1)
	s.AddSymbol("helper", 10, LevelModuleFile)
	s.EnterScope()
	s.AddSymbol("helper", 20, LevelLocal)

	id, outcome := s.Resolve("helper")
	if outcome != Found || id != 20 {
		t.Fatalf("expected local helper(20) to shadow module helper(10), got id=%d outcome=%v", id, outcome)
	}

	s.ExitScope()
	id, outcome = s.Resolve("helper")
	if outcome != Found || id != 10 {
		t.Fatalf("expected module helper(10) after exiting local scope, got id=%d outcome=%v", id, outcome)
	}
}

func TestScopeAmbiguousWhenTwoCandidatesSameLevel(t *testing.T) {
	s := NewScope(1)
	s.AddSymbol("helper", 10, LevelGlobal)
	s.AddSymbol("helper", 11, LevelGlobal)

	_, outcome := s.Resolve("helper")
	if outcome != Ambiguous {
		t.Fatalf("expected Ambiguous, got %v", outcome)
	}
	if len(s.Candidates("helper")) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(s.Candidates("helper")))
	}
}

func TestScopeNotFound(t *testing.T) {
	s := NewScope(1)
	if _, outcome := s.Resolve("nope"); outcome != NotFound {
		t.Fatalf("expected NotFound, got %v", outcome)
	}
}

func TestImportMonotoneAddingBindingNeverBreaksFound(t *testing.T) {
	// §8 invariant 8: adding a new import binding never changes an
	// already-Found resolution to NotFound.
	s := NewScope(1)
	s.AddSymbol("helper", 10, LevelModuleFile)
	_, before := s.Resolve("helper")

	s.RegisterImportBinding(types.ImportBinding{
		Import:         types.Import{FileID: 1, Path: "pkg/other"},
		ExposedName:    "other",
		Origin:         types.OriginInternal,
		ResolvedSymbol: 99,
	})

	_, after := s.Resolve("helper")
	if before != Found || after != Found {
		t.Fatalf("resolution regressed from %v to %v after adding unrelated binding", before, after)
	}
}

func TestExposedNamesDedup(t *testing.T) {
	names := ExposedNames(types.Import{Path: "app/ui/button", Alias: "button"})
	if len(names) != 2 {
		t.Fatalf("expected alias+path (last segment matches alias), got %v", names)
	}
}
