package semantic

import (
	"testing"

	"github.com/standardbeagle/lci/internal/store/vector"
)

func TestCosineSimilarityIdenticalVectorsScoreOne(t *testing.T) {
	v := []float32{1, 2, 3}
	score, err := CosineSimilarity(v, v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score.Get() < 0.999 {
		t.Fatalf("expected near-1.0 similarity for identical vectors, got %v", score.Get())
	}
}

func TestCosineSimilarityDimensionMismatch(t *testing.T) {
	if _, err := CosineSimilarity([]float32{1, 2}, []float32{1, 2, 3}); err == nil {
		t.Fatal("expected an error for mismatched dimensions")
	}
}

func TestRankMatchesOrdersDescendingByScore(t *testing.T) {
	low, err := vector.NewScore(0.2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	high, err := vector.NewScore(0.9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	matches := []Match{{SymbolID: 1, Score: low}, {SymbolID: 2, Score: high}}

	ranked := RankMatches(matches, 0)
	if ranked[0].SymbolID != 2 {
		t.Fatalf("expected highest score first, got %+v", ranked)
	}
}

func TestRankMatchesRespectsLimit(t *testing.T) {
	a, _ := vector.NewScore(0.1)
	b, _ := vector.NewScore(0.5)
	c, _ := vector.NewScore(0.9)
	matches := []Match{{SymbolID: 1, Score: a}, {SymbolID: 2, Score: b}, {SymbolID: 3, Score: c}}

	ranked := RankMatches(matches, 2)
	if len(ranked) != 2 {
		t.Fatalf("expected limit to truncate to 2 results, got %d", len(ranked))
	}
}
