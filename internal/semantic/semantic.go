// Package semantic defines the embedding-backed side of search_symbols'
// sibling operation, semantic_search_docs (§6): an EmbeddingGenerator
// abstraction, the metadata attached to a symbol's embedding, and scoring
// helpers built on internal/store/vector's Score type. Model download and
// inference are out of scope (spec.md §1 Non-goals); this package defines
// the seam a real embedding backend plugs into.
package semantic

import (
	"context"
	"math"
	"sort"

	"github.com/standardbeagle/lci/internal/store/vector"
	"github.com/standardbeagle/lci/internal/types"
)

// EmbeddingGenerator turns text into a fixed-width embedding. Concrete
// implementations (a local model, a remote API) live outside this module;
// internal/query depends only on this interface.
type EmbeddingGenerator interface {
	Dimension() vector.Dimension
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// Metadata is what COLLECT/INDEX attach to a symbol whose doc comment was
// embedded: the vector id it was stored under and the text actually fed to
// the generator, kept for result display.
type Metadata struct {
	SymbolID   types.SymbolID
	VectorID   vector.VectorID
	SourceText string
}

// Match is one semantic_search_docs/semantic_search_with_context hit.
type Match struct {
	SymbolID types.SymbolID
	Score    vector.Score
}

// CosineSimilarity computes the cosine similarity between two equal-length
// embeddings, returning a vector.Score clamped into [0, 1] (embeddings from
// a well-trained model rarely go negative for this indexer's use case, but
// the clamp keeps Score's invariant regardless).
func CosineSimilarity(a, b []float32) (vector.Score, error) {
	if len(a) != len(b) {
		return 0, &vector.Error{Kind: "dimension_mismatch", Expected: len(a), Actual: len(b)}
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return vector.Zero(), nil
	}
	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if sim < 0 {
		sim = 0
	}
	if sim > 1 {
		sim = 1
	}
	return vector.NewScore(float32(sim))
}

// RankMatches sorts candidates by Score descending, stable on ties by
// SymbolID, and truncates to limit.
func RankMatches(candidates []Match, limit int) []Match {
	out := append([]Match(nil), candidates...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].SymbolID < out[j].SymbolID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
