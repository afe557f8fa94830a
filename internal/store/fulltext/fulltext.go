// Package fulltext implements the search-symbols full-text index (§4.6): a
// stemmed token posting list plus a fuzzy fallback over symbol names,
// adapted from the teacher's semantic.Stemmer/FuzzyMatcher pair (there used
// for doc-comment matching, here repurposed as the index's tokenizer and
// typo-tolerant fallback) and its postings-index shape.
package fulltext

import (
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"
	"github.com/surgebase/porter2"

	"github.com/standardbeagle/lci/internal/types"
)

// Document is one indexable unit: a symbol's name, doc comment, and
// signature, tagged with the SymbolID it came from.
type Document struct {
	SymbolID types.SymbolID
	Name     string
	Doc      string
	Signature string
}

// Index is a segmented token->postings map with a stemmed token variant for
// recall and a raw-name table for fuzzy fallback. "Segmented" means the
// index is sharded by a caller-chosen segment key (typically language id or
// a file-count bucket) so INDEX can rebuild one segment at a time without
// locking the whole store (§4.6 "segmented, porter2-stemmed").
type Index struct {
	segments map[string]*segment
	minStem  int
}

type segment struct {
	postings map[string][]types.SymbolID // stemmed token -> symbol ids
	names    map[types.SymbolID]string   // original symbol name, for fuzzy fallback
}

func newSegment() *segment {
	return &segment{
		postings: make(map[string][]types.SymbolID),
		names:    make(map[types.SymbolID]string),
	}
}

// New returns an empty Index. minStem is the shortest token length that
// gets stemmed (shorter tokens are indexed verbatim), matching the
// teacher's Stemmer minLength default of 3.
func New(minStem int) *Index {
	if minStem <= 0 {
		minStem = 3
	}
	return &Index{segments: make(map[string]*segment), minStem: minStem}
}

// Add indexes doc under segmentKey, tokenizing its name, doc comment, and
// signature.
func (ix *Index) Add(segmentKey string, doc Document) {
	seg, ok := ix.segments[segmentKey]
	if !ok {
		seg = newSegment()
		ix.segments[segmentKey] = seg
	}
	seg.names[doc.SymbolID] = doc.Name

	for _, tok := range tokenize(doc.Name + " " + doc.Doc + " " + doc.Signature) {
		stem := ix.stem(tok)
		seg.postings[stem] = appendUnique(seg.postings[stem], doc.SymbolID)
	}
}

// RemoveSegment drops every document in segmentKey, the operation a file
// re-index or delete performs before re-adding fresh documents (§4.7
// ReindexCode/RemoveCode).
func (ix *Index) RemoveSegment(segmentKey string) {
	delete(ix.segments, segmentKey)
}

func (ix *Index) stem(tok string) string {
	if len(tok) < ix.minStem {
		return tok
	}
	return porter2.Stem(tok)
}

// Hit is one search result: the matched symbol and a 0..1 relevance score.
type Hit struct {
	SymbolID types.SymbolID
	Score    float64
}

// Search tokenizes query, looks up exact stemmed matches across every
// segment, and falls back to Jaro-Winkler fuzzy matching against symbol
// names for tokens with no exact postings hit — "fuzzy + exact search"
// per §4.6. Results are deduped by SymbolID, keeping the highest score,
// and returned ranked descending, capped at limit.
func (ix *Index) Search(query string, fuzzyThreshold float64, limit int) []Hit {
	scores := make(map[types.SymbolID]float64)

	for _, tok := range tokenize(query) {
		stem := ix.stem(tok)
		exactHit := false
		for _, seg := range ix.segments {
			if ids, ok := seg.postings[stem]; ok {
				exactHit = true
				for _, id := range ids {
					if 1.0 > scores[id] {
						scores[id] = 1.0
					}
				}
			}
		}
		if exactHit {
			continue
		}
		for _, seg := range ix.segments {
			for id, name := range seg.names {
				sim := fuzzySimilarity(tok, strings.ToLower(name))
				if sim >= fuzzyThreshold && sim > scores[id] {
					scores[id] = sim
				}
			}
		}
	}

	hits := make([]Hit, 0, len(scores))
	for id, score := range scores {
		hits = append(hits, Hit{SymbolID: id, Score: score})
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		return hits[i].SymbolID < hits[j].SymbolID
	})
	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	return hits
}

func fuzzySimilarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}
	score, err := edlib.StringsSimilarity(a, b, edlib.JaroWinkler)
	if err != nil {
		return 0.0
	}
	return float64(score)
}

func tokenize(s string) []string {
	var out []string
	start := -1
	for i, r := range s {
		if isTokenRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			out = append(out, strings.ToLower(s[start:i]))
			start = -1
		}
	}
	if start >= 0 {
		out = append(out, strings.ToLower(s[start:]))
	}
	return out
}

func isTokenRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_'
}

func appendUnique(ids []types.SymbolID, id types.SymbolID) []types.SymbolID {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}
