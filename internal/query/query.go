// Package query implements the eight read-only tool operations §6 exposes
// over a built index: find_symbol, get_calls, find_callers, analyze_impact,
// search_symbols, semantic_search_docs, semantic_search_with_context, and
// get_index_info. It is the layer internal/toolserver adapts to MCP/HTTP;
// here the operations are plain Go functions over *store.Store so they stay
// testable without a transport.
package query

import (
	"context"
	"fmt"
	"sort"

	"github.com/standardbeagle/lci/internal/errors"
	"github.com/standardbeagle/lci/internal/semantic"
	"github.com/standardbeagle/lci/internal/store"
	"github.com/standardbeagle/lci/internal/store/persist"
	"github.com/standardbeagle/lci/internal/store/vector"
	"github.com/standardbeagle/lci/internal/types"
)

var errNotConfigured = fmt.Errorf("semantic search is not configured: no embedding model is set")

func notFoundErr(target string) error {
	return fmt.Errorf("no symbol matched %q", target)
}

// SymbolContext is a symbol plus the surrounding facts a caller needs to
// act on it without a second round trip: where it lives, and how
// connected it is in the relationship graph.
type SymbolContext struct {
	Symbol      types.Symbol
	FilePath    string
	CallerCount int
	CalleeCount int
}

// SearchResult is one search_symbols hit: a matched symbol, the file it
// lives in, and the full-text index's relevance score.
type SearchResult struct {
	Symbol   types.Symbol
	FilePath string
	Score    float64
}

// SemanticHit is one semantic_search_docs hit.
type SemanticHit struct {
	Symbol types.Symbol
	Score  vector.Score
}

// SemanticContextHit is one semantic_search_with_context hit.
type SemanticContextHit struct {
	Symbol  types.Symbol
	Score   vector.Score
	Context SymbolContext
}

// ByKindCount is one entry of get_index_info's by_kind breakdown.
type ByKindCount struct {
	Kind  types.SymbolKind
	Count int
}

// SemanticInfo mirrors get_index_info's semantic{} sub-object.
type SemanticInfo struct {
	Enabled    bool
	Model      string
	Embeddings int
	Dimension  int
	Created    string
	Updated    string
}

// IndexInfo is get_index_info's full return value.
type IndexInfo struct {
	SymbolCount       int
	FileCount         int
	RelationshipCount int
	ByKind            []ByKindCount
	Semantic          SemanticInfo
}

// Service answers every tool operation against one built index. Embedding
// lookups are optional: a Service built with a nil Embedder still answers
// every operation except the two semantic_search_* ones, which return a
// KindConfig error explaining embeddings are not configured.
type Service struct {
	store     *store.Store
	embedder  semantic.EmbeddingGenerator
	vectors   *vector.Storage
	modelName string
}

// New builds a Service over st. embedder and vectors may both be nil if
// semantic search is not configured (§4 Domain stack: embedding inference
// is an external collaborator).
func New(st *store.Store, embedder semantic.EmbeddingGenerator, vectors *vector.Storage, modelName string) *Service {
	return &Service{store: st, embedder: embedder, vectors: vectors, modelName: modelName}
}

func (s *Service) buildContext(sym types.Symbol) SymbolContext {
	path, _ := s.store.PathForFile(sym.FileID)
	callers := len(s.store.Incoming(sym.ID, types.RelCalls))
	callees := len(s.store.Outgoing(sym.ID, types.RelCalls))
	return SymbolContext{Symbol: sym, FilePath: path, CallerCount: callers, CalleeCount: callees}
}

// FindSymbol resolves name to every matching symbol (optionally filtered
// to lang), each wrapped with its file and connectivity context.
func (s *Service) FindSymbol(name, lang string) ([]SymbolContext, error) {
	matches := s.store.ByName(name)
	if lang != "" {
		matches = filterLang(matches, lang)
	}
	if len(matches) == 0 {
		return nil, errors.New(errors.KindResolution, "find_symbol", notFoundErr(name))
	}
	out := make([]SymbolContext, 0, len(matches))
	for _, sym := range matches {
		out = append(out, s.buildContext(sym))
	}
	return out, nil
}

// CallEdge is one get_calls/find_callers result: the symbol on the other
// end of the edge plus that edge's metadata.
type CallEdge struct {
	Symbol   types.Symbol
	Metadata *types.RelMetadata
}

// GetCalls returns every symbol that target (looked up by name or id) calls.
func (s *Service) GetCalls(target string, lang string) ([]CallEdge, error) {
	sym, err := s.resolveOne(target, lang, "get_calls")
	if err != nil {
		return nil, err
	}
	return s.edgesFrom(s.store.Outgoing(sym.ID, types.RelCalls)), nil
}

// FindCallers returns every symbol that calls target.
func (s *Service) FindCallers(target string, lang string) ([]CallEdge, error) {
	sym, err := s.resolveOne(target, lang, "find_callers")
	if err != nil {
		return nil, err
	}
	return s.edgesFromReverse(s.store.Incoming(sym.ID, types.RelCalls)), nil
}

func (s *Service) edgesFrom(rels []types.Relationship) []CallEdge {
	out := make([]CallEdge, 0, len(rels))
	for _, r := range rels {
		sym, ok := s.store.Get(r.ToID)
		if !ok {
			continue
		}
		out = append(out, CallEdge{Symbol: sym, Metadata: r.Metadata})
	}
	return out
}

func (s *Service) edgesFromReverse(rels []types.Relationship) []CallEdge {
	out := make([]CallEdge, 0, len(rels))
	for _, r := range rels {
		sym, ok := s.store.Get(r.FromID)
		if !ok {
			continue
		}
		out = append(out, CallEdge{Symbol: sym, Metadata: r.Metadata})
	}
	return out
}

// AnalyzeImpact walks the reverse call/implements/extends graph from
// target up to maxDepth hops, returning every symbol reachable (§8 S1).
func (s *Service) AnalyzeImpact(target string, maxDepth int, lang string) ([]types.Symbol, error) {
	if maxDepth <= 0 {
		maxDepth = 3
	}
	sym, err := s.resolveOne(target, lang, "analyze_impact")
	if err != nil {
		return nil, err
	}
	kinds := []types.RelationshipKind{types.RelCalls, types.RelImplements, types.RelExtends, types.RelUses}
	nodes := s.store.ImpactRadius(sym.ID, kinds, maxDepth)
	out := make([]types.Symbol, 0, len(nodes))
	for _, n := range nodes {
		if found, ok := s.store.Get(n.SymbolID); ok {
			out = append(out, found)
		}
	}
	return out, nil
}

// SearchSymbols runs a full-text query over symbol names/docs/signatures,
// optionally filtered by kind and/or module, capped at limit.
func (s *Service) SearchSymbols(query string, limit int, kind *types.SymbolKind, module, lang string) []SearchResult {
	if limit <= 0 {
		limit = 10
	}
	hits := s.store.FullText.Search(query, 0.8, limit*4) // over-fetch before filtering, then re-cap below
	out := make([]SearchResult, 0, limit)
	for _, h := range hits {
		sym, ok := s.store.Get(h.SymbolID)
		if !ok {
			continue
		}
		if kind != nil && sym.Kind != *kind {
			continue
		}
		if module != "" && sym.ModulePath != module {
			continue
		}
		if lang != "" && sym.LanguageID != lang {
			continue
		}
		path, _ := s.store.PathForFile(sym.FileID)
		out = append(out, SearchResult{Symbol: sym, FilePath: path, Score: h.Score})
		if len(out) >= limit {
			break
		}
	}
	return out
}

// SemanticSearchDocs ranks symbols by embedding similarity to query's
// embedding, using the configured EmbeddingGenerator and vector store.
func (s *Service) SemanticSearchDocs(ctx context.Context, query string, limit int, threshold float64, lang string) ([]SemanticHit, error) {
	if s.embedder == nil || s.vectors == nil {
		return nil, errors.New(errors.KindConfig, "semantic_search_docs", errNotConfigured)
	}
	if limit <= 0 {
		limit = 10
	}
	q, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, errors.New(errors.KindStorage, "semantic_search_docs", err)
	}
	all, err := s.vectors.ReadAllVectors()
	if err != nil {
		return nil, errors.New(errors.KindStorage, "semantic_search_docs", err)
	}
	matches := make([]semantic.Match, 0, len(all))
	for _, entry := range all {
		score, err := semantic.CosineSimilarity(q, entry.Vector)
		if err != nil {
			continue
		}
		if float64(score.Get()) < threshold {
			continue
		}
		matches = append(matches, semantic.Match{SymbolID: types.SymbolID(entry.ID.Get()), Score: score})
	}
	ranked := semantic.RankMatches(matches, limit)

	out := make([]SemanticHit, 0, len(ranked))
	for _, m := range ranked {
		sym, ok := s.store.Get(m.SymbolID)
		if !ok {
			continue
		}
		if lang != "" && sym.LanguageID != lang {
			continue
		}
		out = append(out, SemanticHit{Symbol: sym, Score: m.Score})
	}
	return out, nil
}

// SemanticSearchWithContext is SemanticSearchDocs plus each hit's
// SymbolContext, for callers that want connectivity information without a
// second call.
func (s *Service) SemanticSearchWithContext(ctx context.Context, query string, limit int, threshold float64, lang string) ([]SemanticContextHit, error) {
	if limit <= 0 {
		limit = 5
	}
	hits, err := s.SemanticSearchDocs(ctx, query, limit, threshold, lang)
	if err != nil {
		return nil, err
	}
	out := make([]SemanticContextHit, 0, len(hits))
	for _, h := range hits {
		out = append(out, SemanticContextHit{Symbol: h.Symbol, Score: h.Score, Context: s.buildContext(h.Symbol)})
	}
	return out, nil
}

// GetIndexInfo reports the index's current size and (if configured)
// semantic metadata, from the persisted meta.json alongside live store
// counts.
func (s *Service) GetIndexInfo(indexDir string) IndexInfo {
	counts := make(map[types.SymbolKind]int)
	for _, sym := range s.store.All() {
		counts[sym.Kind]++
	}
	byKind := make([]ByKindCount, 0, len(counts))
	for k, c := range counts {
		byKind = append(byKind, ByKindCount{Kind: k, Count: c})
	}
	sort.Slice(byKind, func(i, j int) bool { return byKind[i].Kind < byKind[j].Kind })

	relCount := 0
	for _, sym := range s.store.All() {
		relCount += len(s.store.OutgoingAll(sym.ID))
	}

	info := IndexInfo{
		SymbolCount:       s.store.Len(),
		FileCount:         s.store.Count(),
		RelationshipCount: relCount,
		ByKind:            byKind,
	}

	info.Semantic.Enabled = s.embedder != nil
	info.Semantic.Model = s.modelName
	if meta, err := persist.ReadMeta(indexDir); err == nil {
		info.Semantic.Dimension = meta.VectorDim
		info.Semantic.Created = meta.BuiltAt.Format("2006-01-02T15:04:05Z07:00")
	}
	if s.vectors != nil {
		info.Semantic.Embeddings = s.vectors.VectorCount()
		info.Semantic.Dimension = s.vectors.Dimension().Get()
	}
	return info
}

// resolveOne looks target up by name (the common case for tool callers)
// falling back to a numeric symbol id, per §6 "function_name | symbol_id".
func (s *Service) resolveOne(target, lang, op string) (types.Symbol, error) {
	if id, ok := parseSymbolID(target); ok {
		if sym, ok := s.store.Get(id); ok {
			return sym, nil
		}
		return types.Symbol{}, errors.New(errors.KindResolution, op, notFoundErr(target))
	}
	matches := s.store.ByName(target)
	if lang != "" {
		matches = filterLang(matches, lang)
	}
	if len(matches) == 0 {
		return types.Symbol{}, errors.New(errors.KindResolution, op, notFoundErr(target))
	}
	return matches[0], nil
}

func filterLang(syms []types.Symbol, lang string) []types.Symbol {
	out := make([]types.Symbol, 0, len(syms))
	for _, sym := range syms {
		if sym.LanguageID == lang {
			out = append(out, sym)
		}
	}
	return out
}

func parseSymbolID(s string) (types.SymbolID, bool) {
	if s == "" {
		return 0, false
	}
	var n uint64
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + uint64(r-'0')
	}
	if n == 0 {
		return 0, false
	}
	return types.SymbolID(n), true
}
