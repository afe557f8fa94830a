// Package relstore is the relationship graph half of the store (§4.6): a
// direction-tagged adjacency index over Relationship edges, grounded on the
// teacher's UniversalSymbolGraph relationship/reverse-relationship index
// pair, plus a BFS impact-radius walk for analyze_impact (§6).
package relstore

import (
	"sync"

	"github.com/standardbeagle/lci/internal/types"
)

// Store holds every materialized Relationship, indexed both forward
// (FromID -> edges) and backward (ToID -> edges) so a reverse lookup never
// needs a scan — the same "relationship index + reverse relationship
// index" pairing the teacher's graph keeps per RelationshipKind.
type Store struct {
	mu sync.RWMutex

	forward  map[types.SymbolID][]types.Relationship
	backward map[types.SymbolID][]types.Relationship

	externalStubs map[string]types.SymbolID // "modulePath\x00name" -> stub id
	nextStubID    uint32
}

// New returns an empty relationship Store.
func New() *Store {
	return &Store{
		forward:       make(map[types.SymbolID][]types.Relationship),
		backward:      make(map[types.SymbolID][]types.Relationship),
		externalStubs: make(map[string]types.SymbolID),
		nextStubID:    1 << 31, // external stubs live in a id range disjoint from real symbols
	}
}

// PutRelationship records one directed edge. Callers materialize both
// directions themselves (INDEX writes a relationship and its Inverse as
// two calls) so Store stays a dumb index rather than re-deriving inverses.
func (s *Store) PutRelationship(rel types.Relationship) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forward[rel.FromID] = append(s.forward[rel.FromID], rel)
	s.backward[rel.ToID] = append(s.backward[rel.ToID], rel)
}

// PutExternalStub returns a stable synthetic SymbolID for an
// (modulePath, name) pair that could not be resolved to a real symbol,
// creating one on first use. Stub ids are drawn from a disjoint range so
// they can never collide with a real allocator's output (§4.5 INDEX
// "resolve_external_call_target").
func (s *Store) PutExternalStub(modulePath, name string) types.SymbolID {
	key := modulePath + "\x00" + name
	s.mu.Lock()
	defer s.mu.Unlock()
	if id, ok := s.externalStubs[key]; ok {
		return id
	}
	id := types.SymbolID(s.nextStubID)
	s.nextStubID++
	s.externalStubs[key] = id
	return id
}

// Outgoing returns every edge of kind originating at id. A zero kind value
// (RelCalls) is a real filter, not a wildcard — callers wanting "any kind"
// use OutgoingAll.
func (s *Store) Outgoing(id types.SymbolID, kind types.RelationshipKind) []types.Relationship {
	return filterKind(s.snapshotForward(id), kind)
}

// Incoming returns every edge of kind terminating at id.
func (s *Store) Incoming(id types.SymbolID, kind types.RelationshipKind) []types.Relationship {
	return filterKind(s.snapshotBackward(id), kind)
}

// OutgoingAll returns every outgoing edge regardless of kind.
func (s *Store) OutgoingAll(id types.SymbolID) []types.Relationship {
	return s.snapshotForward(id)
}

// IncomingAll returns every incoming edge regardless of kind.
func (s *Store) IncomingAll(id types.SymbolID) []types.Relationship {
	return s.snapshotBackward(id)
}

func (s *Store) snapshotForward(id types.SymbolID) []types.Relationship {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]types.Relationship(nil), s.forward[id]...)
}

func (s *Store) snapshotBackward(id types.SymbolID) []types.Relationship {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]types.Relationship(nil), s.backward[id]...)
}

func filterKind(edges []types.Relationship, kind types.RelationshipKind) []types.Relationship {
	out := make([]types.Relationship, 0, len(edges))
	for _, e := range edges {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// ImpactNode is one hop of an ImpactRadius walk: the symbol reached, its
// distance in hops from the root, and the edge that reached it.
type ImpactNode struct {
	SymbolID types.SymbolID
	Depth    int
	Via      types.Relationship
}

// ImpactRadius performs a breadth-first walk outward from root following
// the given kinds' incoming edges (i.e. "what calls/implements/extends
// this, transitively") up to maxDepth hops, the mechanism behind
// analyze_impact (§6). A symbol is never visited twice even if reachable
// by more than one path.
func (s *Store) ImpactRadius(root types.SymbolID, kinds []types.RelationshipKind, maxDepth int) []ImpactNode {
	wanted := make(map[types.RelationshipKind]struct{}, len(kinds))
	for _, k := range kinds {
		wanted[k] = struct{}{}
	}

	visited := map[types.SymbolID]struct{}{root: {}}
	queue := []ImpactNode{{SymbolID: root, Depth: 0}}
	var result []ImpactNode

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.Depth >= maxDepth {
			continue
		}
		for _, edge := range s.IncomingAll(cur.SymbolID) {
			if len(wanted) > 0 {
				if _, ok := wanted[edge.Kind]; !ok {
					continue
				}
			}
			if _, seen := visited[edge.FromID]; seen {
				continue
			}
			visited[edge.FromID] = struct{}{}
			node := ImpactNode{SymbolID: edge.FromID, Depth: cur.Depth + 1, Via: edge}
			result = append(result, node)
			queue = append(queue, node)
		}
	}
	return result
}
