// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edge/Edges/EdgeCount,
//       plus edge attribute mutation. Also: nextEdgeID().
// Determinism:
//   - Edges() returns edges in creation order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"fmt"
	"sort"
	"strconv"
)

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge connects from and to, returning the edge ID.
//
// Steps:
//  1. Validate IDs and the loop policy.
//  2. Ensure endpoints via AddVertex.
//  3. Under muEdgeAdj: if the pair is already connected, apply opts to the
//     existing edge and return its ID (upsert); otherwise allocate a new edge,
//     apply opts and link adjacency in both directions.
//
// Errors: ErrEmptyVertexID, ErrLoopNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if eid, ok := g.adjacency[from][to]; ok {
		e := g.edges[eid]
		for _, opt := range opts {
			opt(e)
		}
		return eid, nil
	}

	eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: from, To: to, Metadata: make(map[string]interface{}), seq: g.nextEdgeID}
	for _, opt := range opts {
		opt(e)
	}

	g.edges[eid] = e
	g.adjacency[from][to] = eid
	g.adjacency[to][from] = eid

	return eid, nil
}

// RemoveEdge deletes the edge with the given ID and its mirror.
// Errors: ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return fmt.Errorf("%w: %q", ErrEdgeNotFound, eid)
	}
	delete(g.edges, eid)
	delete(g.adjacency[e.From], e.To)
	delete(g.adjacency[e.To], e.From)

	return nil
}

// HasEdge reports whether a and b are adjacent (in either orientation).
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[a][b]

	return ok
}

// Edge returns the live edge joining a and b. Treat it as read-only.
// Errors: ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) Edge(a, b string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	eid, ok := g.adjacency[a][b]
	if !ok {
		return nil, fmt.Errorf("%w: %q-%q", ErrEdgeNotFound, a, b)
	}

	return g.edges[eid], nil
}

// SetEdgeAttr stores value under key on the edge joining a and b.
// Errors: ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) SetEdgeAttr(a, b, key string, value interface{}) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	eid, ok := g.adjacency[a][b]
	if !ok {
		return fmt.Errorf("%w: %q-%q", ErrEdgeNotFound, a, b)
	}
	g.edges[eid].Metadata[key] = value

	return nil
}

// Edges returns every edge in creation order. The pointers are live;
// treat them as read-only.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	g.muEdgeAdj.RUnlock()
	sortEdges(out)

	return out
}

// EdgeCount returns |E|.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// nextEdgeID advances the counter and formats the new ID.
// Caller must hold muEdgeAdj for writing.
func nextEdgeID(g *Graph) string {
	g.nextEdgeID++
	buf := make([]byte, 0, 21)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, g.nextEdgeID, 10)

	return string(buf)
}

func sortEdges(edges []*Edge) {
	sort.Slice(edges, func(i, j int) bool { return edges[i].seq < edges[j].seq })
}
