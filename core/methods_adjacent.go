// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, AdjacencyList).
// Determinism:
//   - Neighbors() returns edges in creation order.
//   - NeighborIDs() and AdjacencyList() values are sorted lex asc.

package core

import (
	"fmt"
	"sort"
)

// Neighbors returns all edges incident to id, a self-loop appearing once.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(d log d) for degree d.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	// Same lock order as mutators: muVert -> muEdgeAdj.
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	bucket := g.adjacency[id]
	out := make([]*Edge, 0, len(bucket))
	for _, eid := range bucket {
		out = append(out, g.edges[eid])
	}
	sortEdges(out)

	return out, nil
}

// NeighborIDs returns the unique adjacent vertex IDs of id, sorted ascending.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	ids := make([]string, 0, len(g.adjacency[id]))
	for nb := range g.adjacency[id] {
		ids = append(ids, nb)
	}
	sort.Strings(ids)

	return ids, nil
}

// AdjacencyList returns a snapshot mapping every vertex to its sorted
// neighbor IDs. Isolated vertices map to an empty, non-nil slice.
// The returned slices are independent of the graph.
// Complexity: O(V + E log d).
func (g *Graph) AdjacencyList() map[string][]string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make(map[string][]string, len(g.vertices))
	for id := range g.vertices {
		nbs := make([]string, 0, len(g.adjacency[id]))
		for nb := range g.adjacency[id] {
			nbs = append(nbs, nb)
		}
		sort.Strings(nbs)
		out[id] = nbs
	}

	return out
}
