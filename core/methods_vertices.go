// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle, attribute access and degree queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Vertex catalog and vertex metadata protected by muVert.
//   - Degree reads adjacency under muEdgeAdj.

package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under muVert, register the vertex with a non-nil Metadata map.
//   - Stage 3: Under muEdgeAdj, bootstrap its adjacency bucket.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil // no-op for existing vertex
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}

	g.muEdgeAdj.Lock()
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]string)
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns a snapshot of the vertex: the returned struct and its
// Metadata map are copies, attribute values themselves are shared.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(k) for k metadata keys.
func (g *Graph) Vertex(id string) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return &Vertex{ID: v.ID, Metadata: copyMetadata(v.Metadata)}, nil
}

// SetVertexAttr stores value under key in the vertex Metadata, replacing any
// previous value.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(1).
func (g *Graph) SetVertexAttr(id, key string, value interface{}) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	v, ok := g.vertices[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	v.Metadata[key] = value

	return nil
}

// VertexAttr returns the attribute stored under key for vertex id.
// The boolean is false when the vertex or the key is absent.
// Complexity: O(1).
func (g *Graph) VertexAttr(id, key string) (interface{}, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, false
	}
	val, ok := v.Metadata[key]

	return val, ok
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.muVert.RUnlock()
	sort.Strings(ids)

	return ids
}

// VertexCount returns |V|.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of edge endpoints at id. A self-loop adds 2,
// matching the usual undirected convention.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	bucket := g.adjacency[id]
	deg := len(bucket)
	if _, loop := bucket[id]; loop {
		deg++ // loop endpoint counted twice
	}

	return deg, nil
}

func copyMetadata(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}
