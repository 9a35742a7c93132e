// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Metadata stores arbitrary key-value attributes and is never nil.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data. Clone copies the map, not the values.
	Metadata map[string]interface{}
}

// Edge represents an undirected connection between two vertices.
//
// From and To record the orientation in which the edge was first added;
// traversal treats both directions alike.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the first endpoint as passed to AddEdge.
	From string

	// To is the second endpoint as passed to AddEdge.
	To string

	// Metadata stores per-edge attributes and is never nil.
	Metadata map[string]interface{}

	seq uint64 // creation order, drives deterministic enumeration
}

// Other returns the endpoint opposite to id. If id is not an endpoint the
// result is e.To.
func (e *Edge) Other(id string) string {
	if e.To == id {
		return e.From
	}

	return e.To
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithCapacity pre-sizes the vertex and adjacency maps for n vertices.
// Non-positive n is ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capacity = n
		}
	}
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithEdgeAttr sets Metadata[key] = value on the added (or updated) edge.
func WithEdgeAttr(key string, value interface{}) EdgeOption {
	return func(e *Edge) { e.Metadata[key] = value }
}

// Graph is the core in-memory undirected graph.
//
// muVert protects the vertices map; muEdgeAdj protects the edges map and
// the adjacency index. nextEdgeID is the edge ID generator.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	allowLoops bool // allow self-loops
	capacity   int  // sizing hint for maps

	nextEdgeID uint64             // edge ID generator (under muEdgeAdj)
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacency[a][b] = edge ID, mirrored as adjacency[b][a].
	adjacency map[string]map[string]string
}

// NewGraph creates an empty undirected Graph. Loops are disabled by default.
// Complexity: O(1) (plus the optional capacity allocation).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.vertices = make(map[string]*Vertex, g.capacity)
	g.edges = make(map[string]*Edge, g.capacity)
	g.adjacency = make(map[string]map[string]string, g.capacity)

	return g
}

// Looped reports whether self-loops are permitted by policy.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}
