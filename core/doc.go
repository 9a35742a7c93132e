// SPDX-License-Identifier: MIT

// Package core provides the thread-safe, in-memory undirected graph that every
// other bava package builds on.
//
// A Graph G = (V,E) stores:
//
//   - Vertices keyed by a non-empty string ID, each carrying a Metadata map
//     for arbitrary attributes (position, radius, vessel labels, centralities, ...).
//   - Undirected edges with stable, monotonically assigned IDs ("e1", "e2", ...)
//     and their own Metadata map (for example the resolved vessel label).
//   - A mirrored adjacency index adjacency[a][b] = edgeID for O(1) lookups.
//
// The graph is simple: at most one edge joins a pair of vertices. Adding an
// edge between an already-connected pair does not create a parallel edge; the
// new attributes are written onto the existing edge instead (upsert), which is
// the behaviour tracing pipelines rely on when two traced paths revisit the
// same pair of positions. Self-loops are rejected unless WithLoops is given.
//
// Determinism:
//
//   - Vertices() and NeighborIDs() return IDs sorted lexicographically.
//   - Edges() and Neighbors() return edges in creation order.
//
// Concurrency:
//
//	muVert guards the vertex catalog, muEdgeAdj guards edges and adjacency.
//	Lock order is always muVert -> muEdgeAdj. Metadata maps returned through
//	live pointers (Edges, Neighbors) are read-only by convention; use the
//	Set*Attr methods to mutate attributes under the graph locks.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
//	ErrLoopNotAllowed - self-loop when loops are disabled.
package core
