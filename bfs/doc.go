// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop distance from a start vertex.
//   - BFSResult carries Order (visit sequence), Depth (hops from start) and
//     Parent (predecessor in the BFS tree).
//   - OnVisit may abort the walk by returning an error.
//   - WithFilterNeighbor prunes individual neighbor steps.
//   - WithMaxDepth bounds the frontier (d > 0) or disables the bound (d == 0).
//
// The metrics package runs one BFS per vertex to derive closeness,
// eccentricity, diameter and radius of artery graphs.
//
// Determinism
//
//	core.Graph.NeighborIDs returns sorted IDs, so the visit order is fully
//	reproducible for a given graph.
//
// Complexity
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      for invalid options (negative MaxDepth).
//   - ErrNeighbors            if neighbor lookup fails mid-walk.
//   - context errors on cancellation, and wrapped OnVisit errors.
package bfs
