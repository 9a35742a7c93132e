// SPDX-License-Identifier: MIT

// Package dfs implements iterative depth-first search (single-source and
// forest) on core.Graph, plus connected-component enumeration.
//
// Artery tracings can contain paths with tens of thousands of points, so the
// walker keeps an explicit frame stack instead of recursing.
//
// Key features:
//   - DFS(g, startID, opts...): traverse from a root, or the whole forest
//     via WithFullTraversal.
//   - Hooks: OnVisit (pre-order) and OnExit (post-order); an error aborts.
//   - Limits: MaxDepth, FilterNeighbor with a SkippedNeighbors counter.
//   - Components(g): connected components, each sorted, ordered by their
//     smallest vertex ID.
//
// Complexity:
//
//   - Time:   O(V + E) plus hook and filter costs.
//   - Memory: O(V) for the frame stack and result maps.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if startID is missing.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit, wrapped.
package dfs
