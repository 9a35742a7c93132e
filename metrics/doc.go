// SPDX-License-Identifier: MIT

// Package metrics computes graph-theoretic descriptors of an artery graph:
// size, mean degree, average clustering, connected components, diameter
// and radius, degree assortativity, and four node centralities.
//
// Definitions follow the conventions of the common Python graph tooling so
// numbers are comparable across implementations:
//
//   - degree centrality     deg(v)/(n-1), or 1 for graphs of one node.
//   - closeness centrality  (r-1)/sum(d) scaled by (r-1)/(n-1), where r is
//     the size of v's component; 0 for isolated nodes.
//   - betweenness           Brandes over all sources, scaled by
//     1/((n-1)(n-2)) when n > 2.
//   - PageRank              power iteration with damping 0.85, uniform
//     teleport and dangling redistribution, stopping when the L1 change
//     drops below n*tol (tol 1e-6) or after 100 iterations.
//   - clustering            2T/(d(d-1)) per node, 0 when d < 2, averaged.
//   - assortativity         Pearson correlation of the degrees at both ends
//     of every edge, counted in both directions.
//
// Degenerate inputs never fail: diameter and radius are left nil unless
// the graph is non-empty and connected, assortativity is nil when the
// degree variance is zero, and each such case adds a Summary warning.
//
// Compute never mutates the graph. AddCentrality stores the four
// centralities as vertex metadata under "degree", "closeness",
// "betweenness" and "pagerank". The centralities are independent
// read-only passes and run concurrently.
package metrics
