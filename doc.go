// SPDX-License-Identifier: MIT

// Package bava turns brain-artery centerline tracings into an attributed
// vessel graph and reports hierarchical morphological features and graph
// metrics for it.
//
// The pipeline, one package per stage:
//
//	swc/      - SWC tracing reader: rows, paths between roots, distance down-sampling
//	vessel/   - vessel-type catalog: segment endpoints -> label -> name
//	builder/  - position-deduplicating graph construction with vessel labels
//	features/ - per-vessel length and branch counts, hierarchical rollup
//	metrics/  - degree, clustering, assortativity, centralities, PageRank
//	plot/     - renderer-neutral 3D scene
//	subject/  - one tracing end to end, and a parallel multi-subject manager
//
// Graph substrate:
//
//	core/     - thread-safe undirected attributed graph
//	bfs/      - breadth-first traversal with depths and parents
//	dfs/      - iterative depth-first traversal and connected components
//	dijkstra/ - weighted shortest paths (along-vessel distance)
//
// The bava command in cmd/bava exposes the pipeline on the command line.
//
//	go install github.com/brainarterynetwork/bava/cmd/bava@latest
package bava
