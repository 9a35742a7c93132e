// SPDX-License-Identifier: MIT

// Package builder turns down-sampled traced paths into the attributed
// artery graph.
//
// Nodes are deduplicated by exact position: the first point seen at a
// position creates the node (keyed by that point's SWC id) and later points
// at the same position only add their path's segment label to the node's
// vessel types. A node carrying two or more labels is a bifurcation.
//
// Consecutive retained points of each path become edges. An edge touching a
// bifurcation takes the first label of its other endpoint; otherwise it
// takes its path's own label. Two points that collapse onto the same node
// produce no edge, and a vertex pair joined by several paths keeps the
// label of the last one.
//
// Attribute keys on the produced core.Graph:
//
//	vertex "pos"       [3]float64
//	vertex "radius"    float64
//	vertex "ves_type"  []vessel.Label (insertion order, no repeats)
//	edge   "ves_type"  vessel.Label
//
// Position matching is exact floating-point equality; near-duplicate
// positions stay distinct nodes.
package builder
