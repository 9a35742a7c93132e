// SPDX-License-Identifier: MIT

// Package plot projects an artery graph onto a renderer-neutral 3D scene:
// one line trace per edge coloured by vessel label, one legend entry per
// label, and a single marker trace for the nodes. Bifurcation nodes are red,
// all others blue, and node hover text lists the node's vessel names.
//
// Colours sample the 256-entry "rainbow" lookup table at evenly spaced
// points, one per distinct edge label in ascending label order.
//
// The scene is plain data; WriteJSON serialises it for an external
// renderer. Projection never modifies the graph.
package plot
