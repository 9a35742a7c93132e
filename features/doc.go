// SPDX-License-Identifier: MIT

// Package features derives morphological features from an artery graph
// built by package builder.
//
// SegmentFeatures walks every edge once and accumulates, per vessel name,
// the Euclidean edge length and the number of edges touching a node whose
// degree is not 2; the latter is then halved, rounding up. Edges whose label
// has no anatomical name are bucketed under the label's decimal token, so
// "0" collects unresolved segments.
//
// Summarize rolls the per-vessel table up the anatomical hierarchy:
//
//  1. territory x side x proximity, 12 keys such as "proximal_MCA_L". A
//     vessel belongs to a territory when its name starts with the
//     territory's first letter and contains an underscore after it, to a
//     side when the name contains the side letter, and is distal when the
//     name contains the digit 2 or 3.
//  2. every 3-part key with one component dropped, 16 keys such as
//     "MCA_L", "proximal_L" and "distal_PCA".
//  3. the single components "R", "L", "MCA", "ACA", "PCA", "proximal" and
//     "distal", each summing every 2-part key that contains it as a
//     substring.
//  4. "total" = "proximal" + "distal".
//
// Step 3 reaches each record through two 2-part keys, so single-component
// and total values count every territorial vessel twice. Vessels outside
// the three territories (ICA, AComm, VA, BA, OA, unknown) feed no
// aggregate; SegmentTotal sums the raw buckets directly.
package features
