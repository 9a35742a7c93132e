// SPDX-License-Identifier: MIT

// Package vessel holds the fixed anatomical catalog of the brain artery
// tree: the table that resolves a traced path's (start type, end type)
// pair to a vessel-segment Label, and the table naming labels 1..24.
//
// Both tables encode the iCafe vessel ontology and are data, not rules.
// They are built once at package initialisation and never written again,
// so every function here is safe for concurrent use.
//
// Unmapped type pairs resolve to Unknown (0). Labels without a name
// (0 and 25..30) render through Label.String as their decimal token, which
// is also the bucket key used by the features package.
package vessel
