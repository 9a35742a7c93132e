// SPDX-License-Identifier: MIT

package builder

import "errors"

// Attribute keys written by Build.
const (
	AttrPosition   = "pos"
	AttrRadius     = "radius"
	AttrVesselType = "ves_type"
)

var (
	// ErrDuplicateNodeID indicates two distinct positions carry the same
	// point id, so the second node could not be keyed.
	ErrDuplicateNodeID = errors.New("builder: point id reused at a different position")

	// ErrAttrMissing indicates a vertex or edge lacks an expected attribute,
	// or holds it with an unexpected type.
	ErrAttrMissing = errors.New("builder: attribute missing")
)
