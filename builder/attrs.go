// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/brainarterynetwork/bava/core"
	"github.com/brainarterynetwork/bava/vessel"
)

func vertexAttr[T any](g *core.Graph, id, key string) (T, error) {
	var zero T
	if !g.HasVertex(id) {
		return zero, fmt.Errorf("%w: %q", core.ErrVertexNotFound, id)
	}
	raw, ok := g.VertexAttr(id, key)
	if !ok {
		return zero, fmt.Errorf("%w: vertex %q has no %q", ErrAttrMissing, id, key)
	}
	val, ok := raw.(T)
	if !ok {
		return zero, fmt.Errorf("%w: vertex %q %q is %T", ErrAttrMissing, id, key, raw)
	}

	return val, nil
}

// Position returns the 3D position of vertex id.
func Position(g *core.Graph, id string) ([3]float64, error) {
	return vertexAttr[[3]float64](g, id, AttrPosition)
}

// Radius returns the radius of vertex id.
func Radius(g *core.Graph, id string) (float64, error) {
	return vertexAttr[float64](g, id, AttrRadius)
}

// VesselTypes returns a copy of the vessel labels incident to vertex id, in
// the order they were first seen.
func VesselTypes(g *core.Graph, id string) ([]vessel.Label, error) {
	types, err := vertexAttr[[]vessel.Label](g, id, AttrVesselType)
	if err != nil {
		return nil, err
	}

	return append([]vessel.Label(nil), types...), nil
}

// IsBifurcation reports whether vertex id carries more than one label.
func IsBifurcation(g *core.Graph, id string) (bool, error) {
	types, err := vertexAttr[[]vessel.Label](g, id, AttrVesselType)
	if err != nil {
		return false, err
	}

	return len(types) > 1, nil
}

// EdgeVesselType returns the label of the edge joining a and b.
func EdgeVesselType(g *core.Graph, a, b string) (vessel.Label, error) {
	e, err := g.Edge(a, b)
	if err != nil {
		return vessel.Unknown, err
	}

	return EdgeLabel(e)
}

// EdgeLabel returns the label stored on e.
func EdgeLabel(e *core.Edge) (vessel.Label, error) {
	l, ok := e.Metadata[AttrVesselType].(vessel.Label)
	if !ok {
		return vessel.Unknown, fmt.Errorf("%w: edge %s has no %q", ErrAttrMissing, e.ID, AttrVesselType)
	}

	return l, nil
}
