// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"

	"github.com/brainarterynetwork/bava/core"
	"github.com/brainarterynetwork/bava/swc"
	"github.com/brainarterynetwork/bava/vessel"
)

// node is one arena slot.
type node struct {
	id     string
	pos    [3]float64
	radius float64
	types  []vessel.Label
}

// arena stores nodes in creation order with position and id indexes.
type arena struct {
	nodes []node
	byPos map[[3]float64]int
	byID  map[string]int
}

func newArena(hint int) *arena {
	return &arena{
		nodes: make([]node, 0, hint),
		byPos: make(map[[3]float64]int, hint),
		byID:  make(map[string]int, hint),
	}
}

// add registers p under label, merging into an existing node at the same
// position, and returns the index of the node that holds p.
func (a *arena) add(p swc.Point, label vessel.Label) (int, error) {
	if i, ok := a.byPos[p.Position]; ok {
		n := &a.nodes[i]
		for _, t := range n.types {
			if t == label {
				return i, nil
			}
		}
		n.types = append(n.types, label)
		return i, nil
	}

	id := strconv.FormatInt(p.ID, 10)
	if j, ok := a.byID[id]; ok {
		return 0, fmt.Errorf("%w: id %s at %v and %v", ErrDuplicateNodeID, id, a.nodes[j].pos, p.Position)
	}
	i := len(a.nodes)
	a.byPos[p.Position] = i
	a.byID[id] = i
	a.nodes = append(a.nodes, node{id: id, pos: p.Position, radius: p.Radius, types: []vessel.Label{label}})

	return i, nil
}

// edgeLabel applies the bifurcation rule to the nodes at indexes u and v.
func (a *arena) edgeLabel(u, v int, own vessel.Label) vessel.Label {
	switch {
	case len(a.nodes[u].types) > 1:
		return a.nodes[v].types[0]
	case len(a.nodes[v].types) > 1:
		return a.nodes[u].types[0]
	default:
		return own
	}
}

// Build converts paths into the artery graph. All nodes are registered
// before any edge is labelled, so the bifurcation rule sees the final
// vessel-type sets. An empty input yields an empty graph.
//
// Errors: ErrDuplicateNodeID.
// Complexity: O(P) for P retained points.
func Build(paths []swc.DownsampledPath) (*core.Graph, error) {
	total := 0
	for _, p := range paths {
		total += len(p.Points)
	}

	a := newArena(total)
	labels := make([]vessel.Label, len(paths))
	idx := make([][]int, len(paths))
	for i, p := range paths {
		labels[i] = p.Segment()
		idx[i] = make([]int, len(p.Points))
		for j, pt := range p.Points {
			n, err := a.add(pt, labels[i])
			if err != nil {
				return nil, err
			}
			idx[i][j] = n
		}
	}

	g := core.NewGraph(core.WithCapacity(len(a.nodes)))
	for _, n := range a.nodes {
		if err := g.AddVertex(n.id); err != nil {
			return nil, err
		}
		if err := g.SetVertexAttr(n.id, AttrPosition, n.pos); err != nil {
			return nil, err
		}
		if err := g.SetVertexAttr(n.id, AttrRadius, n.radius); err != nil {
			return nil, err
		}
		if err := g.SetVertexAttr(n.id, AttrVesselType, append([]vessel.Label(nil), n.types...)); err != nil {
			return nil, err
		}
	}

	for i := range paths {
		for j := 0; j+1 < len(idx[i]); j++ {
			u, v := idx[i][j], idx[i][j+1]
			if u == v {
				continue
			}
			label := a.edgeLabel(u, v, labels[i])
			if _, err := g.AddEdge(a.nodes[u].id, a.nodes[v].id, core.WithEdgeAttr(AttrVesselType, label)); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}
