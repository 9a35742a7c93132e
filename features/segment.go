// SPDX-License-Identifier: MIT

package features

import (
	"math"

	"github.com/brainarterynetwork/bava/builder"
	"github.com/brainarterynetwork/bava/core"
	"github.com/brainarterynetwork/bava/swc"
)

// edgeLength returns the Euclidean distance between the endpoints of e.
func edgeLength(g *core.Graph, e *core.Edge) (float64, error) {
	a, err := builder.Position(g, e.From)
	if err != nil {
		return 0, err
	}
	b, err := builder.Position(g, e.To)
	if err != nil {
		return 0, err
	}

	return swc.Distance(a, b), nil
}

// SegmentFeatures accumulates length and branch count per vessel name.
//
// Errors: ErrGraphNil, builder.ErrAttrMissing for graphs not produced by
// builder.Build.
// Complexity: O(E).
func SegmentFeatures(g *core.Graph) (Table, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	edges := g.Edges()
	degree := make(map[string]int, g.VertexCount())
	for _, e := range edges {
		degree[e.From]++
		degree[e.To]++
	}

	t := make(Table)
	for _, e := range edges {
		label, err := builder.EdgeLabel(e)
		if err != nil {
			return nil, err
		}
		length, err := edgeLength(g, e)
		if err != nil {
			return nil, err
		}

		key := label.String()
		r := t[key]
		r.Length += length
		if degree[e.From] != 2 || degree[e.To] != 2 {
			r.BranchNumber++
		}
		t[key] = r
	}

	for k, r := range t {
		r.BranchNumber = int(math.Ceil(float64(r.BranchNumber) / 2))
		t[k] = r
	}

	return t, nil
}

// TotalLength sums the Euclidean length of every edge.
func TotalLength(g *core.Graph) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}

	total := 0.0
	for _, e := range g.Edges() {
		l, err := edgeLength(g, e)
		if err != nil {
			return 0, err
		}
		total += l
	}

	return total, nil
}

// branchFrame is one pending step of the branch walk.
type branchFrame struct {
	node, prev string
}

// CountBranches walks from every node whose degree is not 2 towards the
// next such node, counting each arrival, and returns the count halved
// (rounded down) since every branch is reached from both ends. Edges are
// consumed at most once across all walks.
//
// Complexity: O(V + E).
func CountBranches(g *core.Graph) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}

	adj := g.AdjacencyList()
	branching := func(id string) bool { return len(adj[id]) != 2 }
	visited := make(map[[2]string]bool, g.EdgeCount())

	total := 0
	for _, start := range g.Vertices() {
		if !branching(start) {
			continue
		}
		stack := []branchFrame{{node: start}}
		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if branching(f.node) && f.node != f.prev {
				total++
				continue
			}
			for _, nbr := range adj[f.node] {
				if nbr == f.prev {
					continue
				}
				key := [2]string{f.node, nbr}
				if nbr < f.node {
					key = [2]string{nbr, f.node}
				}
				if visited[key] {
					continue
				}
				visited[key] = true
				stack = append(stack, branchFrame{node: nbr, prev: f.node})
			}
		}
	}

	return total / 2, nil
}
