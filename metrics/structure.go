// SPDX-License-Identifier: MIT

package metrics

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/brainarterynetwork/bava/bfs"
	"github.com/brainarterynetwork/bava/core"
	"github.com/brainarterynetwork/bava/dfs"
)

// AverageClustering returns the mean local clustering coefficient.
// Vertices of degree < 2 contribute 0; an empty graph yields 0.
func AverageClustering(g *core.Graph) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}

	return snapshot(g).averageClustering(), nil
}

func (x *indexed) averageClustering() float64 {
	n := x.n()
	if n == 0 {
		return 0
	}
	stamp := make([]int, n)
	sum := 0.0
	for v, nbrs := range x.adj {
		d := len(nbrs)
		if d < 2 {
			continue
		}
		for _, u := range nbrs {
			stamp[u] = v + 1
		}
		// every triangle through v is seen from both of its other corners
		links := 0
		for _, u := range nbrs {
			for _, w := range x.adj[u] {
				if stamp[w] == v+1 {
					links++
				}
			}
		}
		sum += float64(links) / float64(d*(d-1))
	}

	return sum / float64(n)
}

// DegreeAssortativity returns the Pearson correlation between the degrees
// at the two ends of every edge, each edge counted in both directions.
// The result is nil when there are no edges or all edge ends share one
// degree.
func DegreeAssortativity(g *core.Graph) (*float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	return snapshot(g).assortativity(), nil
}

func (x *indexed) assortativity() *float64 {
	var src, dst []float64
	for _, nbrs := range x.adj {
		du := float64(len(nbrs))
		for _, v := range nbrs {
			src = append(src, du)
			dst = append(dst, float64(len(x.adj[v])))
		}
	}
	if len(src) == 0 || stat.Variance(src, nil) == 0 {
		return nil
	}
	r := stat.Correlation(src, dst, nil)

	return &r
}

// eccentricities returns the smallest and largest eccentricity over all
// vertices. The graph must be connected and non-empty.
func eccentricities(ctx context.Context, g *core.Graph) (radius, diameter int, err error) {
	radius = -1
	for _, id := range g.Vertices() {
		res, err := bfs.BFS(g, id, bfs.WithContext(ctx))
		if err != nil {
			return 0, 0, err
		}
		ecc := res.Eccentricity()
		if ecc > diameter {
			diameter = ecc
		}
		if radius < 0 || ecc < radius {
			radius = ecc
		}
	}

	return radius, diameter, nil
}

// Compute gathers the whole-graph summary. The graph is not modified.
func Compute(ctx context.Context, g *core.Graph, opts ...Option) (*Summary, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	x := snapshot(g)
	s := &Summary{Nodes: x.n(), Edges: g.EdgeCount()}
	if s.Nodes == 0 {
		s.Warnings = append(s.Warnings, "graph is empty")
	} else {
		s.MeanDegree = 2 * float64(s.Edges) / float64(s.Nodes)
	}
	s.AverageClustering = x.averageClustering()

	comps, err := dfs.Components(g, dfs.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	s.Components = len(comps)
	for _, c := range comps {
		if len(c) > s.LargestComponent {
			s.LargestComponent = len(c)
		}
	}

	s.Connected = s.Nodes > 0 && s.Components == 1
	if s.Connected {
		r, d, err := eccentricities(ctx, g)
		if err != nil {
			return nil, err
		}
		s.Radius, s.Diameter = &r, &d
	} else if s.Nodes > 0 {
		s.Warnings = append(s.Warnings, fmt.Sprintf("graph has %d components: diameter and radius not computed", s.Components))
	}

	if s.Assortativity = x.assortativity(); s.Assortativity == nil {
		s.Warnings = append(s.Warnings, "degree assortativity undefined")
	}

	c, pr, err := centralities(ctx, g, o)
	if err != nil {
		return nil, err
	}
	if !pr.Converged {
		s.Warnings = append(s.Warnings, fmt.Sprintf("pagerank did not converge after %d iterations", pr.Iterations))
	}
	s.MeanDegreeCentrality = mean(c.Degree)
	s.MeanCloseness = mean(c.Closeness)
	s.MeanBetweenness = mean(c.Betweenness)
	s.MeanPageRank = mean(c.PageRank)

	o.Logger.Debug("graph metrics computed",
		"nodes", s.Nodes,
		"edges", s.Edges,
		"components", s.Components,
		"warnings", len(s.Warnings),
	)

	return s, nil
}
