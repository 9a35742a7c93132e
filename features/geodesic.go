// SPDX-License-Identifier: MIT

package features

import (
	"github.com/brainarterynetwork/bava/core"
	"github.com/brainarterynetwork/bava/dijkstra"
)

// VesselDistance returns the shortest distance between nodes from and to
// measured along the vessels, together with the node sequence of that
// route.
//
// Errors: ErrGraphNil, dijkstra.ErrVertexNotFound, dijkstra.ErrNoPath,
// builder.ErrAttrMissing.
func VesselDistance(g *core.Graph, from, to string) (float64, []string, error) {
	if g == nil {
		return 0, nil, ErrGraphNil
	}
	weight := func(e *core.Edge) (float64, error) { return edgeLength(g, e) }
	dist, prev, err := dijkstra.Dijkstra(g,
		dijkstra.Source(from),
		dijkstra.WithWeight(weight),
		dijkstra.WithReturnPath(),
	)
	if err != nil {
		return 0, nil, err
	}
	route, err := dijkstra.PathTo(prev, from, to)
	if err != nil {
		return 0, nil, err
	}

	return dist[to], route, nil
}
