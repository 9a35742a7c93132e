// SPDX-License-Identifier: MIT

package metrics

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/brainarterynetwork/bava/core"
)

// indexed is a dense snapshot of a graph: vertex i has ID ids[i] and
// neighbors adj[i]. Self-loops are dropped.
type indexed struct {
	ids []string
	adj [][]int
}

func snapshot(g *core.Graph) *indexed {
	lists := g.AdjacencyList()
	ids := make([]string, 0, len(lists))
	for id := range lists {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	pos := make(map[string]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}
	adj := make([][]int, len(ids))
	for i, id := range ids {
		for _, nb := range lists[id] {
			if nb != id {
				adj[i] = append(adj[i], pos[nb])
			}
		}
	}

	return &indexed{ids: ids, adj: adj}
}

func (x *indexed) n() int { return len(x.ids) }

// byID converts a dense score slice into a map keyed by vertex ID.
func (x *indexed) byID(vals []float64) map[string]float64 {
	out := make(map[string]float64, len(vals))
	for i, v := range vals {
		out[x.ids[i]] = v
	}

	return out
}

// mean averages m in key order so repeated runs agree bit for bit.
func mean(m map[string]float64) float64 {
	if len(m) == 0 {
		return 0
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	vals := make([]float64, len(keys))
	for i, k := range keys {
		vals[i] = m[k]
	}

	return stat.Mean(vals, nil)
}
