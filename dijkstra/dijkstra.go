// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/brainarterynetwork/bava/core"
)

// Dijkstra computes shortest distances from Options.Source to every vertex
// of g.
//
// Returns:
//
//   - dist: vertex ID -> minimum distance (+Inf if unreachable or beyond
//     MaxDistance).
//   - prev: predecessor map if ReturnPath is set, nil otherwise;
//     prev[v] == "" for the source and for unreachable v.
//
// Errors: ErrEmptySource, ErrNilGraph, ErrVertexNotFound, ErrBadMaxDistance,
// ErrNegativeWeight, or any error of the weight function.
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}

	vertices := g.Vertices()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, len(vertices)),
		prev:    make(map[string]string, len(vertices)),
		visited: make(map[string]bool, len(vertices)),
		pq:      make(nodePQ, 0, len(vertices)),
	}
	for _, v := range vertices {
		r.dist[v] = math.Inf(1)
		r.prev[v] = ""
	}
	r.dist[cfg.Source] = 0
	heap.Push(&r.pq, &nodeItem{id: cfg.Source, dist: 0})

	if err := r.process(); err != nil {
		return nil, nil, err
	}
	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// PathTo rebuilds the source -> dest vertex sequence from a predecessor
// map returned with WithReturnPath.
func PathTo(prev map[string]string, source, dest string) ([]string, error) {
	if _, ok := prev[dest]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, dest)
	}
	var rev []string
	for v := dest; v != source; v = prev[v] {
		if v == "" || len(rev) > len(prev) {
			return nil, fmt.Errorf("%w: %q -> %q", ErrNoPath, source, dest)
		}
		rev = append(rev, v)
	}
	rev = append(rev, source)

	path := make([]string, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}

	return path, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]float64
	prev    map[string]string
	visited map[string]bool
	pq      nodePQ
}

// process settles vertices in order of distance until the heap empties or
// the closest candidate lies beyond MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	// Tentative distances past the cap were never settled.
	for v, d := range r.dist {
		if !r.visited[v] && !math.IsInf(d, 1) {
			r.dist[v] = math.Inf(1)
			r.prev[v] = ""
		}
	}

	return nil
}

// relax improves the neighbours of the settled vertex u.
func (r *runner) relax(u string) error {
	edges, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %q: %w", u, err)
	}
	for _, e := range edges {
		v := e.Other(u)
		if r.visited[v] {
			continue
		}
		w, err := r.options.Weight(e)
		if err != nil {
			return err
		}
		if !(w >= 0) {
			return fmt.Errorf("%w: edge %s-%s weight=%v", ErrNegativeWeight, e.From, e.To, w)
		}

		nd := r.dist[u] + w
		if nd > r.options.MaxDistance || nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: nd})
	}

	return nil
}

// nodeItem is a heap entry. Stale entries are skipped on pop.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then id.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
