// SPDX-License-Identifier: MIT

package metrics

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/brainarterynetwork/bava/bfs"
	"github.com/brainarterynetwork/bava/core"
)

// DegreeCentrality returns deg(v)/(n-1) for every vertex.
func DegreeCentrality(g *core.Graph) (map[string]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	x := snapshot(g)
	out := make([]float64, x.n())
	for i := range out {
		if x.n() <= 1 {
			out[i] = 1
			continue
		}
		out[i] = float64(len(x.adj[i])) / float64(x.n()-1)
	}

	return x.byID(out), nil
}

// ClosenessCentrality returns the component-scaled closeness of every
// vertex, one BFS per vertex.
func ClosenessCentrality(ctx context.Context, g *core.Graph) (map[string]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	ids := g.Vertices()
	n := len(ids)
	out := make(map[string]float64, n)
	for _, id := range ids {
		res, err := bfs.BFS(g, id, bfs.WithContext(ctx))
		if err != nil {
			return nil, err
		}
		total := 0
		for _, d := range res.Depth {
			total += d
		}
		reach := len(res.Depth)
		c := 0.0
		if total > 0 && n > 1 {
			c = float64(reach-1) / float64(total)
			c *= float64(reach-1) / float64(n-1)
		}
		out[id] = c
	}

	return out, nil
}

// BetweennessCentrality runs Brandes' algorithm from every source and
// normalises by 1/((n-1)(n-2)) when n > 2.
func BetweennessCentrality(ctx context.Context, g *core.Graph) (map[string]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	x := snapshot(g)
	n := x.n()
	bc := make([]float64, n)

	var (
		stack = make([]int, 0, n)
		queue = make([]int, 0, n)
		preds = make([][]int, n)
		sigma = make([]float64, n)
		dist  = make([]int, n)
		delta = make([]float64, n)
	)
	for s := 0; s < n; s++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		stack, queue = stack[:0], queue[:0]
		for i := 0; i < n; i++ {
			preds[i] = preds[i][:0]
			sigma[i], dist[i], delta[i] = 0, -1, 0
		}
		sigma[s], dist[s] = 1, 0
		queue = append(queue, s)

		for head := 0; head < len(queue); head++ {
			v := queue[head]
			stack = append(stack, v)
			for _, w := range x.adj[v] {
				if dist[w] < 0 {
					dist[w] = dist[v] + 1
					queue = append(queue, w)
				}
				if dist[w] == dist[v]+1 {
					sigma[w] += sigma[v]
					preds[w] = append(preds[w], v)
				}
			}
		}

		for i := len(stack) - 1; i >= 0; i-- {
			w := stack[i]
			coeff := (1 + delta[w]) / sigma[w]
			for _, v := range preds[w] {
				delta[v] += sigma[v] * coeff
			}
			if w != s {
				bc[w] += delta[w]
			}
		}
	}

	if n > 2 {
		scale := 1 / float64((n-1)*(n-2))
		for i := range bc {
			bc[i] *= scale
		}
	}

	return x.byID(bc), nil
}

// PageRank runs power iteration over the symmetric random walk. An empty
// graph yields empty scores. Non-convergence is reported through
// Converged, not as an error.
func PageRank(ctx context.Context, g *core.Graph, opts ...Option) (*PageRankResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	x := snapshot(g)
	n := x.n()
	if n == 0 {
		return &PageRankResult{Scores: map[string]float64{}, Converged: true}, nil
	}

	N := float64(n)
	scores := make([]float64, n)
	next := make([]float64, n)
	for i := range scores {
		scores[i] = 1 / N
	}

	res := &PageRankResult{}
	for iter := 0; iter < o.MaxIterations; iter++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		dangling := 0.0
		for i := range next {
			next[i] = 0
			if len(x.adj[i]) == 0 {
				dangling += scores[i]
			}
		}
		for u, nbrs := range x.adj {
			if len(nbrs) == 0 {
				continue
			}
			share := o.Damping * scores[u] / float64(len(nbrs))
			for _, v := range nbrs {
				next[v] += share
			}
		}
		base := o.Damping*dangling/N + (1-o.Damping)/N

		diff := 0.0
		for i := range next {
			next[i] += base
			diff += math.Abs(next[i] - scores[i])
		}
		scores, next = next, scores
		res.Iterations = iter + 1

		if diff < N*o.Tolerance {
			res.Converged = true
			break
		}
	}

	o.Logger.Debug("pagerank completed",
		"iterations", res.Iterations,
		"converged", res.Converged,
		"node_count", n,
	)
	res.Scores = x.byID(scores)

	return res, nil
}

// centralities computes all four measures concurrently.
func centralities(ctx context.Context, g *core.Graph, o Options) (*Centrality, *PageRankResult, error) {
	c := &Centrality{}
	var pr *PageRankResult

	eg, gctx := errgroup.WithContext(ctx)
	eg.Go(func() (err error) {
		c.Degree, err = DegreeCentrality(g)
		return err
	})
	eg.Go(func() (err error) {
		c.Closeness, err = ClosenessCentrality(gctx, g)
		return err
	})
	eg.Go(func() (err error) {
		c.Betweenness, err = BetweennessCentrality(gctx, g)
		return err
	})
	eg.Go(func() (err error) {
		pr, err = PageRank(gctx, g, func(dst *Options) { *dst = o })
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}
	c.PageRank = pr.Scores

	return c, pr, nil
}

// AddCentrality computes the four centralities and stores them as vertex
// metadata. The graph must not be mutated concurrently by other callers.
func AddCentrality(ctx context.Context, g *core.Graph, opts ...Option) (*Centrality, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	c, _, err := centralities(ctx, g, o)
	if err != nil {
		return nil, err
	}
	for key, scores := range map[string]map[string]float64{
		AttrDegree:      c.Degree,
		AttrCloseness:   c.Closeness,
		AttrBetweenness: c.Betweenness,
		AttrPageRank:    c.PageRank,
	} {
		for id, v := range scores {
			if err := g.SetVertexAttr(id, key, v); err != nil {
				return nil, err
			}
		}
	}

	return c, nil
}
