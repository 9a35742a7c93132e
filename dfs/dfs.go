// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"
	"sort"

	"github.com/brainarterynetwork/bava/core"
)

// frame is one entry of the explicit DFS stack: a discovered vertex, its
// sorted neighbors and the index of the next neighbor to try.
type frame struct {
	id    string
	depth int
	nbrs  []string
	next  int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
	stack []frame
}

func newWalker(g *core.Graph, opts []Option) *dfsWalker {
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	n := g.VertexCount()

	return &dfsWalker{
		graph: g,
		opts:  dopts,
		res: &DFSResult{
			Order:   make([]string, 0, n),
			Depth:   make(map[string]int, n),
			Parent:  make(map[string]string, n),
			Visited: make(map[string]bool, n),
		},
	}
}

// DFS performs depth-first search on graph g. With WithFullTraversal it
// covers every component, starting each tree at the smallest unvisited ID;
// otherwise it starts only from startID.
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	w := newWalker(g, opts)

	if !w.opts.FullTraversal {
		if !g.HasVertex(startID) {
			return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
		}
		return w.res, w.walk(startID)
	}
	for _, v := range g.Vertices() {
		if w.res.Visited[v] {
			continue
		}
		if err := w.walk(v); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

// Components returns the connected components of g. Each component is
// sorted ascending and components are ordered by their smallest vertex.
// FullTraversal is implied; hook options still apply.
func Components(g *core.Graph, opts ...Option) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	w := newWalker(g, opts)

	var out [][]string
	for _, v := range g.Vertices() {
		if w.res.Visited[v] {
			continue
		}
		before := len(w.res.Order)
		if err := w.walk(v); err != nil {
			return nil, err
		}
		comp := append([]string(nil), w.res.Order[before:]...)
		sort.Strings(comp)
		out = append(out, comp)
	}

	return out, nil
}

// discover marks id visited, runs OnVisit and pushes its frame.
func (w *dfsWalker) discover(id, parent string, depth int) error {
	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	if parent != "" {
		w.res.Parent[id] = parent
	}
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	var nbrs []string
	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		var err error
		if nbrs, err = w.graph.NeighborIDs(id); err != nil {
			return fmt.Errorf("dfs: NeighborIDs(%q): %w", id, err)
		}
	}
	w.stack = append(w.stack, frame{id: id, depth: depth, nbrs: nbrs})

	return nil
}

// walk runs one DFS tree rooted at root.
func (w *dfsWalker) walk(root string) error {
	w.res.Roots = append(w.res.Roots, root)
	if err := w.discover(root, "", 0); err != nil {
		return err
	}

	for len(w.stack) > 0 {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}

		top := &w.stack[len(w.stack)-1]
		if top.next < len(top.nbrs) {
			nbr := top.nbrs[top.next]
			top.next++
			if nbr == top.id || w.res.Visited[nbr] {
				continue
			}
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(top.id, nbr) {
				w.res.SkippedNeighbors++
				continue
			}
			// discover may grow the stack; top must not be used afterwards.
			if err := w.discover(nbr, top.id, top.depth+1); err != nil {
				return err
			}
			continue
		}

		id := top.id
		w.stack = w.stack[:len(w.stack)-1]
		if w.opts.OnExit != nil {
			if err := w.opts.OnExit(id); err != nil {
				return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
			}
		}
		w.res.Order = append(w.res.Order, id)
	}

	return nil
}
