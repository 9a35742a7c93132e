// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex does not exist.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is discovered.
	OnVisit func(id string) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex
	// have been explored, before it is appended to Order.
	OnExit func(id string) error

	// MaxDepth, if non-negative, limits the walk to the given depth.
	// A depth of 0 visits only the root. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each step curr→nbr.
	// Returning false skips the neighbor and counts it in SkippedNeighbors.
	FilterNeighbor func(curr, nbr string) bool

	// FullTraversal restarts the walk from every unvisited vertex.
	FullTraversal bool
}

// DefaultOptions returns background context, no hooks, no depth limit,
// no filtering and single-source traversal.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for DFS traversal. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *DFSOptions) { o.OnVisit = fn }
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(id string) error) Option {
	return func(o *DFSOptions) { o.OnExit = fn }
}

// WithMaxDepth limits traversal depth to limit.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) { o.MaxDepth = limit }
}

// WithFilterNeighbor installs a neighbor filter.
func WithFilterNeighbor(fn func(curr, nbr string) bool) Option {
	return func(o *DFSOptions) { o.FilterNeighbor = fn }
}

// WithFullTraversal enables forest traversal over every component.
func WithFullTraversal() Option {
	return func(o *DFSOptions) { o.FullTraversal = true }
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []string

	// Depth maps each vertex ID to its depth in its DFS tree.
	Depth map[string]int

	// Parent maps each non-root vertex to the vertex that discovered it.
	Parent map[string]string

	// Visited flags which vertices were reached.
	Visited map[string]bool

	// Roots lists the root of every DFS tree in start order.
	Roots []string

	// SkippedNeighbors counts neighbors rejected by FilterNeighbor.
	SkippedNeighbors int
}
