// SPDX-License-Identifier: MIT

// Package dijkstra computes single-source shortest paths over a core.Graph
// whose edge weights are supplied by a WeightFunc, typically the Euclidean
// length of a vessel step.
//
// Distances are float64. Unreachable vertices keep +Inf and an empty
// predecessor. Weights must be non-negative; a negative weight aborts the
// run with ErrNegativeWeight.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with a lazy decrease-key binary heap.
//   - Space: O(V + E).
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/brainarterynetwork/bava/core"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrEmptySource indicates that no source vertex was given.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source or destination is absent.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates that the weight function returned a
	// negative or NaN value.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates a negative or NaN MaxDistance.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrNoPath indicates that the destination is unreachable.
	ErrNoPath = errors.New("dijkstra: no path to destination")
)

// WeightFunc returns the traversal cost of e.
type WeightFunc func(e *core.Edge) (float64, error)

// UnitWeight weighs every edge 1, turning Dijkstra into hop distance.
func UnitWeight(*core.Edge) (float64, error) { return 1, nil }

// Options configures Dijkstra.
//
// Source      – starting vertex ID (must be non-empty and present).
// Weight      – edge cost; defaults to UnitWeight.
// ReturnPath  – if true, the predecessor map is returned.
// MaxDistance – vertices farther than this are not settled; default +Inf.
type Options struct {
	Source      string
	Weight      WeightFunc
	ReturnPath  bool
	MaxDistance float64

	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID.
func Source(id string) Option {
	return func(o *Options) { o.Source = id }
}

// WithWeight sets the edge cost function. nil keeps UnitWeight.
func WithWeight(fn WeightFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Weight = fn
		}
	}
}

// WithReturnPath enables the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithMaxDistance caps exploration. Negative or NaN values are recorded as
// ErrBadMaxDistance and surface from Dijkstra.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if !(max >= 0) {
			o.err = fmt.Errorf("%w: %v", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns unit weights, no predecessor map and no distance
// cap for the given source.
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		Weight:      UnitWeight,
		MaxDistance: math.Inf(1),
	}
}
