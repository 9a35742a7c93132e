// SPDX-License-Identifier: MIT

package metrics

import (
	"errors"
	"fmt"
	"log/slog"
)

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("metrics: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("metrics: invalid option supplied")
)

// Vertex metadata keys written by AddCentrality.
const (
	AttrDegree      = "degree"
	AttrCloseness   = "closeness"
	AttrBetweenness = "betweenness"
	AttrPageRank    = "pagerank"
)

// PageRank defaults.
const (
	DefaultDamping       = 0.85
	DefaultMaxIterations = 100
	DefaultTolerance     = 1e-6
)

// Option configures metric computation.
type Option func(*Options)

// Options holds PageRank parameters and the logger.
type Options struct {
	Damping       float64
	MaxIterations int
	Tolerance     float64
	Logger        *slog.Logger

	err error
}

// DefaultOptions returns damping 0.85, 100 iterations, tolerance 1e-6 and
// slog.Default().
func DefaultOptions() Options {
	return Options{
		Damping:       DefaultDamping,
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
		Logger:        slog.Default(),
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// WithDamping sets the PageRank damping factor, which must lie in [0, 1].
func WithDamping(d float64) Option {
	return func(o *Options) {
		if !(d >= 0 && d <= 1) {
			o.err = fmt.Errorf("%w: damping must be in [0,1] (%v)", ErrOptionViolation, d)
			return
		}
		o.Damping = d
	}
}

// WithMaxIterations bounds PageRank power iteration (> 0).
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: max iterations must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithTolerance sets the per-node PageRank convergence tolerance (> 0).
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if !(tol > 0) {
			o.err = fmt.Errorf("%w: tolerance must be positive (%v)", ErrOptionViolation, tol)
			return
		}
		o.Tolerance = tol
	}
}

// WithLogger sets the logger. nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Centrality holds per-vertex centralities keyed by vertex ID.
type Centrality struct {
	Degree      map[string]float64 `json:"degree"`
	Closeness   map[string]float64 `json:"closeness"`
	Betweenness map[string]float64 `json:"betweenness"`
	PageRank    map[string]float64 `json:"pagerank"`
}

// PageRankResult is the outcome of PageRank power iteration.
type PageRankResult struct {
	Scores     map[string]float64
	Iterations int
	Converged  bool
}

// Summary holds whole-graph descriptors. Pointer fields are nil when the
// quantity is undefined for the graph.
type Summary struct {
	Nodes             int      `json:"nodes"`
	Edges             int      `json:"edges"`
	MeanDegree        float64  `json:"mean_degree"`
	AverageClustering float64  `json:"average_clustering"`
	Components        int      `json:"components"`
	LargestComponent  int      `json:"largest_component"`
	Connected         bool     `json:"connected"`
	Diameter          *int     `json:"diameter"`
	Radius            *int     `json:"radius"`
	Assortativity     *float64 `json:"assortativity"`

	MeanDegreeCentrality float64 `json:"mean_degree_centrality"`
	MeanCloseness        float64 `json:"mean_closeness"`
	MeanBetweenness      float64 `json:"mean_betweenness"`
	MeanPageRank         float64 `json:"mean_pagerank"`

	Warnings []string `json:"warnings,omitempty"`
}
