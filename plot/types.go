// SPDX-License-Identifier: MIT

package plot

import (
	"errors"
	"fmt"

	"github.com/brainarterynetwork/bava/vessel"
)

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("plot: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("plot: invalid option supplied")
)

// Defaults for Options.
const (
	DefaultTitle       = "Advanced 3D Network Graph"
	DefaultLegendTitle = "Vessel Types"
	DefaultEdgeWidth   = 5.0
	DefaultLegendWidth = 4.0
	DefaultNodeSize    = 3.5
	DefaultNodeOpacity = 0.5

	BifurcationColor = "red"
	SegmentColor     = "blue"
)

// Option configures Project.
type Option func(*Options)

// Options holds the visual parameters of a scene.
type Options struct {
	Title       string
	EdgeWidth   float64
	NodeSize    float64
	NodeOpacity float64

	err error
}

// DefaultOptions returns the stock title, edge width 5, node size 3.5 and
// node opacity 0.5.
func DefaultOptions() Options {
	return Options{
		Title:       DefaultTitle,
		EdgeWidth:   DefaultEdgeWidth,
		NodeSize:    DefaultNodeSize,
		NodeOpacity: DefaultNodeOpacity,
	}
}

// WithTitle sets the scene title.
func WithTitle(title string) Option {
	return func(o *Options) { o.Title = title }
}

// WithEdgeWidth sets the edge line width (> 0).
func WithEdgeWidth(w float64) Option {
	return func(o *Options) {
		if !(w > 0) {
			o.err = fmt.Errorf("%w: edge width must be positive (%v)", ErrOptionViolation, w)
			return
		}
		o.EdgeWidth = w
	}
}

// WithNodeSize sets the node marker size (> 0).
func WithNodeSize(s float64) Option {
	return func(o *Options) {
		if !(s > 0) {
			o.err = fmt.Errorf("%w: node size must be positive (%v)", ErrOptionViolation, s)
			return
		}
		o.NodeSize = s
	}
}

// WithNodeOpacity sets the node opacity, in [0, 1].
func WithNodeOpacity(a float64) Option {
	return func(o *Options) {
		if !(a >= 0 && a <= 1) {
			o.err = fmt.Errorf("%w: node opacity must be in [0,1] (%v)", ErrOptionViolation, a)
			return
		}
		o.NodeOpacity = a
	}
}

// EdgeTrace is one edge drawn as a 3D line segment.
type EdgeTrace struct {
	From      string       `json:"from"`
	To        string       `json:"to"`
	X         [2]float64   `json:"x"`
	Y         [2]float64   `json:"y"`
	Z         [2]float64   `json:"z"`
	Label     vessel.Label `json:"label"`
	HoverText string       `json:"hovertext"`
	Color     string       `json:"color"`
	Width     float64      `json:"width"`
}

// LegendEntry is one vessel name shown in the legend.
type LegendEntry struct {
	Name  string  `json:"name"`
	Color string  `json:"color"`
	Width float64 `json:"width"`
}

// NodeTrace holds every node marker as parallel arrays.
type NodeTrace struct {
	IDs       []string  `json:"ids"`
	X         []float64 `json:"x"`
	Y         []float64 `json:"y"`
	Z         []float64 `json:"z"`
	Colors    []string  `json:"colors"`
	HoverText []string  `json:"hovertext"`
	Size      float64   `json:"size"`
	Opacity   float64   `json:"opacity"`
}

// Scene is a complete renderer-neutral figure.
type Scene struct {
	Title       string        `json:"title"`
	LegendTitle string        `json:"legend_title"`
	Edges       []EdgeTrace   `json:"edges"`
	Legend      []LegendEntry `json:"legend"`
	Nodes       NodeTrace     `json:"nodes"`
}
