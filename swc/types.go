// SPDX-License-Identifier: MIT

package swc

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/brainarterynetwork/bava/vessel"
)

// Sentinel errors.
var (
	// ErrMissingInput is returned when the tracing file does not exist.
	ErrMissingInput = errors.New("swc: input file not found")

	// ErrMalformedRow is returned when a row is not seven numeric fields.
	ErrMalformedRow = errors.New("swc: malformed row")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("swc: invalid option supplied")
)

const (
	// RootParent is the parent value that marks a root row.
	RootParent = -1

	// DefaultDistanceThreshold is the default down-sampling spacing.
	DefaultDistanceThreshold = 10.0

	// fieldsPerRow is the fixed SWC column count.
	fieldsPerRow = 7
)

// Point is one SWC record.
type Point struct {
	ID       int64
	Type     int
	Position [3]float64
	Radius   float64
	Parent   int64
}

// IsRoot reports whether p opens a new path.
func (p Point) IsRoot() bool { return p.Parent == RootParent }

// Path is a contiguous run of points between two root markers, in file order.
type Path struct {
	Points []Point
}

// DownsampledPath is the subset of a Path retained by Downsample.
// StartType and EndType are the type codes of its first and last retained
// points and select the path's vessel segment.
type DownsampledPath struct {
	Points    []Point
	StartType int
	EndType   int
}

// Segment resolves the path's vessel label from its end type codes.
func (d DownsampledPath) Segment() vessel.Label {
	return vessel.ResolveSegment(d.StartType, d.EndType)
}

// Trace is everything read from one tracing file.
type Trace struct {
	// Source is the path the trace was read from.
	Source string
	// Bytes is the size of the file on disk.
	Bytes int64
	// Points holds every parsed row in file order.
	Points []Point
	// Paths holds the split paths, after the optional path cap.
	Paths []Path
	// Downsampled holds one entry per element of Paths.
	Downsampled []DownsampledPath
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b [3]float64) float64 {
	dx, dy, dz := a[0]-b[0], a[1]-b[1], a[2]-b[2]

	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Option configures ReadFile and Load.
type Option func(*Options)

// Options holds the parser settings.
type Options struct {
	// DistanceThreshold is the down-sampling spacing (> 0).
	DistanceThreshold float64
	// IncludeTrailing keeps the path after the last root marker.
	IncludeTrailing bool
	// MaxPaths keeps only the first MaxPaths paths; 0 keeps all.
	MaxPaths int
	// Logger receives debug and warning records.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns threshold 10, trailing path dropped, no path cap
// and slog.Default().
func DefaultOptions() Options {
	return Options{
		DistanceThreshold: DefaultDistanceThreshold,
		Logger:            slog.Default(),
	}
}

// WithDistanceThreshold sets the down-sampling spacing. Non-positive or
// non-finite values are an ErrOptionViolation.
func WithDistanceThreshold(d float64) Option {
	return func(o *Options) {
		if !(d > 0) || math.IsInf(d, 0) {
			o.err = fmt.Errorf("%w: distance threshold must be positive and finite (%v)", ErrOptionViolation, d)
			return
		}
		o.DistanceThreshold = d
	}
}

// WithTrailingPath controls whether the rows after the last root marker
// form a path.
func WithTrailingPath(include bool) Option {
	return func(o *Options) { o.IncludeTrailing = include }
}

// WithMaxPaths caps the number of paths handed to the graph builder.
// 0 disables the cap; negative values are an ErrOptionViolation.
func WithMaxPaths(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: max paths cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPaths = n
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
