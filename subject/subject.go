// SPDX-License-Identifier: MIT

package subject

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/brainarterynetwork/bava/builder"
	"github.com/brainarterynetwork/bava/core"
	"github.com/brainarterynetwork/bava/features"
	"github.com/brainarterynetwork/bava/metrics"
	"github.com/brainarterynetwork/bava/plot"
	"github.com/brainarterynetwork/bava/swc"
)

// Subject is one tracing with its graph and per-vessel features.
type Subject struct {
	ID       string
	Source   string
	Trace    *swc.Trace
	Graph    *core.Graph
	Segments features.Table
}

// CaseID derives the identifier "<dataset>: <case>" for a tracing path,
// where dataset is the parent directory name and case is the
// second-to-last underscore-separated field of the file name. File names
// without an underscore use the name without its extensions.
func CaseID(path string) string {
	dataset := filepath.Base(filepath.Dir(path))
	name := filepath.Base(path)
	parts := strings.Split(name, "_")
	if len(parts) >= 2 {
		return dataset + ": " + parts[len(parts)-2]
	}
	if i := strings.IndexByte(name, '.'); i > 0 {
		name = name[:i]
	}

	return dataset + ": " + name
}

// New is Load with a background context.
func New(path string, opts ...Option) (*Subject, error) {
	return Load(context.Background(), path, opts...)
}

// Load reads the tracing at path, builds its graph and computes the
// per-vessel features. A missing file yields a Subject with an empty graph
// together with swc.ErrMissingInput. ctx is checked between stages.
func Load(ctx context.Context, path string, opts ...Option) (*Subject, error) {
	o := Options{Logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	id := o.ID
	if id == "" {
		id = CaseID(path)
	}

	parse := append([]swc.Option{swc.WithLogger(o.Logger)}, o.Parse...)
	tr, err := swc.ReadFile(path, parse...)
	if err != nil && !errors.Is(err, swc.ErrMissingInput) {
		return nil, fmt.Errorf("subject %s: %w", id, err)
	}
	missing := err
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("subject %s: %w", id, err)
	}

	g, err := builder.Build(tr.Downsampled)
	if err != nil {
		return nil, fmt.Errorf("subject %s: %w", id, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("subject %s: %w", id, err)
	}

	segments, err := features.SegmentFeatures(g)
	if err != nil {
		return nil, fmt.Errorf("subject %s: %w", id, err)
	}

	s := &Subject{ID: id, Source: path, Trace: tr, Graph: g, Segments: segments}
	if missing != nil {
		return s, missing
	}
	o.Logger.Debug("subject built",
		"id", id,
		"nodes", g.VertexCount(),
		"edges", g.EdgeCount(),
		"vessels", len(segments),
	)

	return s, nil
}

// Summary returns the hierarchical feature table.
func (s *Subject) Summary() features.Table {
	return features.Summarize(s.Segments)
}

// MorphologicalFeatures returns the hierarchical table flattened to
// "<key>_length" and "<key>_branch_number".
func (s *Subject) MorphologicalFeatures() map[string]float64 {
	return s.Summary().Flatten()
}

// GraphicalFeatures computes the graph metrics summary.
func (s *Subject) GraphicalFeatures(ctx context.Context, opts ...metrics.Option) (*metrics.Summary, error) {
	return metrics.Compute(ctx, s.Graph, opts...)
}

// AddCentralityMeasures attaches centrality attributes to every node.
func (s *Subject) AddCentralityMeasures(ctx context.Context, opts ...metrics.Option) (*metrics.Centrality, error) {
	return metrics.AddCentrality(ctx, s.Graph, opts...)
}

// Plot projects the graph onto a 3D scene.
func (s *Subject) Plot(opts ...plot.Option) (*plot.Scene, error) {
	return plot.Project(s.Graph, opts...)
}
