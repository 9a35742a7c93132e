// SPDX-License-Identifier: MIT

package plot

import (
	"encoding/json"
	"io"
	"sort"
	"strings"

	"github.com/brainarterynetwork/bava/builder"
	"github.com/brainarterynetwork/bava/core"
	"github.com/brainarterynetwork/bava/vessel"
)

// Project builds the scene for g, which must carry the attributes written
// by builder.Build.
func Project(g *core.Graph, opts ...Option) (*Scene, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	edges := g.Edges()
	labels := make([]vessel.Label, len(edges))
	seen := make(map[vessel.Label]bool)
	var distinct []vessel.Label
	for i, e := range edges {
		l, err := builder.EdgeLabel(e)
		if err != nil {
			return nil, err
		}
		labels[i] = l
		if !seen[l] {
			seen[l] = true
			distinct = append(distinct, l)
		}
	}
	sort.Slice(distinct, func(i, j int) bool { return distinct[i] < distinct[j] })
	colors := make(map[vessel.Label]string, len(distinct))
	for i, c := range palette(len(distinct)) {
		colors[distinct[i]] = c
	}

	s := &Scene{
		Title:       o.Title,
		LegendTitle: DefaultLegendTitle,
		Edges:       make([]EdgeTrace, 0, len(edges)),
		Legend:      make([]LegendEntry, 0, len(distinct)),
	}

	inLegend := make(map[vessel.Label]bool, len(distinct))
	for i, e := range edges {
		a, err := builder.Position(g, e.From)
		if err != nil {
			return nil, err
		}
		b, err := builder.Position(g, e.To)
		if err != nil {
			return nil, err
		}
		l := labels[i]
		s.Edges = append(s.Edges, EdgeTrace{
			From:      e.From,
			To:        e.To,
			X:         [2]float64{a[0], b[0]},
			Y:         [2]float64{a[1], b[1]},
			Z:         [2]float64{a[2], b[2]},
			Label:     l,
			HoverText: l.String(),
			Color:     colors[l],
			Width:     o.EdgeWidth,
		})
		if !inLegend[l] {
			inLegend[l] = true
			s.Legend = append(s.Legend, LegendEntry{Name: l.String(), Color: colors[l], Width: DefaultLegendWidth})
		}
	}

	ids := g.Vertices()
	s.Nodes = NodeTrace{
		IDs:       ids,
		X:         make([]float64, len(ids)),
		Y:         make([]float64, len(ids)),
		Z:         make([]float64, len(ids)),
		Colors:    make([]string, len(ids)),
		HoverText: make([]string, len(ids)),
		Size:      o.NodeSize,
		Opacity:   o.NodeOpacity,
	}
	for i, id := range ids {
		p, err := builder.Position(g, id)
		if err != nil {
			return nil, err
		}
		types, err := builder.VesselTypes(g, id)
		if err != nil {
			return nil, err
		}
		s.Nodes.X[i], s.Nodes.Y[i], s.Nodes.Z[i] = p[0], p[1], p[2]
		s.Nodes.Colors[i] = SegmentColor
		if len(types) > 1 {
			s.Nodes.Colors[i] = BifurcationColor
		}
		names := make([]string, len(types))
		for j, t := range types {
			names[j] = t.String()
		}
		s.Nodes.HoverText[i] = strings.Join(names, ", ")
	}

	return s, nil
}

// WriteJSON writes the scene as indented JSON.
func (s *Scene) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(s)
}
