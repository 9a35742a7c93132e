// SPDX-License-Identifier: MIT

package plot_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brainarterynetwork/bava/builder"
	"github.com/brainarterynetwork/bava/core"
	"github.com/brainarterynetwork/bava/plot"
	"github.com/brainarterynetwork/bava/swc"
	"github.com/brainarterynetwork/bava/vessel"
)

// junction is an ICA_L path meeting an M1_L path at (10,0,0).
func junction(t *testing.T) *core.Graph {
	t.Helper()
	mk := func(id int64, typ int, x float64) swc.Point {
		return swc.Point{ID: id, Type: typ, Position: [3]float64{x, 0, 0}, Radius: 1}
	}
	g, err := builder.Build([]swc.DownsampledPath{
		{Points: []swc.Point{mk(1, 3, 0), mk(2, 1, 10)}, StartType: 3, EndType: 1},
		{Points: []swc.Point{mk(10, 3, 10), mk(11, 7, 20)}, StartType: 3, EndType: 7},
	})
	require.NoError(t, err)

	return g
}

func TestProject_Junction(t *testing.T) {
	s, err := plot.Project(junction(t))
	require.NoError(t, err)

	assert.Equal(t, plot.DefaultTitle, s.Title)
	assert.Equal(t, plot.DefaultLegendTitle, s.LegendTitle)

	require.Len(t, s.Edges, 2)
	assert.Equal(t, vessel.ICAL, s.Edges[0].Label)
	assert.Equal(t, "ICA_L", s.Edges[0].HoverText)
	assert.Equal(t, "rgb(127, 0, 255)", s.Edges[0].Color)
	assert.Equal(t, [2]float64{0, 10}, s.Edges[0].X)
	assert.Equal(t, plot.DefaultEdgeWidth, s.Edges[0].Width)
	assert.Equal(t, "M1_L", s.Edges[1].HoverText)
	assert.Equal(t, "rgb(255, 0, 0)", s.Edges[1].Color)

	assert.Equal(t, []plot.LegendEntry{
		{Name: "ICA_L", Color: "rgb(127, 0, 255)", Width: plot.DefaultLegendWidth},
		{Name: "M1_L", Color: "rgb(255, 0, 0)", Width: plot.DefaultLegendWidth},
	}, s.Legend)

	assert.Equal(t, []string{"1", "11", "2"}, s.Nodes.IDs)
	assert.Equal(t, []string{"blue", "blue", "red"}, s.Nodes.Colors)
	assert.Equal(t, []string{"ICA_L", "M1_L", "ICA_L, M1_L"}, s.Nodes.HoverText)
	assert.Equal(t, []float64{0, 20, 10}, s.Nodes.X)
	assert.Equal(t, plot.DefaultNodeSize, s.Nodes.Size)
	assert.Equal(t, plot.DefaultNodeOpacity, s.Nodes.Opacity)
}

func TestProject_Options(t *testing.T) {
	g := junction(t)
	s, err := plot.Project(g, plot.WithTitle("case 7"), plot.WithEdgeWidth(2), plot.WithNodeSize(1), plot.WithNodeOpacity(1))
	require.NoError(t, err)
	assert.Equal(t, "case 7", s.Title)
	assert.Equal(t, 2.0, s.Edges[1].Width)
	assert.Equal(t, 1.0, s.Nodes.Size)
	assert.Equal(t, 1.0, s.Nodes.Opacity)

	for _, opt := range []plot.Option{plot.WithEdgeWidth(0), plot.WithNodeSize(-1), plot.WithNodeOpacity(1.5)} {
		_, err = plot.Project(g, opt)
		assert.ErrorIs(t, err, plot.ErrOptionViolation)
	}
}

func TestProject_Errors(t *testing.T) {
	_, err := plot.Project(nil)
	require.ErrorIs(t, err, plot.ErrGraphNil)

	g := core.NewGraph()
	_, err = g.AddEdge("a", "b")
	require.NoError(t, err)
	_, err = plot.Project(g)
	require.ErrorIs(t, err, builder.ErrAttrMissing)
}

func TestProject_Empty(t *testing.T) {
	s, err := plot.Project(core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, s.Edges)
	assert.Empty(t, s.Legend)
	assert.Empty(t, s.Nodes.IDs)
}

func TestScene_WriteJSON(t *testing.T) {
	s, err := plot.Project(junction(t))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, s.WriteJSON(&buf))

	var back plot.Scene
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, s.Title, back.Title)
	assert.Len(t, back.Edges, 2)
	assert.Contains(t, buf.String(), `"legend_title": "Vessel Types"`)
}
