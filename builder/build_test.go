// SPDX-License-Identifier: MIT

package builder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brainarterynetwork/bava/builder"
	"github.com/brainarterynetwork/bava/core"
	"github.com/brainarterynetwork/bava/swc"
	"github.com/brainarterynetwork/bava/vessel"
)

type pt struct {
	id      int64
	typ     int
	x, y, z float64
}

// path builds a DownsampledPath from already-retained points.
func path(pts ...pt) swc.DownsampledPath {
	d := swc.DownsampledPath{}
	for _, p := range pts {
		d.Points = append(d.Points, swc.Point{ID: p.id, Type: p.typ, Position: [3]float64{p.x, p.y, p.z}, Radius: float64(p.id) / 10})
	}
	if len(pts) > 0 {
		d.StartType, d.EndType = pts[0].typ, pts[len(pts)-1].typ
	}

	return d
}

func TestBuild_Empty(t *testing.T) {
	g, err := builder.Build(nil)
	require.NoError(t, err)
	assert.Zero(t, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
}

func TestBuild_SinglePoint(t *testing.T) {
	g, err := builder.Build([]swc.DownsampledPath{path(pt{1, 3, 0, 0, 0})})
	require.NoError(t, err)
	assert.Equal(t, 1, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
}

// TestBuild_ThreePointScenario reads a three-point path at threshold 10:
// two nodes, one edge of length 10.
func TestBuild_ThreePointScenario(t *testing.T) {
	src := swc.Path{Points: []swc.Point{
		{ID: 1, Type: 3, Position: [3]float64{0, 0, 0}, Radius: 1, Parent: -1},
		{ID: 2, Type: 3, Position: [3]float64{5, 0, 0}, Radius: 1, Parent: 1},
		{ID: 3, Type: 1, Position: [3]float64{10, 0, 0}, Radius: 1, Parent: 2},
	}}
	g, err := builder.Build([]swc.DownsampledPath{swc.Downsample(src, 10)})
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "3"}, g.Vertices())
	require.Equal(t, 1, g.EdgeCount())

	a, err := builder.Position(g, "1")
	require.NoError(t, err)
	b, err := builder.Position(g, "3")
	require.NoError(t, err)
	assert.InDelta(t, 10.0, swc.Distance(a, b), 1e-12)

	l, err := builder.EdgeVesselType(g, "1", "3")
	require.NoError(t, err)
	assert.Equal(t, vessel.ICAL, l)
}

// TestBuild_SharedEndpoint joins an ICA_L path and an M1_L path at one
// position: a single bifurcation node, each edge keeps its own label.
func TestBuild_SharedEndpoint(t *testing.T) {
	paths := []swc.DownsampledPath{
		path(pt{1, 3, 0, 0, 0}, pt{2, 1, 10, 0, 0}),   // (3,1) -> ICA_L
		path(pt{10, 3, 10, 0, 0}, pt{11, 7, 20, 0, 0}), // (3,7) -> M1_L
	}
	g, err := builder.Build(paths)
	require.NoError(t, err)

	assert.Equal(t, 3, g.VertexCount())
	assert.False(t, g.HasVertex("10"), "merged into the first node at that position")

	types, err := builder.VesselTypes(g, "2")
	require.NoError(t, err)
	assert.Equal(t, []vessel.Label{vessel.ICAL, vessel.M1L}, types)

	bif, err := builder.IsBifurcation(g, "2")
	require.NoError(t, err)
	assert.True(t, bif)

	l, err := builder.EdgeVesselType(g, "1", "2")
	require.NoError(t, err)
	assert.Equal(t, vessel.ICAL, l)
	l, err = builder.EdgeVesselType(g, "2", "11")
	require.NoError(t, err)
	assert.Equal(t, vessel.M1L, l)

	r, err := builder.Radius(g, "2")
	require.NoError(t, err)
	assert.InDelta(t, 0.2, r, 1e-12, "radius of the first point seen")
}

// TestBuild_BifurcationCount checks that the number of multi-label nodes
// equals the number of positions shared by paths of distinct labels.
func TestBuild_BifurcationCount(t *testing.T) {
	paths := []swc.DownsampledPath{
		path(pt{1, 15, 0, 0, 0}, pt{2, 15, 0, 5, 0}, pt{3, 17, 0, 10, 0}),     // VA_L
		path(pt{4, 16, 5, 0, 0}, pt{5, 17, 0, 10, 0}),                         // VA_R, shares 3
		path(pt{6, 17, 0, 10, 0}, pt{7, 17, 0, 15, 0}, pt{8, 18, 0, 20, 0}),   // BA, shares 3
		path(pt{9, 18, 0, 20, 0}, pt{12, 18, 5, 25, 0}, pt{13, 20, 9, 30, 0}), // P1_R, shares 8
		path(pt{14, 23, 50, 50, 50}, pt{15, 23, 60, 50, 50}),                  // A2_L, isolated
	}
	g, err := builder.Build(paths)
	require.NoError(t, err)

	bifs := 0
	for _, id := range g.Vertices() {
		b, err := builder.IsBifurcation(g, id)
		require.NoError(t, err)
		if b {
			bifs++
		}
	}
	assert.Equal(t, 2, bifs)

	types, err := builder.VesselTypes(g, "3")
	require.NoError(t, err)
	assert.Equal(t, []vessel.Label{vessel.VAL, vessel.VAR, vessel.BA}, types)

	// 2-3 touches the bifurcation at 3, so it takes 2's first label.
	l, err := builder.EdgeVesselType(g, "2", "3")
	require.NoError(t, err)
	assert.Equal(t, vessel.VAL, l)
	// 7-8 touches the bifurcation at 8; 7 carries BA.
	l, err = builder.EdgeVesselType(g, "7", "8")
	require.NoError(t, err)
	assert.Equal(t, vessel.BA, l)
}

// TestBuild_Idempotent rebuilds the same input and compares every attribute.
func TestBuild_Idempotent(t *testing.T) {
	paths := []swc.DownsampledPath{
		path(pt{1, 3, 0, 0, 0}, pt{2, 3, 4, 0, 0}, pt{3, 1, 8, 0, 0}),
		path(pt{4, 3, 8, 0, 0}, pt{5, 5, 8, 4, 0}),
		path(pt{6, 5, 8, 4, 0}, pt{7, 6, 8, 8, 0}),
	}
	g1, err := builder.Build(paths)
	require.NoError(t, err)
	g2, err := builder.Build(paths)
	require.NoError(t, err)

	require.Equal(t, g1.Vertices(), g2.Vertices())
	for _, id := range g1.Vertices() {
		v1, err := g1.Vertex(id)
		require.NoError(t, err)
		v2, err := g2.Vertex(id)
		require.NoError(t, err)
		assert.Equal(t, v1.Metadata, v2.Metadata, id)
	}
	e1, e2 := g1.Edges(), g2.Edges()
	require.Len(t, e2, len(e1))
	for i := range e1 {
		assert.Equal(t, [2]string{e1[i].From, e1[i].To}, [2]string{e2[i].From, e2[i].To})
		assert.Equal(t, e1[i].Metadata, e2[i].Metadata)
	}
}

func TestBuild_CollapsedStepAndUpsert(t *testing.T) {
	paths := []swc.DownsampledPath{
		// consecutive points at the same position give no self edge
		path(pt{1, 3, 0, 0, 0}, pt{2, 3, 0, 0, 0}, pt{3, 1, 1, 0, 0}),
		// an unknown path walking the same pair upserts the existing edge
		path(pt{4, 0, 1, 0, 0}, pt{5, 0, 0, 0, 0}),
	}
	g, err := builder.Build(paths)
	require.NoError(t, err)
	assert.Equal(t, 2, g.VertexCount())
	require.Equal(t, 1, g.EdgeCount())

	// both nodes are bifurcations (ICA_L + Unknown), so the rule picks the
	// other end's first label, ICA_L
	l, err := builder.EdgeVesselType(g, "1", "3")
	require.NoError(t, err)
	assert.Equal(t, vessel.ICAL, l)
}

func TestBuild_DuplicateID(t *testing.T) {
	_, err := builder.Build([]swc.DownsampledPath{
		path(pt{1, 3, 0, 0, 0}, pt{2, 1, 1, 0, 0}),
		path(pt{1, 3, 9, 9, 9}),
	})
	require.ErrorIs(t, err, builder.ErrDuplicateNodeID)
}

// TestBuild_UnmatchedPositionsKeepOwnEdges builds paths whose points never
// match a position key (NaN coordinates); each edge still joins the nodes
// created for its own path.
func TestBuild_UnmatchedPositionsKeepOwnEdges(t *testing.T) {
	nan := math.NaN()
	g, err := builder.Build([]swc.DownsampledPath{
		path(pt{1, 3, 0, 0, 0}, pt{2, 3, nan, 0, 0}),
		path(pt{3, 3, nan, 0, 0}, pt{4, 3, 60, 0, 0}),
	})
	require.NoError(t, err)

	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, g.HasEdge("1", "2"))
	assert.True(t, g.HasEdge("3", "4"))
	assert.False(t, g.HasEdge("1", "4"))
}

func TestAccessors_Errors(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("bare"))
	require.NoError(t, g.SetVertexAttr("bare", builder.AttrRadius, "wide"))

	_, err := builder.Position(g, "missing")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = builder.Position(g, "bare")
	require.ErrorIs(t, err, builder.ErrAttrMissing)
	_, err = builder.Radius(g, "bare")
	require.ErrorIs(t, err, builder.ErrAttrMissing)
	_, err = builder.EdgeVesselType(g, "bare", "other")
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
}
