// SPDX-License-Identifier: MIT

package dfs_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brainarterynetwork/bava/core"
	"github.com/brainarterynetwork/bava/dfs"
)

// buildChain creates an undirected chain N0-N1-...-N(n-1).
func buildChain(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n-1; i++ {
		_, err := g.AddEdge("N"+strconv.Itoa(i), "N"+strconv.Itoa(i+1))
		require.NoError(t, err)
	}

	return g
}

func TestDFS_NilGraph(t *testing.T) {
	res, err := dfs.DFS(nil, "A")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.Components(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_StartNotFound(t *testing.T) {
	res, err := dfs.DFS(core.NewGraph(), "X")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

// TestDFS_Diamond checks post-order, depths and parents on
// A-B, A-C, B-D, C-D, D-E, D-F.
func TestDFS_Diamond(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}, {"D", "E"}, {"D", "F"}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	var pre []string
	res, err := dfs.DFS(g, "A", dfs.WithOnVisit(func(id string) error {
		pre = append(pre, id)
		return nil
	}))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "D", "C", "E", "F"}, pre)
	assert.Equal(t, []string{"C", "E", "F", "D", "B", "A"}, res.Order)
	assert.Equal(t, 3, res.Depth["C"])
	assert.Equal(t, "D", res.Parent["C"])
	assert.Equal(t, []string{"A"}, res.Roots)
}

// TestDFS_DeepChain walks a chain far deeper than a recursive walker would
// comfortably handle.
func TestDFS_DeepChain(t *testing.T) {
	const n = 50000
	g := buildChain(t, n)

	res, err := dfs.DFS(g, "N0")
	require.NoError(t, err)
	require.Len(t, res.Order, n)
	assert.Equal(t, "N"+strconv.Itoa(n-1), res.Order[0])
	assert.Equal(t, n-1, res.Depth["N"+strconv.Itoa(n-1)])
}

func TestDFS_MaxDepthAndFilter(t *testing.T) {
	g := buildChain(t, 5)

	res, err := dfs.DFS(g, "N0", dfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Len(t, res.Visited, 3)

	res, err = dfs.DFS(g, "N0", dfs.WithFilterNeighbor(func(_, nbr string) bool { return nbr != "N2" }))
	require.NoError(t, err)
	assert.Equal(t, []string{"N1", "N0"}, res.Order)
	assert.Equal(t, 1, res.SkippedNeighbors)
}

func TestDFS_HookErrors(t *testing.T) {
	g := buildChain(t, 4)
	boom := errors.New("boom")

	_, err := dfs.DFS(g, "N0", dfs.WithOnVisit(func(id string) error {
		if id == "N2" {
			return boom
		}
		return nil
	}))
	require.ErrorIs(t, err, boom)

	_, err = dfs.DFS(g, "N0", dfs.WithOnExit(func(string) error { return boom }))
	require.ErrorIs(t, err, boom)
}

func TestDFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dfs.DFS(buildChain(t, 3), "N0", dfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestDFS_FullTraversal(t *testing.T) {
	g := buildChain(t, 3)
	_, err := g.AddEdge("X", "Y")
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("Z"))

	res, err := dfs.DFS(g, "", dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []string{"N0", "X", "Z"}, res.Roots)
	assert.Len(t, res.Visited, 6)
}

func TestComponents(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]string{{"c", "a"}, {"a", "b"}, {"y", "x"}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	require.NoError(t, g.AddVertex("m"))

	comps, err := dfs.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b", "c"}, {"m"}, {"x", "y"}}, comps)

	comps, err = dfs.Components(core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, comps)
}
