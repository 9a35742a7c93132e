// SPDX-License-Identifier: MIT

package bfs_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brainarterynetwork/bava/bfs"
	"github.com/brainarterynetwork/bava/core"
)

func chain(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i+1 < n; i++ {
		_, err := g.AddEdge(strconv.Itoa(i), strconv.Itoa(i+1))
		require.NoError(t, err)
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = bfs.BFS(g, "missing")
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	require.NoError(t, g.AddVertex("A"))
	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_Depths covers a four-cycle: both depth-1 vertices precede C.
func TestBFS_Depths(t *testing.T) {
	g := core.NewGraph()
	for _, p := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}} {
		_, err := g.AddEdge(p[0], p[1])
		require.NoError(t, err)
	}

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}, res.Depth)
	assert.Equal(t, 2, res.Eccentricity())

	path, err := res.PathTo("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, path)
}

// TestBFS_Unreachable checks that other components are left untouched.
func TestBFS_Unreachable(t *testing.T) {
	g := chain(t, 3)
	require.NoError(t, g.AddVertex("island"))

	res, err := bfs.BFS(g, "0")
	require.NoError(t, err)
	assert.Len(t, res.Order, 3)
	_, err = res.PathTo("island")
	require.ErrorIs(t, err, bfs.ErrNoPath)
}

// TestBFS_MaxDepthAndFilter combines a depth cap with a pruning filter.
func TestBFS_MaxDepthAndFilter(t *testing.T) {
	g := chain(t, 6)

	res, err := bfs.BFS(g, "0", bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2"}, res.Order)

	res, err = bfs.BFS(g, "0", bfs.WithFilterNeighbor(func(_, nbr string) bool { return nbr != "3" }))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2"}, res.Order)
}

// TestBFS_OnVisitAbort ensures a hook error stops the walk and is wrapped.
func TestBFS_OnVisitAbort(t *testing.T) {
	g := chain(t, 5)
	stop := errors.New("stop")

	res, err := bfs.BFS(g, "0", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "2" {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"0", "1", "2"}, res.Order)
}

// TestBFS_Cancelled verifies early exit on a cancelled context.
func TestBFS_Cancelled(t *testing.T) {
	g := chain(t, 10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.BFS(g, "0", bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
