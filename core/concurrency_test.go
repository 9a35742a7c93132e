// SPDX-License-Identifier: MIT

package core_test

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brainarterynetwork/bava/core"
)

// TestGraph_ConcurrentBuild hammers AddEdge and attribute writes from many
// goroutines; run with -race to check the locking model.
func TestGraph_ConcurrentBuild(t *testing.T) {
	const workers, perWorker = 8, 200
	g := core.NewGraph()

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				a := strconv.Itoa(w*perWorker + i)
				b := strconv.Itoa(w*perWorker + i + 1)
				_, err := g.AddEdge(a, b)
				assert.NoError(t, err)
				assert.NoError(t, g.SetVertexAttr(a, "worker", w))
				_, _ = g.NeighborIDs(b)
			}
		}(w)
	}
	wg.Wait()

	require.Equal(t, workers*perWorker+1, g.VertexCount())
	require.Equal(t, workers*perWorker, g.EdgeCount())
}
