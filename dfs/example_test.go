// SPDX-License-Identifier: MIT

package dfs_test

import (
	"fmt"

	"github.com/brainarterynetwork/bava/core"
	"github.com/brainarterynetwork/bava/dfs"
)

// ExampleComponents splits a graph holding two disjoint vessel fragments.
func ExampleComponents() {
	g := core.NewGraph()
	g.AddEdge("1", "2")
	g.AddEdge("2", "3")
	g.AddEdge("7", "8")

	comps, _ := dfs.Components(g)
	fmt.Println(len(comps), comps)
	// Output:
	// 2 [[1 2 3] [7 8]]
}
