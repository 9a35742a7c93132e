// SPDX-License-Identifier: MIT

package bfs_test

import (
	"fmt"

	"github.com/brainarterynetwork/bava/bfs"
	"github.com/brainarterynetwork/bava/core"
)

// ExampleBFS finds the fewest-hop route through a small vessel tree.
func ExampleBFS() {
	g := core.NewGraph()
	g.AddEdge("root", "a")
	g.AddEdge("a", "b")
	g.AddEdge("b", "tip")
	g.AddEdge("root", "c")
	g.AddEdge("c", "tip")

	res, _ := bfs.BFS(g, "root")
	path, _ := res.PathTo("tip")
	fmt.Println(path, res.Depth["tip"])
	// Output:
	// [root c tip] 2
}
