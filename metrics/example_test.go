// SPDX-License-Identifier: MIT

package metrics_test

import (
	"context"
	"fmt"

	"github.com/brainarterynetwork/bava/core"
	"github.com/brainarterynetwork/bava/metrics"
)

// ExampleCompute summarises a small Y-shaped bifurcation.
func ExampleCompute() {
	g := core.NewGraph()
	g.AddEdge("trunk", "fork")
	g.AddEdge("fork", "left")
	g.AddEdge("fork", "right")

	s, _ := metrics.Compute(context.Background(), g)
	fmt.Println(s.Nodes, s.Edges, s.Connected, *s.Diameter, *s.Radius)
	fmt.Printf("%.2f\n", *s.Assortativity)
	// Output:
	// 4 3 true 2 1
	// -1.00
}
