// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"

	"github.com/brainarterynetwork/bava/builder"
	"github.com/brainarterynetwork/bava/swc"
)

// ExampleBuild joins two traced paths at a shared position.
func ExampleBuild() {
	ica := swc.DownsampledPath{StartType: 3, EndType: 1, Points: []swc.Point{
		{ID: 1, Type: 3, Position: [3]float64{0, 0, 0}},
		{ID: 2, Type: 1, Position: [3]float64{0, 0, 10}},
	}}
	m1 := swc.DownsampledPath{StartType: 3, EndType: 7, Points: []swc.Point{
		{ID: 8, Type: 3, Position: [3]float64{0, 0, 10}},
		{ID: 9, Type: 7, Position: [3]float64{5, 0, 10}},
	}}

	g, _ := builder.Build([]swc.DownsampledPath{ica, m1})
	types, _ := builder.VesselTypes(g, "2")
	edge, _ := builder.EdgeVesselType(g, "2", "9")
	fmt.Println(g.Vertices(), types, edge)
	// Output:
	// [1 2 9] [ICA_L M1_L] M1_L
}
