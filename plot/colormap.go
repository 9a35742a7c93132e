// SPDX-License-Identifier: MIT

package plot

import (
	"fmt"
	"math"
)

// lutSize is the resolution of the sampled colormap.
const lutSize = 256

// rainbow returns the RGB components of the rainbow colormap at x in [0,1],
// quantised to the lookup table the way the reference colormap samples it.
func rainbow(x float64) (r, g, b float64) {
	idx := int(x * lutSize)
	switch {
	case idx < 0:
		idx = 0
	case idx >= lutSize:
		idx = lutSize - 1
	}
	t := float64(idx) / (lutSize - 1)

	return math.Min(math.Abs(2*t-0.5), 1), math.Sin(t * math.Pi), math.Cos(t * math.Pi / 2)
}

// palette returns k colours evenly spaced over the colormap, formatted as
// CSS rgb() strings.
func palette(k int) []string {
	out := make([]string, k)
	for i := range out {
		x := 0.0
		if k > 1 {
			x = float64(i) / float64(k-1)
		}
		r, g, b := rainbow(x)
		out[i] = fmt.Sprintf("rgb(%d, %d, %d)", int(255*r), int(255*g), int(255*b))
	}

	return out
}
