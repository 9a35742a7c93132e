// SPDX-License-Identifier: MIT

package swc

// SplitPaths cuts points at every root marker. Each path runs from one
// root up to, but excluding, the next. Rows before the first root are
// ignored; rows from the last root onward form a path only when
// includeTrailing is set.
func SplitPaths(points []Point, includeTrailing bool) []Path {
	var roots []int
	for i, p := range points {
		if p.IsRoot() {
			roots = append(roots, i)
		}
	}
	if len(roots) == 0 {
		return nil
	}

	paths := make([]Path, 0, len(roots))
	for i := 0; i+1 < len(roots); i++ {
		paths = append(paths, Path{Points: points[roots[i]:roots[i+1]]})
	}
	if includeTrailing {
		paths = append(paths, Path{Points: points[roots[len(roots)-1]:]})
	}

	return paths
}

// Downsample keeps the first point, every interior point at which the
// distance accumulated since the last kept point reaches threshold, and the
// last point unless its position equals the last kept one. The accumulator
// resets to zero after each keep.
//
// An empty path yields an empty DownsampledPath; a single point yields a
// one-point path.
func Downsample(p Path, threshold float64) DownsampledPath {
	n := len(p.Points)
	if n == 0 {
		return DownsampledPath{}
	}

	kept := make([]Point, 1, n)
	kept[0] = p.Points[0]
	cumulative := 0.0
	for i := 1; i < n-1; i++ {
		cumulative += Distance(p.Points[i-1].Position, p.Points[i].Position)
		if cumulative >= threshold {
			kept = append(kept, p.Points[i])
			cumulative = 0
		}
	}
	if last := p.Points[n-1]; kept[len(kept)-1].Position != last.Position {
		kept = append(kept, last)
	}

	return DownsampledPath{
		Points:    kept,
		StartType: kept[0].Type,
		EndType:   kept[len(kept)-1].Type,
	}
}
