// SPDX-License-Identifier: MIT

// Package swc reads SWC artery tracings and turns them into down-sampled
// traced paths.
//
// An SWC file is a whitespace-separated numeric table with one point per
// row and seven columns: id, type, x, y, z, radius, parent. Lines starting
// with '#' and blank lines are skipped. A row whose parent equals -1 is a
// root marker and opens a new path ("snake"). Files ending in ".gz" are
// decompressed transparently.
//
// Paths are the half-open row ranges between consecutive root markers.
// Rows before the first marker are ignored, and the rows after the last
// marker are dropped unless WithTrailingPath(true) is given.
//
// Down-sampling keeps the first point, then every point at which the
// running distance since the last kept point reaches the threshold, and
// finally the last point unless it sits exactly where the last kept point
// does.
//
// A missing input file is not fatal: ReadFile logs a warning and returns an
// empty Trace together with ErrMissingInput so batch callers can skip it.
package swc
