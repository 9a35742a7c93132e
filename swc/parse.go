// SPDX-License-Identifier: MIT

package swc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// maxLineBytes bounds a single SWC row.
const maxLineBytes = 1 << 20

// integralFields are the column indexes of id, type and parent.
var integralFields = [...]int{0, 1, 6}

// Parse reads SWC rows from r. Comment ('#') and blank lines are skipped.
// Any other row must hold seven finite numeric fields, and the id, type
// and parent fields must be integral; the first bad row aborts with
// ErrMalformedRow and its 1-based line number.
func Parse(r io.Reader) ([]Point, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		points []Point
		vals   [fieldsPerRow]float64
		line   int
	)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || text[0] == '#' {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != fieldsPerRow {
			return nil, fmt.Errorf("%w: line %d: want %d fields, got %d", ErrMalformedRow, line, fieldsPerRow, len(fields))
		}
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: field %d: %v", ErrMalformedRow, line, i+1, err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: line %d: field %d: non-finite value %q", ErrMalformedRow, line, i+1, f)
			}
			vals[i] = v
		}
		for _, i := range integralFields {
			if vals[i] != math.Trunc(vals[i]) {
				return nil, fmt.Errorf("%w: line %d: field %d: non-integral value %q", ErrMalformedRow, line, i+1, fields[i])
			}
		}
		points = append(points, Point{
			ID:       int64(vals[0]),
			Type:     int(vals[1]),
			Position: [3]float64{vals[2], vals[3], vals[4]},
			Radius:   vals[5],
			Parent:   int64(vals[6]),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("swc: line %d: %w", line+1, err)
	}

	return points, nil
}

// ReadFile parses the tracing at path, splits it into paths, applies the
// path cap and down-samples every path.
//
// A missing file yields an empty, non-nil Trace and ErrMissingInput.
func ReadFile(path string, opts ...Option) (*Trace, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	tr := &Trace{Source: path}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			o.Logger.Warn("tracing file does not exist", "path", path)
			return tr, fmt.Errorf("%w: %s", ErrMissingInput, path)
		}
		return nil, fmt.Errorf("swc: open %s: %w", path, err)
	}
	defer f.Close()

	if st, statErr := f.Stat(); statErr == nil {
		tr.Bytes = st.Size()
	}

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("swc: gzip %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	if tr.Points, err = Parse(r); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	tr.Paths = SplitPaths(tr.Points, o.IncludeTrailing)
	if o.MaxPaths > 0 && len(tr.Paths) > o.MaxPaths {
		o.Logger.Debug("path cap applied", "path", path, "paths", len(tr.Paths), "kept", o.MaxPaths)
		tr.Paths = tr.Paths[:o.MaxPaths]
	}
	tr.Downsampled = make([]DownsampledPath, len(tr.Paths))
	for i, p := range tr.Paths {
		tr.Downsampled[i] = Downsample(p, o.DistanceThreshold)
	}

	o.Logger.Debug("tracing loaded",
		"path", path,
		"points", len(tr.Points),
		"paths", len(tr.Paths),
		"threshold", o.DistanceThreshold,
	)

	return tr, nil
}

// Load is ReadFile returning only the down-sampled paths. A missing file
// returns no paths together with ErrMissingInput.
func Load(path string, opts ...Option) ([]DownsampledPath, error) {
	tr, err := ReadFile(path, opts...)
	if tr == nil {
		return nil, err
	}

	return tr.Downsampled, err
}
