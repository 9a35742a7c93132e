// SPDX-License-Identifier: MIT

package features

import (
	"errors"
	"sort"
)

// ErrGraphNil is returned when a nil graph is passed.
var ErrGraphNil = errors.New("features: graph is nil")

// Hierarchy components, in rollup order.
var (
	Territories  = []string{"ACA", "MCA", "PCA"}
	Sides        = []string{"L", "R"}
	Proximities  = []string{"proximal", "distal"}
	SingleKeys   = []string{"R", "L", "MCA", "ACA", "PCA", "proximal", "distal"}
	keySeparator = "_"
)

// TotalKey names the whole-graph record.
const TotalKey = "total"

// Flattened field suffixes.
const (
	FieldLength       = "length"
	FieldBranchNumber = "branch_number"
)

// Record holds the accumulated length and branch count of one key.
type Record struct {
	Length       float64 `json:"length" yaml:"length"`
	BranchNumber int     `json:"branch_number" yaml:"branch_number"`
}

// add returns the field-wise sum of r and o.
func (r Record) add(o Record) Record {
	return Record{Length: r.Length + o.Length, BranchNumber: r.BranchNumber + o.BranchNumber}
}

// Table maps a feature key to its record.
type Table map[string]Record

// Keys returns the table keys sorted ascending.
func (t Table) Keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Flatten returns "<key>_length" and "<key>_branch_number" entries for
// every record.
func (t Table) Flatten() map[string]float64 {
	out := make(map[string]float64, 2*len(t))
	for k, r := range t {
		out[k+keySeparator+FieldLength] = r.Length
		out[k+keySeparator+FieldBranchNumber] = float64(r.BranchNumber)
	}

	return out
}

// Clone returns an independent copy of t.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	for k, r := range t {
		out[k] = r
	}

	return out
}
