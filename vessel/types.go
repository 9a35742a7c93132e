// SPDX-License-Identifier: MIT

package vessel

import "strconv"

// Label identifies a named artery segment (ICA_L, M1_R, BA, ...).
type Label int

// Unknown is the label of any (start, end) pair missing from the catalog.
const Unknown Label = 0

// Labels with a catalog name.
const (
	ICAL Label = iota + 1
	ICAR
	M1L
	M1R
	M2L
	M2R
	A1L
	A1R
	A2L
	A2R
	AComm
	M3L
	M3R
	VAL
	VAR
	BA
	P1L
	P1R
	P2L
	P2R
	PCommL
	PCommR
	OAL
	OAR
)

// String returns the anatomical name, or the decimal token for labels the
// catalog does not name.
func (l Label) String() string {
	if name, ok := NameOf(l); ok {
		return name
	}

	return strconv.Itoa(int(l))
}

// Named reports whether the catalog has a name for l.
func (l Label) Named() bool {
	_, ok := names[l]

	return ok
}
