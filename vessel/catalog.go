// SPDX-License-Identifier: MIT

package vessel

// segments maps a path's (start type, end type) codes to its segment label.
// Type code 99 marks a traced vessel end with no further landmark.
var segments = map[[2]int]Label{
	{1, 3}:   1,
	{2, 4}:   2,
	{3, 1}:   1,
	{3, 5}:   7,
	{3, 7}:   3,
	{4, 2}:   2,
	{4, 8}:   4,
	{4, 6}:   8,
	{5, 6}:   11,
	{5, 3}:   7,
	{5, 23}:  9,
	{5, 99}:  9,
	{6, 4}:   8,
	{6, 5}:   11,
	{6, 24}:  10,
	{6, 99}:  10,
	{7, 3}:   3,
	{7, 13}:  5,
	{7, 29}:  5,
	{7, 99}:  5,
	{8, 4}:   4,
	{8, 14}:  6,
	{8, 30}:  6,
	{8, 99}:  6,
	{9, 11}:  23,
	{10, 12}: 24,
	{11, 9}:  23,
	{12, 10}: 24,
	{13, 7}:  5,
	{13, 99}: 12,
	{13, 25}: 12,
	{13, 29}: 5,
	{14, 8}:  6,
	{14, 99}: 13,
	{14, 26}: 13,
	{14, 30}: 6,
	{15, 17}: 14,
	{16, 17}: 15,
	{17, 15}: 14,
	{17, 16}: 15,
	{17, 18}: 16,
	{18, 17}: 16,
	{18, 20}: 18,
	{18, 19}: 17,
	{19, 18}: 17,
	{19, 21}: 21,
	{19, 99}: 19,
	{19, 27}: 19,
	{20, 22}: 22,
	{20, 18}: 18,
	{20, 99}: 20,
	{20, 28}: 20,
	{21, 19}: 21,
	{22, 20}: 22,
	{23, 99}: 9,
	{23, 5}:  9,
	{23, 23}: 9,
	{24, 99}: 10,
	{24, 6}:  10,
	{24, 24}: 10,
	{25, 99}: 12,
	{25, 13}: 12,
	{25, 25}: 12,
	{26, 99}: 13,
	{26, 14}: 13,
	{26, 26}: 13,
	{27, 99}: 19,
	{27, 19}: 19,
	{27, 27}: 19,
	{28, 99}: 20,
	{28, 20}: 20,
	{28, 28}: 20,
	{29, 7}:  5,
	{29, 13}: 5,
	{29, 29}: 5,
	{29, 99}: 5,
	{30, 8}:  6,
	{30, 14}: 6,
	{30, 30}: 6,
	{30, 99}: 6,
}

var names = map[Label]string{
	ICAL:   "ICA_L",
	ICAR:   "ICA_R",
	M1L:    "M1_L",
	M1R:    "M1_R",
	M2L:    "M2_L",
	M2R:    "M2_R",
	A1L:    "A1_L",
	A1R:    "A1_R",
	A2L:    "A2_L",
	A2R:    "A2_R",
	AComm:  "AComm",
	M3L:    "M3_L",
	M3R:    "M3_R",
	VAL:    "VA_L",
	VAR:    "VA_R",
	BA:     "BA",
	P1L:    "P1_L",
	P1R:    "P1_R",
	P2L:    "P2_L",
	P2R:    "P2_R",
	PCommL: "PComm_L",
	PCommR: "PComm_R",
	OAL:    "OA_L",
	OAR:    "OA_R",
}

// ResolveSegment returns the segment label for a path whose first point has
// type start and whose last point has type end. Pairs not in the catalog,
// including negative or out-of-range codes, resolve to Unknown.
func ResolveSegment(start, end int) Label {
	return segments[[2]int{start, end}]
}

// NameOf returns the anatomical name of l. ok is false for Unknown and for
// labels above 24.
func NameOf(l Label) (name string, ok bool) {
	name, ok = names[l]

	return name, ok
}

// Labels returns every named label in ascending order.
func Labels() []Label {
	out := make([]Label, 0, len(names))
	for l := ICAL; l <= OAR; l++ {
		out = append(out, l)
	}

	return out
}
