// SPDX-License-Identifier: MIT

package features

import (
	"strings"

	"github.com/brainarterynetwork/bava/core"
)

// inTerritory reports whether vessel name belongs to the given territory,
// side and proximity.
func inTerritory(name, territory, side, proximity string) bool {
	if name == "" || name[0] != territory[0] || !strings.Contains(name[1:], keySeparator) {
		return false
	}
	if !strings.Contains(name, side) {
		return false
	}
	distal := strings.ContainsAny(name, "23")
	if proximity == "distal" {
		return distal
	}

	return !distal
}

// Summarize returns a new table holding segments plus every hierarchical
// aggregate. segments is not modified.
//
// TotalKey holds proximal + distal, which is not the sum of segments: every
// territorial (ACA, MCA, PCA) vessel reaches both single-component rows
// through two merged keys and so counts twice, while ICA, VA, BA, AComm,
// OA and unnamed vessels never enter a territory and count zero times. A
// tracing with only ICA vessels therefore has a zero total. Use
// SegmentTotal for the plain per-vessel sum.
func Summarize(segments Table) Table {
	names := segments.Keys()

	// territory x side x proximity
	var subKeys []string
	sub := make(Table, 12)
	for _, terr := range Territories {
		for _, side := range Sides {
			for _, prox := range Proximities {
				var r Record
				for _, name := range names {
					if inTerritory(name, terr, side, prox) {
						r = r.add(segments[name])
					}
				}
				key := strings.Join([]string{prox, terr, side}, keySeparator)
				subKeys = append(subKeys, key)
				sub[key] = r
			}
		}
	}

	// drop one component at a time
	merged := make(Table, 16)
	for _, key := range subKeys {
		parts := strings.Split(key, keySeparator)
		for i := range parts {
			rest := append(append([]string(nil), parts[:i]...), parts[i+1:]...)
			mk := strings.Join(rest, keySeparator)
			merged[mk] = merged[mk].add(sub[key])
		}
	}

	// single components, by substring over the 2-part keys
	mergedKeys := merged.Keys()
	further := make(Table, len(SingleKeys))
	for _, single := range SingleKeys {
		var r Record
		for _, mk := range mergedKeys {
			if strings.Contains(mk, single) {
				r = r.add(merged[mk])
			}
		}
		further[single] = r
	}

	out := segments.Clone()
	for _, layer := range []Table{sub, merged, further} {
		for k, r := range layer {
			out[k] = r
		}
	}
	out[TotalKey] = further["proximal"].add(further["distal"])

	return out
}

// Extract runs SegmentFeatures followed by Summarize.
func Extract(g *core.Graph) (Table, error) {
	segments, err := SegmentFeatures(g)
	if err != nil {
		return nil, err
	}

	return Summarize(segments), nil
}

// SegmentTotal sums every record of a per-vessel table.
func SegmentTotal(segments Table) Record {
	var r Record
	for _, k := range segments.Keys() {
		r = r.add(segments[k])
	}

	return r
}
