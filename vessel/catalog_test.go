// SPDX-License-Identifier: MIT

package vessel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brainarterynetwork/bava/vessel"
)

func TestResolveSegment(t *testing.T) {
	cases := []struct {
		name       string
		start, end int
		want       vessel.Label
	}{
		{"ICA left", 3, 1, vessel.ICAL},
		{"ICA left reversed", 1, 3, vessel.ICAL},
		{"AComm", 5, 6, vessel.AComm},
		{"M2 left open end", 7, 99, vessel.M2L},
		{"M3 left via own code", 13, 25, vessel.M3L},
		{"OA right", 10, 12, vessel.OAR},
		{"BA", 18, 17, vessel.BA},
		{"self pair 23", 23, 23, vessel.A2L},
		{"unmapped pair", 1, 2, vessel.Unknown},
		{"negative code", -1, 3, vessel.Unknown},
		{"out of range", 150, 99, vessel.Unknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, vessel.ResolveSegment(tc.start, tc.end))
		})
	}
}

func TestNameOf(t *testing.T) {
	name, ok := vessel.NameOf(1)
	require.True(t, ok)
	assert.Equal(t, "ICA_L", name)

	name, ok = vessel.NameOf(vessel.PCommR)
	require.True(t, ok)
	assert.Equal(t, "PComm_R", name)

	for _, l := range []vessel.Label{vessel.Unknown, 25, 30, -3} {
		_, ok = vessel.NameOf(l)
		assert.False(t, ok, "label %d", int(l))
		assert.False(t, l.Named())
	}
}

func TestLabelString(t *testing.T) {
	assert.Equal(t, "BA", vessel.BA.String())
	assert.Equal(t, "0", vessel.Unknown.String())
	assert.Equal(t, "27", vessel.Label(27).String())
}

func TestLabels(t *testing.T) {
	labels := vessel.Labels()
	require.Len(t, labels, 24)
	assert.Equal(t, vessel.ICAL, labels[0])
	assert.Equal(t, vessel.OAR, labels[23])
	for _, l := range labels {
		assert.True(t, l.Named())
	}
}
