// SPDX-License-Identifier: MIT

package plot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPalette(t *testing.T) {
	assert.Empty(t, palette(0))
	assert.Equal(t, []string{"rgb(127, 0, 255)"}, palette(1))
	assert.Equal(t, []string{"rgb(127, 0, 255)", "rgb(255, 0, 0)"}, palette(2))
	assert.Equal(t, []string{"rgb(127, 0, 255)", "rgb(128, 254, 179)", "rgb(255, 0, 0)"}, palette(3))
}

func TestRainbow_Clamped(t *testing.T) {
	r, g, b := rainbow(-0.5)
	assert.InDelta(t, 0.5, r, 1e-12)
	assert.InDelta(t, 0.0, g, 1e-12)
	assert.InDelta(t, 1.0, b, 1e-12)

	r, _, _ = rainbow(2)
	assert.Equal(t, 1.0, r)
}
