package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeLayout(t *testing.T) {
	l := computeLayout(1920, 1080, 1080, 1)

	assert.InDelta(t, 120.0, l.ClockSize, 1e-9)
	assert.InDelta(t, 54.0, l.DateSize, 1e-9)
	assert.Equal(t, 1900.0, l.AnchorX)
	assert.Equal(t, 1070.0, l.ClockBottom)
	assert.InDelta(t, 1070.0-135.0, l.DateBottom, 1e-9)
	assert.Less(t, l.StatusBottom, l.DateBottom)
}

func TestComputeLayoutWindowed(t *testing.T) {
	full := computeLayout(1920, 1080, 1080, 1)
	win := computeLayout(800, 600, 1080, 1)

	// text size follows the screen
	assert.Equal(t, full.ClockSize, win.ClockSize)
	assert.Equal(t, 780.0, win.AnchorX)
	assert.Equal(t, 590.0, win.ClockBottom)

	big := computeLayout(800, 600, 1080, 2)
	assert.InDelta(t, 2*win.ClockSize, big.ClockSize, 1e-9)
}
