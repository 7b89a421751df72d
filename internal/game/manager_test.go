package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTPSFor(t *testing.T) {
	assert.Equal(t, 60, tpsFor(true))
	assert.Equal(t, 20, tpsFor(false))
}

func TestWindowSetSize(t *testing.T) {
	w := NewWindow(1920, 1080)
	width, height := w.Size()
	assert.Zero(t, width)
	assert.Zero(t, height)

	assert.True(t, w.setSize(800, 600))
	assert.False(t, w.setSize(800, 600))
	width, height = w.Size()
	assert.Equal(t, 800, width)
	assert.Equal(t, 600, height)
}
