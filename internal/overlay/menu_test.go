package overlay

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMenuGeometry(t *testing.T) {
	m := Menu{Items: DefaultMenuItems}
	m.openAt(10, 20, 1920, 1080)

	assert.Equal(t, image.Rect(10, 20, 10+MenuWidth, 20+2*MenuItemHeight+MenuSeparator), m.Bounds())
	assert.Equal(t, image.Rect(10, 20, 10+MenuWidth, 20+MenuItemHeight), m.ItemRect(0))
	assert.Equal(t, image.Rect(10, 20+MenuItemHeight+MenuSeparator, 10+MenuWidth, 20+2*MenuItemHeight+MenuSeparator), m.ItemRect(1))
}

func TestMenuHit(t *testing.T) {
	m := Menu{Items: DefaultMenuItems}
	assert.Equal(t, -1, m.Hit(0, 0), "closed menu hits nothing")

	m.openAt(0, 0, 1000, 1000)
	tests := []struct {
		x, y int
		want int
	}{
		{1, 1, 0},
		{MenuWidth - 1, MenuItemHeight - 1, 0},
		{5, MenuItemHeight + 2, -1}, // separator
		{5, MenuItemHeight + MenuSeparator, 1},
		{MenuWidth, 5, -1},
		{5, 2*MenuItemHeight + MenuSeparator, -1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, m.Hit(tt.x, tt.y), "(%d,%d)", tt.x, tt.y)
	}
}

func TestMenuStaysInsideWindow(t *testing.T) {
	m := Menu{Items: DefaultMenuItems}
	m.openAt(790, 590, 800, 600)
	b := m.Bounds()
	assert.Equal(t, 800, b.Max.X)
	assert.Equal(t, 600, b.Max.Y)

	// tiny windows pin the menu to the corner
	m.openAt(50, 50, 100, 40)
	assert.Equal(t, 0, m.X)
	assert.Equal(t, 0, m.Y)
}

func TestEventStrings(t *testing.T) {
	assert.Equal(t, "tick", EventTick.String())
	assert.Equal(t, "double_click", GestureDoubleClick.String())
	assert.Equal(t, "choose_background", ActionChooseBackground.String())
	assert.Equal(t, "EventKind(99)", EventKind(99).String())
}
