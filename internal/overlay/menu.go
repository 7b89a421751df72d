package overlay

import "image"

const (
	MenuWidth      = 260
	MenuItemHeight = 30
	MenuSeparator  = 9
)

// MenuItem is one clickable row. Separated rows get a divider above them.
type MenuItem struct {
	Label     string
	Action    MenuAction
	Separated bool
}

// DefaultMenuItems are the context menu's entries.
var DefaultMenuItems = []MenuItem{
	{Label: "Choose background image...", Action: ActionChooseBackground},
	{Label: "Quit", Action: ActionQuit, Separated: true},
}

// Menu is the context menu model. Rendering and hit testing share the
// geometry below so the two never disagree.
type Menu struct {
	Open  bool
	X, Y  int
	Items []MenuItem
}

// openAt places the menu's top-left corner at the cursor, shifted back
// inside a w x h window when it would overflow.
func (m *Menu) openAt(x, y, w, h int) {
	m.Open = true
	m.X, m.Y = x, y
	b := m.Bounds()
	if w > 0 && b.Max.X > w {
		m.X = max(0, w-b.Dx())
	}
	if h > 0 && b.Max.Y > h {
		m.Y = max(0, h-b.Dy())
	}
}

func (m *Menu) close() {
	m.Open = false
}

// Bounds covers every item and separator.
func (m Menu) Bounds() image.Rectangle {
	height := 0
	for _, it := range m.Items {
		if it.Separated {
			height += MenuSeparator
		}
		height += MenuItemHeight
	}
	return image.Rect(m.X, m.Y, m.X+MenuWidth, m.Y+height)
}

// ItemRect is the clickable area of item i.
func (m Menu) ItemRect(i int) image.Rectangle {
	y := m.Y
	for j, it := range m.Items {
		if it.Separated {
			y += MenuSeparator
		}
		if j == i {
			break
		}
		y += MenuItemHeight
	}
	return image.Rect(m.X, y, m.X+MenuWidth, y+MenuItemHeight)
}

// Hit returns the item under (x, y), or -1. Separators are not items.
func (m Menu) Hit(x, y int) int {
	if !m.Open {
		return -1
	}
	p := image.Pt(x, y)
	for i := range m.Items {
		if p.In(m.ItemRect(i)) {
			return i
		}
	}
	return -1
}
