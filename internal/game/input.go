package game

import "time"

// clickSlop is how far (in pixels) the second click may land from the first.
const clickSlop = 4

// clickTracker turns left clicks into single or double clicks.
type clickTracker struct {
	window time.Duration

	armed bool
	last  time.Time
	x, y  int
}

// Click records a press and reports whether it completes a double click.
// A completed double click disarms the tracker so a third click starts over.
func (c *clickTracker) Click(now time.Time, x, y int) bool {
	if c.armed && now.Sub(c.last) <= c.window && abs(x-c.x) <= clickSlop && abs(y-c.y) <= clickSlop {
		c.armed = false
		return true
	}
	c.armed = true
	c.last = now
	c.x, c.y = x, y
	return false
}

// Reset forgets the pending first click.
func (c *clickTracker) Reset() {
	c.armed = false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
