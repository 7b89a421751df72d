package game

// Labels hang off the bottom-right corner.
const (
	paddingX = 20
	paddingY = 10
)

// labelLayout is where the text goes for one frame. Anchors are the
// bottom-right corner of each label.
type labelLayout struct {
	ClockSize    float64 // px
	DateSize     float64
	StatusSize   float64
	AnchorX      float64
	ClockBottom  float64
	DateBottom   float64
	StatusBottom float64
}

// computeLayout sizes the clock from the screen, not the window, so the
// text keeps its size when leaving fullscreen. The clock is a twelfth of
// the screen height in points (4/3 px per point), the date 0.45 of that,
// and the date sits one and a half clock sizes above the clock.
func computeLayout(winW, winH, screenH int, scale float64) labelLayout {
	clockPt := float64(screenH) / 12 * scale
	l := labelLayout{
		ClockSize: clockPt * 4 / 3,
		AnchorX:   float64(winW - paddingX),
	}
	l.DateSize = l.ClockSize * 0.45
	l.StatusSize = l.DateSize * 0.7
	l.ClockBottom = float64(winH - paddingY)
	l.DateBottom = l.ClockBottom - clockPt*1.5
	l.StatusBottom = l.DateBottom - l.DateSize*1.4
	return l
}
