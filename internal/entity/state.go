package entity

import (
	"image"
	"image/color"
)

// OverlayState is everything ClockOverlay owns besides the text it shows.
type OverlayState struct {
	Fullscreen     bool
	BackgroundPath string      // empty when no background is set
	Background     image.Image // already scaled to Width x Height
	Width          int         // window size the background was built for
	Height         int

	BaseFill  color.RGBA // shown when Background is nil
	LabelFill color.RGBA // backing box behind the two labels
}

// HasBackground reports whether the overlay is in the "present" background state.
func (s OverlayState) HasBackground() bool {
	return s.Background != nil
}

// BackgroundSize returns the bitmap's size, or 0x0 when absent.
func (s OverlayState) BackgroundSize() (int, int) {
	if s.Background == nil {
		return 0, 0
	}
	b := s.Background.Bounds()
	return b.Dx(), b.Dy()
}
