package game

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// Window is the ebiten window as the overlay sees it. Its size is whatever
// the last Layout call reported.
type Window struct {
	mu            sync.Mutex
	width, height int

	// used for ScreenSize until a monitor is known
	fallbackW, fallbackH int
}

func NewWindow(fallbackW, fallbackH int) *Window {
	return &Window{fallbackW: fallbackW, fallbackH: fallbackH}
}

func (w *Window) Size() (int, int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width, w.height
}

// setSize records a layout size and reports whether it changed.
func (w *Window) setSize(width, height int) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if width == w.width && height == w.height {
		return false
	}
	w.width, w.height = width, height
	return true
}

// ScreenSize is the current monitor in device-independent pixels.
func (w *Window) ScreenSize() (int, int) {
	if m := ebiten.Monitor(); m != nil {
		if sw, sh := m.Size(); sw > 0 && sh > 0 {
			return sw, sh
		}
	}
	return w.fallbackW, w.fallbackH
}

func (w *Window) SetFullscreen(on bool) {
	ebiten.SetFullscreen(on)
}
