package game

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"

	"github.com/elir-elirlab/elirdeskclock/internal/overlay"
)

// StatusLine supplies the optional third line, e.g. the system monitor.
type StatusLine interface {
	Line() string
}

// Style is the look of the labels.
type Style struct {
	TextColor         color.RGBA
	FontScale         float64
	DoubleClickWindow time.Duration
}

// Manager is the ebiten.Game. Update is the overlay's event loop: it turns
// input into gestures, then drains the queue one event at a time.
type Manager struct {
	Overlay *overlay.ClockOverlay
	Window  *Window
	Status  StatusLine // nil hides the line

	style   Style
	clicks  clickTracker
	render  *renderer
	started bool
	tps     int
}

func New(ov *overlay.ClockOverlay, win *Window, style Style, status StatusLine) (*Manager, error) {
	r, err := newRenderer()
	if err != nil {
		return nil, err
	}
	if style.FontScale <= 0 {
		style.FontScale = 1
	}
	return &Manager{
		Overlay: ov,
		Window:  win,
		Status:  status,
		style:   style,
		clicks:  clickTracker{window: style.DoubleClickWindow},
		render:  r,
	}, nil
}

func (g *Manager) Update() error {
	// 1. first frame: the window exists, start the clock
	if !g.started {
		g.started = true
		if err := g.Overlay.Start(); err != nil {
			return err
		}
	}

	// 2. input -> events
	g.pollInput(time.Now())

	// 3. idle overlays only need a few ticks per second; the menu wants more
	g.setTPS(tpsFor(g.Overlay.Menu().Open))

	// 4. run everything queued, in order
	g.Overlay.Drain()

	if g.Overlay.Quitting() {
		return ebiten.Termination
	}
	return nil
}

func (g *Manager) pollInput(now time.Time) {
	x, y := ebiten.CursorPosition()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.Overlay.Post(overlay.GestureEvent(overlay.GestureEscape, x, y))
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.clicks.Reset()
		g.Overlay.Post(overlay.GestureEvent(overlay.GestureRightClick, x, y))
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		switch {
		case g.Overlay.Menu().Open:
			// the menu eats this click; it must not start a double click
			g.clicks.Reset()
			g.Overlay.Post(overlay.GestureEvent(overlay.GestureLeftClick, x, y))
		case g.clicks.Click(now, x, y):
			g.Overlay.Post(overlay.GestureEvent(overlay.GestureDoubleClick, x, y))
		default:
			g.Overlay.Post(overlay.GestureEvent(overlay.GestureLeftClick, x, y))
		}
	}
}

func (g *Manager) setTPS(tps int) {
	if tps == g.tps {
		return
	}
	g.tps = tps
	ebiten.SetTPS(tps)
	log.Debug().Int("tps", tps).Msg("tick rate changed")
}

// tpsFor stays high enough that a short key press is never missed.
func tpsFor(menuOpen bool) int {
	if menuOpen {
		return 60
	}
	return 20
}

func (g *Manager) Draw(screen *ebiten.Image) {
	status := ""
	if g.Status != nil {
		status = g.Status.Line()
	}
	_, screenH := g.Window.ScreenSize()
	x, y := ebiten.CursorPosition()
	g.render.draw(screen, g.Overlay, g.style, screenH, status, x, y)
}

// Layout keeps the canvas the size of the window and reports changes to
// the overlay so the background can follow.
func (g *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.Window.setSize(outsideWidth, outsideHeight) {
		g.Overlay.Post(overlay.ResizeEvent(outsideWidth, outsideHeight))
	}
	return outsideWidth, outsideHeight
}
