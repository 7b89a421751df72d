package game

import (
	"bytes"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/elir-elirlab/elirdeskclock/internal/overlay"
)

var (
	menuFill      = color.RGBA{0x2b, 0x2b, 0x2b, 0xf0}
	menuHighlight = color.RGBA{0x3d, 0x6f, 0xd8, 0xff}
	menuBorder    = color.RGBA{0x55, 0x55, 0x55, 0xff}
	menuText      = color.RGBA{0xee, 0xee, 0xee, 0xff}
)

const menuFontSize = 16

// renderer keeps the GPU-side copy of the background and the font faces.
type renderer struct {
	bold    *text.GoTextFaceSource
	regular *text.GoTextFaceSource

	bg    *ebiten.Image
	bgGen uint64
}

func newRenderer() (*renderer, error) {
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load bold font")
	}
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load regular font")
	}
	return &renderer{bold: bold, regular: regular}, nil
}

// syncBackground re-uploads the background whenever the overlay replaced it.
func (r *renderer) syncBackground(ov *overlay.ClockOverlay) {
	gen := ov.Generation()
	if gen == r.bgGen {
		return
	}
	if r.bg != nil {
		r.bg.Deallocate()
		r.bg = nil
	}
	if st := ov.State(); st.Background != nil {
		r.bg = ebiten.NewImageFromImage(st.Background)
	}
	r.bgGen = gen
}

func (r *renderer) draw(screen *ebiten.Image, ov *overlay.ClockOverlay, style Style, screenH int, status string, cursorX, cursorY int) {
	st := ov.State()
	screen.Fill(st.BaseFill)

	// 1. background
	r.syncBackground(ov)
	if r.bg != nil {
		op := &ebiten.DrawImageOptions{}
		sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
		bw, bh := r.bg.Bounds().Dx(), r.bg.Bounds().Dy()
		if bw != sw || bh != sh {
			// a reload is pending; stretch the old bitmap meanwhile
			op.GeoM.Scale(float64(sw)/float64(bw), float64(sh)/float64(bh))
			op.Filter = ebiten.FilterLinear
		}
		screen.DrawImage(r.bg, op)
	}

	// 2. labels, always above the background
	l := computeLayout(screen.Bounds().Dx(), screen.Bounds().Dy(), screenH, style.FontScale)
	snap := ov.Snapshot()
	r.drawLabel(screen, snap.Time, &text.GoTextFace{Source: r.bold, Size: l.ClockSize}, l.AnchorX, l.ClockBottom, style.TextColor, st.LabelFill)
	r.drawLabel(screen, snap.Date, &text.GoTextFace{Source: r.regular, Size: l.DateSize}, l.AnchorX, l.DateBottom, style.TextColor, st.LabelFill)
	if status != "" {
		r.drawLabel(screen, status, &text.GoTextFace{Source: r.regular, Size: l.StatusSize}, l.AnchorX, l.StatusBottom, style.TextColor, st.LabelFill)
	}

	// 3. context menu on top of everything
	if m := ov.Menu(); m.Open {
		r.drawMenu(screen, m, m.Hit(cursorX, cursorY))
	}
}

// drawLabel draws s with its bottom-right corner at (x, y) on a fill box.
func (r *renderer) drawLabel(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64, fg, bg color.RGBA) {
	if s == "" {
		return
	}
	w, h := text.Measure(s, face, face.Size)
	vector.DrawFilledRect(screen, float32(x-w), float32(y-h), float32(w), float32(h), bg, false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(fg)
	op.PrimaryAlign = text.AlignEnd
	op.SecondaryAlign = text.AlignEnd
	text.Draw(screen, s, face, op)
}

func (r *renderer) drawMenu(screen *ebiten.Image, m overlay.Menu, hover int) {
	b := m.Bounds()
	vector.DrawFilledRect(screen, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), menuFill, false)
	vector.StrokeRect(screen, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), 1, menuBorder, false)

	face := &text.GoTextFace{Source: r.regular, Size: menuFontSize}
	for i, it := range m.Items {
		rect := m.ItemRect(i)
		if it.Separated {
			y := float32(rect.Min.Y) - overlay.MenuSeparator/2
			vector.StrokeLine(screen, float32(rect.Min.X+6), y, float32(rect.Max.X-6), y, 1, menuBorder, false)
		}
		if i == hover {
			vector.DrawFilledRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), menuHighlight, false)
		}

		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(rect.Min.X+12), float64(rect.Min.Y+rect.Dy()/2))
		op.ColorScale.ScaleWithColor(menuText)
		op.SecondaryAlign = text.AlignCenter
		text.Draw(screen, it.Label, face, op)
	}
}
