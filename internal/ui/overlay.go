//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"sandfall/internal/sims/sand"
)

// Overlay outlines the brush footprint under the cursor.
type Overlay struct {
	sim   *sand.Engine
	scale int
	show  bool
	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim *sand.Engine, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{sim: sim, scale: scale, show: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the outline with B.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		o.show = !o.show
	}
}

// Draw renders the brush square at the cursor.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	size := o.sim.Size()
	px, py := ebiten.CursorPosition()
	if px < 0 || py < 0 || px >= size.W*o.scale || py >= size.H*o.scale {
		return
	}
	cfg := o.sim.Config()
	if cfg.Radius <= 0 {
		return
	}
	cx, cy := px/o.scale, py/o.scale
	side := float64(2 * cfg.Radius * o.scale)
	x0 := float64((cx - cfg.Radius) * o.scale)
	y0 := float64((cy - cfg.Radius) * o.scale)

	c := color.NRGBA{R: cfg.Color.R, G: cfg.Color.G, B: cfg.Color.B, A: 200}
	o.line(screen, x0, y0, side, 1, c)
	o.line(screen, x0, y0+side-1, side, 1, c)
	o.line(screen, x0, y0, 1, side, c)
	o.line(screen, x0+side-1, y0, 1, side, c)
}

func (o *Overlay) line(dst *ebiten.Image, x, y, w, h float64, c color.NRGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(o.pixel, op)
}
