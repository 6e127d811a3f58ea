package render

import (
	"image/color"

	"sandfall/internal/core"
)

// Background is the color drawn for empty cells.
var Background = color.RGBA{A: 255}

// RGBA converts a particle color to an opaque pixel.
func RGBA(c core.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// fillCellsRGBA converts grid cells into RGBA pixels in buf. Filled cells use
// their particle color; empty cells use bg. buf must hold 4 bytes per cell.
func fillCellsRGBA(buf []byte, cells []core.Cell, bg color.RGBA) {
	for i, c := range cells {
		base := i * 4
		if c.Filled {
			buf[base+0] = c.Color.R
			buf[base+1] = c.Color.G
			buf[base+2] = c.Color.B
			buf[base+3] = 255
			continue
		}
		buf[base+0] = bg.R
		buf[base+1] = bg.G
		buf[base+2] = bg.B
		buf[base+3] = bg.A
	}
}
