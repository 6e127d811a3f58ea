package sand

import (
	"strings"

	"sandfall/internal/core"
)

// DefaultColor is the classic desert sand tone.
var DefaultColor = core.Color{R: 205, G: 170, B: 109}

// Swatch is a named brush color offered to color pickers.
type Swatch struct {
	Name  string
	Color core.Color
}

// Palette lists the selectable brush colors in hotkey order.
var Palette = []Swatch{
	{Name: "sand", Color: DefaultColor},
	{Name: "dune", Color: core.Color{R: 228, G: 185, B: 92}},
	{Name: "clay", Color: core.Color{R: 178, G: 94, B: 62}},
	{Name: "ash", Color: core.Color{R: 140, G: 140, B: 140}},
	{Name: "moss", Color: core.Color{R: 70, G: 160, B: 80}},
	{Name: "sky", Color: core.Color{R: 64, G: 164, B: 223}},
	{Name: "rose", Color: core.Color{R: 230, G: 110, B: 150}},
	{Name: "snow", Color: core.Color{R: 245, G: 245, B: 250}},
	{Name: "coal", Color: core.Color{R: 0, G: 0, B: 0}},
}

// PaletteColor looks up a swatch by case-insensitive name.
func PaletteColor(name string) (core.Color, bool) {
	for _, s := range Palette {
		if strings.EqualFold(s.Name, name) {
			return s.Color, true
		}
	}
	return core.Color{}, false
}

// SwatchAt returns the swatch for a 1-based hotkey, if any.
func SwatchAt(key int) (Swatch, bool) {
	if key < 1 || key > len(Palette) {
		return Swatch{}, false
	}
	return Palette[key-1], true
}
