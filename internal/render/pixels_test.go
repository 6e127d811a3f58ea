package render

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"

	"sandfall/internal/core"
)

func TestFillCellsRGBA(t *testing.T) {
	g := core.NewGrid(3, 1)
	g.Fill(0, 0, core.Color{R: 205, G: 170, B: 109})
	g.Fill(2, 0, core.Color{})

	buf := make([]byte, 4*3)
	fillCellsRGBA(buf, g.Cells(), color.RGBA{R: 1, G: 2, B: 3, A: 4})

	want := []byte{
		205, 170, 109, 255,
		1, 2, 3, 4,
		0, 0, 0, 255,
	}
	if diff := cmp.Diff(want, buf); diff != "" {
		t.Fatalf("pixels mismatch (-want +got):\n%s", diff)
	}
}

func TestRGBAIsOpaque(t *testing.T) {
	got := RGBA(core.Color{R: 9, G: 8, B: 7})
	if got != (color.RGBA{R: 9, G: 8, B: 7, A: 255}) {
		t.Fatalf("RGBA = %+v", got)
	}
}
