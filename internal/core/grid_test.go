package core

import (
	"errors"
	"testing"
)

var tan = Color{R: 205, G: 170, B: 109}

func TestNewGridStartsEmpty(t *testing.T) {
	g := NewGrid(4, 3)
	if g.W != 4 || g.H != 3 {
		t.Fatalf("size = %dx%d, want 4x3", g.W, g.H)
	}
	if len(g.Cells()) != 12 {
		t.Fatalf("len(cells) = %d, want 12", len(g.Cells()))
	}
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if !g.IsEmpty(x, y) {
				t.Fatalf("cell (%d,%d) not empty on a fresh grid", x, y)
			}
		}
	}
}

func TestNewGridClampsDimensions(t *testing.T) {
	g := NewGrid(0, -3)
	if g.W != 1 || g.H != 1 {
		t.Fatalf("size = %dx%d, want 1x1", g.W, g.H)
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	g := NewGrid(3, 3)
	g.Fill(2, 1, tan)
	if got := g.Get(2, 1); got != tan {
		t.Fatalf("Get = %+v, want %+v", got, tan)
	}
	if g.IsEmpty(2, 1) {
		t.Fatal("filled cell reported empty")
	}
	if got := g.Cells()[1*3+2]; got != Sand(tan) {
		t.Fatalf("row-major slot = %+v, want %+v", got, Sand(tan))
	}
}

func TestBlackIsAParticle(t *testing.T) {
	g := NewGrid(2, 2)
	g.Fill(0, 0, Color{})
	if g.IsEmpty(0, 0) {
		t.Fatal("black particle treated as empty")
	}
	if g.Count() != 1 {
		t.Fatalf("Count = %d, want 1", g.Count())
	}
}

func TestSwapExchangesCells(t *testing.T) {
	g := NewGrid(2, 2)
	red := Color{R: 255}
	g.Fill(0, 0, red)
	g.Swap(Point{0, 0}, Point{1, 1})
	if !g.IsEmpty(0, 0) {
		t.Fatal("source cell still filled after swap")
	}
	if g.At(1, 1) != Sand(red) {
		t.Fatalf("target = %+v, want %+v", g.At(1, 1), Sand(red))
	}

	blue := Color{B: 255}
	g.Fill(0, 0, blue)
	g.Swap(Point{0, 0}, Point{1, 1})
	if g.Get(0, 0) != red || g.Get(1, 1) != blue {
		t.Fatalf("swap of two particles gave %+v / %+v", g.Get(0, 0), g.Get(1, 1))
	}
}

func TestClearAndCount(t *testing.T) {
	g := NewGrid(3, 2)
	g.Fill(0, 0, tan)
	g.Fill(2, 1, tan)
	if g.Count() != 2 {
		t.Fatalf("Count = %d, want 2", g.Count())
	}
	g.Clear()
	if g.Count() != 0 {
		t.Fatalf("Count after Clear = %d, want 0", g.Count())
	}
}

func TestOutOfRangePanics(t *testing.T) {
	g := NewGrid(3, 3)
	cases := []struct {
		name string
		fn   func()
	}{
		{"get negative x", func() { g.Get(-1, 0) }},
		{"get past height", func() { g.Get(0, 3) }},
		{"set past width", func() { g.Set(3, 0, Sand(tan)) }},
		{"is empty", func() { g.IsEmpty(0, -1) }},
		{"swap", func() { g.Swap(Point{0, 0}, Point{0, 3}) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok {
					t.Fatalf("recovered %v, want an error", r)
				}
				if !errors.Is(err, ErrOutOfRange) {
					t.Fatalf("panic %v does not wrap ErrOutOfRange", err)
				}
			}()
			tc.fn()
		})
	}
}

func TestLookupReportsOutOfRange(t *testing.T) {
	g := NewGrid(2, 2)
	g.Fill(1, 1, tan)

	cell, err := g.Lookup(1, 1)
	if err != nil {
		t.Fatalf("Lookup in bounds: %v", err)
	}
	if cell != Sand(tan) {
		t.Fatalf("Lookup = %+v, want %+v", cell, Sand(tan))
	}

	_, err = g.Lookup(2, 0)
	var rangeErr *OutOfRangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("Lookup error = %v, want *OutOfRangeError", err)
	}
	if rangeErr.X != 2 || rangeErr.Y != 0 || rangeErr.W != 2 || rangeErr.H != 2 {
		t.Fatalf("unexpected error fields %+v", rangeErr)
	}
}
