package app

import "sandfall/internal/sims/sand"

// ScreenToGrid maps a display pixel to the grid cell drawn under it.
// Pixels left of or above the grid map to negative cells.
func ScreenToGrid(px, py, scale int) (int, int) {
	if scale <= 0 {
		scale = 1
	}
	return floorDiv(px, scale), floorDiv(py, scale)
}

// PointerInput builds the per-tick brush snapshot from a pointer sample.
func PointerInput(px, py int, pressed bool, scale int) sand.Input {
	x, y := ScreenToGrid(px, py, scale)
	return sand.Input{Active: pressed, X: x, Y: y}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
