// Package analysis measures the shape of settled sand piles.
package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"sandfall/internal/core"
	"sandfall/internal/sims/sand"
)

// Summary describes a pile by its column heights.
type Summary struct {
	Particles int
	Peak      int
	PeakX     int
	Width     int
	Mean      float64
	StdDev    float64
	// Slope is the mean absolute height change between neighbouring occupied
	// columns; a 45 degree pile approaches 1.
	Slope float64
}

// HeightProfile returns, per column, the distance from the floor to the top
// of the highest particle. Empty columns report zero.
func HeightProfile(g *core.Grid) []float64 {
	heights := make([]float64, g.W)
	for x := 0; x < g.W; x++ {
		for y := 0; y < g.H; y++ {
			if !g.IsEmpty(x, y) {
				heights[x] = float64(g.H - y)
				break
			}
		}
	}
	return heights
}

// Summarize computes pile statistics over the occupied columns of g.
func Summarize(g *core.Grid) Summary {
	profile := HeightProfile(g)
	s := Summary{Particles: g.Count()}

	var occupied []float64
	var steps []float64
	for x, h := range profile {
		if h <= 0 {
			continue
		}
		if int(h) > s.Peak {
			s.Peak = int(h)
			s.PeakX = x
		}
		if x > 0 && profile[x-1] > 0 {
			steps = append(steps, math.Abs(h-profile[x-1]))
		}
		occupied = append(occupied, h)
	}
	s.Width = len(occupied)
	if len(occupied) == 0 {
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(occupied, nil)
	if math.IsNaN(s.StdDev) {
		s.StdDev = 0
	}
	if len(steps) > 0 {
		s.Slope = stat.Mean(steps, nil)
	}
	return s
}

// Settle steps e until a tick moves nothing or maxTicks elapse. It returns
// the number of ticks taken and whether the grid came to rest.
func Settle(e *sand.Engine, maxTicks int) (int, bool) {
	for i := 1; i <= maxTicks; i++ {
		e.Step()
		if e.Settled() {
			return i, true
		}
	}
	return maxTicks, false
}
