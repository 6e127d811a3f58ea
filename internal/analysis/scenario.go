package analysis

import (
	"fmt"

	"sandfall/internal/core"
	"sandfall/internal/sims/sand"
)

// Scenario pours from a fixed point for a number of ticks and lets the pile
// come to rest.
type Scenario struct {
	Radius     int
	Policy     sand.FillPolicy
	Seed       int64
	PourTicks  int
	SettleCap  int
	SpoutDepth int
}

func (s Scenario) String() string {
	return fmt.Sprintf("radius=%d policy=%s seed=%d", s.Radius, s.Policy, s.Seed)
}

// Result records how a scenario ended.
type Result struct {
	Scenario Scenario
	Summary  Summary
	Profile  []float64

	Poured      int
	SettleTicks int
	Settled     bool
	Conserved   bool
}

// Run executes sc on a fresh engine built from base. The spout sits at the
// top centre, SpoutDepth rows below the ceiling.
func Run(base sand.Config, sc Scenario) Result {
	cfg := base
	cfg.Radius = sc.Radius
	cfg.Policy = sc.Policy
	cfg.Seed = sc.Seed

	e := sand.NewWithConfig(cfg)
	e.Reset(sc.Seed)
	spout := core.Point{X: e.Size().W / 2, Y: sc.SpoutDepth}

	poured := 0
	for i := 0; i < sc.PourTicks; i++ {
		poured += e.Pour(spout, cfg.Color, cfg.Radius)
		e.Step()
	}
	// Overwrites repaint existing particles, so only the grid count is
	// authoritative once pouring stops.
	before := e.Grid().Count()
	ticks, settled := Settle(e, sc.SettleCap)

	return Result{
		Scenario:    sc,
		Summary:     Summarize(e.Grid()),
		Profile:     HeightProfile(e.Grid()),
		Poured:      poured,
		SettleTicks: ticks,
		Settled:     settled,
		Conserved:   before == e.Grid().Count(),
	}
}
