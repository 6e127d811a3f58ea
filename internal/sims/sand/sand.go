package sand

import "sandfall/internal/core"

// Coin supplies the per-cell tie-break between the two diagonal orders.
type Coin interface {
	Bool() bool
}

// Input is the pointer snapshot a frontend hands to the engine once per tick.
// X and Y are grid coordinates; translating from display space is the
// frontend's job. A nil Color selects the engine's current brush color.
type Input struct {
	Active bool
	X, Y   int
	Color  *core.Color
}

// Engine advances a falling-sand grid one generation at a time.
type Engine struct {
	cfg  Config
	grid *core.Grid

	rng  *core.RNG
	coin Coin

	tick  int
	moved int
}

// New returns a sand simulation with the provided dimensions using defaults.
func New(w, h int) *Engine {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns an engine configured from the provided options.
func NewWithConfig(cfg Config) *Engine {
	if cfg.Radius < 0 {
		cfg.Radius = 0
	}
	grid := core.NewGrid(cfg.Width, cfg.Height)
	cfg.Width, cfg.Height = grid.W, grid.H
	rng := core.NewRNG(cfg.Seed)
	return &Engine{cfg: cfg, grid: grid, rng: rng, coin: rng}
}

// SetCoin replaces the diagonal tie-break source. A nil coin restores the
// engine's seeded RNG.
func (e *Engine) SetCoin(c Coin) {
	if c == nil {
		c = e.rng
	}
	e.coin = c
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "sand" }

// Size reports the grid dimensions.
func (e *Engine) Size() core.Size { return e.grid.Size() }

// Grid exposes the grid for rendering. Callers must not retain it across
// ticks expecting a stable snapshot.
func (e *Engine) Grid() *core.Grid { return e.grid }

// Config returns the current configuration, including brush changes.
func (e *Engine) Config() Config { return e.cfg }

// Tick returns the number of generations computed since the last Reset.
func (e *Engine) Tick() int { return e.tick }

// Settled reports whether the most recent Step moved no particle.
func (e *Engine) Settled() bool { return e.tick > 0 && e.moved == 0 }

// Reset empties the grid and reseeds the tie-break RNG. A zero seed reuses
// the configured one.
func (e *Engine) Reset(seed int64) {
	if seed == 0 {
		seed = e.cfg.Seed
	}
	e.rng.Seed(seed)
	e.grid.Clear()
	e.tick = 0
	e.moved = 0
}

// Step applies the fall rule to every cell once. Within a column rows are
// visited bottom to top so a particle that just fell is not visited again
// further down the same column. Columns run left to right and swaps land
// immediately, so a particle that slides right is visited again in its new
// column and can move twice in one tick.
func (e *Engine) Step() {
	e.moved = 0
	for x := 0; x < e.grid.W; x++ {
		for y := e.grid.H - 1; y >= 0; y-- {
			if e.StepCell(x, y) {
				e.moved++
			}
		}
	}
	e.tick++
}

// StepCell applies the fall rule to the particle at (x, y) and reports
// whether it moved.
func (e *Engine) StepCell(x, y int) bool {
	g := e.grid
	if g.IsEmpty(x, y) {
		return false
	}
	below := y + 1
	if below >= g.H {
		return false
	}
	here := core.Point{X: x, Y: y}
	if g.IsEmpty(x, below) {
		g.Swap(here, core.Point{X: x, Y: below})
		return true
	}

	first, second := x-1, x+1
	if e.coin.Bool() {
		first, second = second, first
	}
	for _, nx := range [2]int{first, second} {
		if nx < 0 || nx >= g.W {
			continue
		}
		if g.IsEmpty(nx, below) {
			g.Swap(here, core.Point{X: nx, Y: below})
			return true
		}
	}
	return false
}

// Pour deposits particles of color c in the square of side 2*radius around
// center, covering offsets -radius..radius-1 on each axis. Cells outside the
// grid are skipped. Occupied cells are only repainted under PolicyOverwrite.
// It returns the number of cells written.
func (e *Engine) Pour(center core.Point, c core.Color, radius int) int {
	g := e.grid
	written := 0
	for dy := -radius; dy < radius; dy++ {
		y := center.Y + dy
		if y < 0 || y >= g.H {
			continue
		}
		for dx := -radius; dx < radius; dx++ {
			x := center.X + dx
			if x < 0 || x >= g.W {
				continue
			}
			if e.cfg.Policy == PolicyEmptyOnly && !g.IsEmpty(x, y) {
				continue
			}
			g.Fill(x, y, c)
			written++
		}
	}
	return written
}

// Apply pours with the configured brush when the input is active.
func (e *Engine) Apply(in Input) int {
	if !in.Active {
		return 0
	}
	c := e.cfg.Color
	if in.Color != nil {
		c = *in.Color
	}
	return e.Pour(core.Point{X: in.X, Y: in.Y}, c, e.cfg.Radius)
}

// SetRadius changes the brush radius; negative values are clamped to zero.
func (e *Engine) SetRadius(r int) {
	if r < 0 {
		r = 0
	}
	e.cfg.Radius = r
}

// SetPolicy changes the brush fill policy.
func (e *Engine) SetPolicy(p FillPolicy) { e.cfg.Policy = p }

// SetColor changes the default brush color.
func (e *Engine) SetColor(c core.Color) { e.cfg.Color = c }

func init() {
	core.Register("sand", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
