//go:build ebiten

package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"sandfall/internal/render"
	"sandfall/internal/sims/sand"
	"sandfall/internal/ui"
)

var swatchKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// Game adapts the sand engine to the ebiten.Game interface.
type Game struct {
	sim     *sand.Engine
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided engine.
func New(sim *sand.Engine, scale, hudWidth int, seed int64) *Game {
	size := sim.Size()
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(sim, scale),
		hud:      ui.NewHUD(sim, hudWidth),
		scale:    scale,
		hudWidth: hudWidth,
		seed:     seed,
	}
}

// Reset clears the grid and reseeds the engine.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update samples input, pours, and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) || inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		if g.sim.Config().Policy == sand.PolicyOverwrite {
			g.sim.SetPolicy(sand.PolicyEmptyOnly)
		} else {
			g.sim.SetPolicy(sand.PolicyOverwrite)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.sim.SetIntParameter("radius", g.sim.Config().Radius-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.sim.SetIntParameter("radius", g.sim.Config().Radius+1)
	}
	for i, key := range swatchKeys {
		if inpututil.IsKeyJustPressed(key) {
			if s, ok := sand.SwatchAt(i + 1); ok {
				g.sim.SetColor(s.Color)
			}
		}
	}

	g.overlay.Update()
	g.hud.Update(g.viewWidth())

	g.sim.Apply(g.pointer())

	if !g.paused || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// pointer reports the mouse, or the first touch, as a brush snapshot. Presses
// over the HUD panel do not pour.
func (g *Game) pointer() sand.Input {
	px, py := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		px, py = ebiten.TouchPosition(ids[0])
		pressed = true
	}
	if px >= g.viewWidth() {
		pressed = false
	}
	return PointerInput(px, py, pressed, g.scale)
}

func (g *Game) viewWidth() int { return g.sim.Size().W * g.scale }

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Grid(), render.Background, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.viewWidth(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
