package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"sandfall/internal/core"
	"sandfall/internal/sims/sand"
)

func newTestSession(t *testing.T, w, h int) (*Session, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(40, 20)

	sim := sand.New(w, h)
	sim.Reset(1)
	return NewSession(screen, sim, 30, 1), screen
}

func TestCellToGrid(t *testing.T) {
	x, y := CellToGrid(3, 4)
	require.Equal(t, 3, x)
	require.Equal(t, 8, y)
}

func TestMousePourAndRelease(t *testing.T) {
	s, _ := newTestSession(t, 20, 20)
	s.sim.SetRadius(1)

	require.True(t, s.HandleEvent(tcell.NewEventMouse(5, 3, tcell.Button1, tcell.ModNone)))
	require.Equal(t, sand.Input{Active: true, X: 5, Y: 6}, s.Input())

	s.paused = true
	s.Tick()
	require.Equal(t, 4, s.sim.Grid().Count())
	require.False(t, s.sim.Grid().IsEmpty(4, 5))

	s.HandleEvent(tcell.NewEventMouse(5, 3, tcell.ButtonNone, tcell.ModNone))
	s.Tick()
	require.Equal(t, 4, s.sim.Grid().Count())
}

func TestKeys(t *testing.T) {
	s, _ := newTestSession(t, 10, 10)
	radius := s.sim.Config().Radius

	require.True(t, s.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ']', tcell.ModNone)))
	require.Equal(t, radius+1, s.sim.Config().Radius)
	s.HandleEvent(tcell.NewEventKey(tcell.KeyRune, '[', tcell.ModNone))
	require.Equal(t, radius, s.sim.Config().Radius)

	s.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone))
	require.Equal(t, sand.PolicyOverwrite, s.sim.Config().Policy)
	s.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone))
	require.Equal(t, sand.PolicyEmptyOnly, s.sim.Config().Policy)

	s.HandleEvent(tcell.NewEventKey(tcell.KeyRune, '6', tcell.ModNone))
	sky, _ := sand.PaletteColor("sky")
	require.Equal(t, sky, s.sim.Config().Color)

	s.sim.Grid().Fill(0, 0, sky)
	s.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone))
	require.Zero(t, s.sim.Grid().Count())

	s.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	require.True(t, s.paused)
	s.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone))
	s.Tick()
	require.Equal(t, 1, s.sim.Tick())
	s.Tick()
	require.Equal(t, 1, s.sim.Tick())

	require.False(t, s.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	require.False(t, s.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}

func TestDrawHalfBlocks(t *testing.T) {
	s, screen := newTestSession(t, 4, 3)
	red := core.Color{R: 255}
	blue := core.Color{B: 255}
	g := s.sim.Grid()
	g.Fill(1, 0, red)
	g.Fill(1, 1, blue)
	g.Fill(2, 2, red)

	s.Draw()

	mainc, _, style, _ := screen.GetContent(1, 0)
	require.Equal(t, halfBlock, mainc)
	fg, bg, _ := style.Decompose()
	require.Equal(t, tcell.NewRGBColor(255, 0, 0), fg)
	require.Equal(t, tcell.NewRGBColor(0, 0, 255), bg)

	// The odd last grid row has no lower half.
	_, _, style, _ = screen.GetContent(2, 1)
	fg, bg, _ = style.Decompose()
	require.Equal(t, tcell.NewRGBColor(255, 0, 0), fg)
	require.Equal(t, backgroundColor, bg)

	// Columns past the grid stay blank.
	mainc, _, _, _ = screen.GetContent(4, 0)
	require.NotEqual(t, halfBlock, mainc)
}
