// Package term runs the sand engine inside a terminal using tcell. Each
// terminal cell shows two grid rows with an upper half block: the foreground
// paints the upper row and the background the lower one.
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"sandfall/internal/core"
	"sandfall/internal/sims/sand"
)

const halfBlock = '▀'

var backgroundColor = tcell.NewRGBColor(0, 0, 0)

// Session couples a tcell screen to an engine and owns the tick loop.
type Session struct {
	screen tcell.Screen
	sim    *sand.Engine
	pacer  *core.FixedStep
	seed   int64

	mouseX, mouseY int
	pressed        bool

	paused   bool
	tickOnce bool
}

// NewSession wraps an initialised screen. Mouse reporting is enabled here.
func NewSession(screen tcell.Screen, sim *sand.Engine, tps int, seed int64) *Session {
	screen.EnableMouse()
	screen.HideCursor()
	return &Session{screen: screen, sim: sim, pacer: core.NewFixedStep(tps), seed: seed}
}

// CellToGrid maps a terminal cell to the upper grid cell it displays.
func CellToGrid(cx, cy int) (int, int) { return cx, cy * 2 }

// Input reports the current brush snapshot in grid coordinates.
func (s *Session) Input() sand.Input {
	x, y := CellToGrid(s.mouseX, s.mouseY)
	return sand.Input{Active: s.pressed, X: x, Y: y}
}

// HandleEvent applies a terminal event and reports whether the session
// should keep running.
func (s *Session) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return s.handleKey(ev)
	case *tcell.EventMouse:
		s.mouseX, s.mouseY = ev.Position()
		s.pressed = ev.Buttons()&tcell.Button1 != 0
	case *tcell.EventResize:
		s.screen.Sync()
	}
	return true
}

func (s *Session) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}
	switch r := ev.Rune(); r {
	case 'q':
		return false
	case ' ':
		s.paused = !s.paused
	case 'n':
		s.tickOnce = true
	case 'c', 'r':
		s.sim.Reset(s.seed)
	case 'p':
		s.sim.SetBoolParameter("overwrite", s.sim.Config().Policy != sand.PolicyOverwrite)
	case '[':
		s.sim.SetIntParameter("radius", s.sim.Config().Radius-1)
	case ']':
		s.sim.SetIntParameter("radius", s.sim.Config().Radius+1)
	default:
		if r >= '1' && r <= '9' {
			if sw, ok := sand.SwatchAt(int(r - '0')); ok {
				s.sim.SetColor(sw.Color)
			}
		}
	}
	return true
}

// Tick pours and advances the engine once, honouring pause and single-step.
func (s *Session) Tick() {
	s.sim.Apply(s.Input())
	if !s.paused || s.tickOnce {
		s.sim.Step()
		s.tickOnce = false
	}
}

// Draw paints the grid and a status line onto the screen back buffer.
func (s *Session) Draw() {
	s.screen.Clear()
	g := s.sim.Grid()
	cols, rows := s.screen.Size()
	viewRows := (g.H + 1) / 2
	if viewRows > rows-1 {
		viewRows = rows - 1
	}
	viewCols := g.W
	if viewCols > cols {
		viewCols = cols
	}
	for cy := 0; cy < viewRows; cy++ {
		upper := cy * 2
		lower := upper + 1
		for cx := 0; cx < viewCols; cx++ {
			style := tcell.StyleDefault.
				Foreground(cellColor(g.At(cx, upper))).
				Background(backgroundColor)
			// Odd heights leave the bottom half of the last row outside the grid.
			if cell, err := g.Lookup(cx, lower); err == nil {
				style = style.Background(cellColor(cell))
			}
			s.screen.SetContent(cx, cy, halfBlock, nil, style)
		}
	}
	if rows > 0 {
		s.drawStatus(rows - 1)
	}
}

func (s *Session) drawStatus(row int) {
	cfg := s.sim.Config()
	state := "running"
	if s.paused {
		state = "paused"
	}
	line := fmt.Sprintf(" tick %d  particles %d  radius %d  policy %s  color %s  [%s]  q quit ",
		s.sim.Tick(), s.sim.Grid().Count(), cfg.Radius, cfg.Policy, sand.FormatColor(cfg.Color), state)
	style := tcell.StyleDefault.Reverse(true)
	for i, r := range []rune(line) {
		s.screen.SetContent(i, row, r, nil, style)
	}
}

// Run polls events and ticks until the context ends or the user quits.
func (s *Session) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go s.screen.ChannelEvents(events, quit)
	defer close(quit)

	frame := time.NewTicker(s.pacer.Interval())
	defer frame.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok || !s.HandleEvent(ev) {
				return nil
			}
		case <-frame.C:
			for n := s.pacer.Pending(); n > 0; n-- {
				s.Tick()
			}
			s.Draw()
			s.screen.Show()
		}
	}
}

func cellColor(c core.Cell) tcell.Color {
	if !c.Filled {
		return backgroundColor
	}
	return tcell.NewRGBColor(int32(c.Color.R), int32(c.Color.G), int32(c.Color.B))
}
