package analysis

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"sandfall/internal/core"
	"sandfall/internal/sims/sand"
)

func TestHeightProfile(t *testing.T) {
	g := core.NewGrid(4, 5)
	g.Fill(0, 4, sand.DefaultColor)
	g.Fill(1, 2, sand.DefaultColor)
	g.Fill(1, 4, sand.DefaultColor)

	require.Equal(t, []float64{1, 3, 0, 0}, HeightProfile(g))
}

func TestSummarizePyramid(t *testing.T) {
	g := core.NewGrid(7, 4)
	for x := 1; x <= 5; x++ {
		g.Fill(x, 3, sand.DefaultColor)
	}
	for x := 2; x <= 4; x++ {
		g.Fill(x, 2, sand.DefaultColor)
	}
	g.Fill(3, 1, sand.DefaultColor)

	s := Summarize(g)
	require.Equal(t, 9, s.Particles)
	require.Equal(t, 3, s.Peak)
	require.Equal(t, 3, s.PeakX)
	require.Equal(t, 5, s.Width)
	require.InDelta(t, 9.0/5.0, s.Mean, 1e-9)
	require.InDelta(t, 1.0, s.Slope, 1e-9)
	require.Greater(t, s.StdDev, 0.0)
}

func TestSummarizeEmptyAndSingle(t *testing.T) {
	g := core.NewGrid(3, 3)
	require.Equal(t, Summary{}, Summarize(g))

	g.Fill(1, 2, sand.DefaultColor)
	s := Summarize(g)
	require.Equal(t, 1, s.Width)
	require.Equal(t, 0.0, s.StdDev)
	require.Equal(t, 0.0, s.Slope)
}

func TestSettleConservesParticles(t *testing.T) {
	e := sand.New(40, 30)
	e.Reset(5)
	for i := 0; i < 20; i++ {
		e.Apply(sand.Input{Active: true, X: 20, Y: 4})
		e.Step()
	}
	poured := e.Grid().Count()

	ticks, settled := Settle(e, 500)
	require.True(t, settled, "pile did not settle within %d ticks", ticks)
	require.Equal(t, poured, e.Grid().Count())

	before := append([]core.Cell(nil), e.Grid().Cells()...)
	e.Step()
	require.Equal(t, before, e.Grid().Cells())

	s := Summarize(e.Grid())
	require.Equal(t, poured, s.Particles)
	require.LessOrEqual(t, s.Slope, 1.0)
}

func TestSaveProfiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plots", "profile.png")
	err := SaveProfiles(path, "test", map[string][]float64{
		"a": {0, 1, 2, 1, 0},
		"b": {0, 2, 3, 2, 0},
	})
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}
