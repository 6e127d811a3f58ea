package ui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"sandfall/internal/core"
	"sandfall/internal/sims/sand"
)

// bareSim implements core.Sim and nothing else.
type bareSim struct{ grid *core.Grid }

func (s *bareSim) Name() string { return "bare" }
func (s *bareSim) Size() core.Size { return s.grid.Size() }
func (s *bareSim) Reset(int64) { s.grid.Clear() }
func (s *bareSim) Step() {}
func (s *bareSim) Grid() *core.Grid { return s.grid }

func TestBindControlsResolvesEngineInterfaces(t *testing.T) {
	e := sand.New(16, 16)
	ctl := bindControls(e)

	keys := []string{}
	for _, c := range ctl.list() {
		keys = append(keys, c.Key)
	}
	require.Equal(t, []string{"radius", "overwrite"}, keys)

	require.True(t, ctl.setInt("radius", 9))
	require.Equal(t, 9, e.Config().Radius)
	require.False(t, ctl.setInt("unknown", 1))

	require.True(t, ctl.setBool("overwrite", true))
	require.Equal(t, sand.PolicyOverwrite, e.Config().Policy)

	p, ok := ctl.snapshot().Find("radius")
	require.True(t, ok)
	require.Equal(t, "9", p.Value)
}

func TestBindControlsToleratesPlainSim(t *testing.T) {
	ctl := bindControls(&bareSim{grid: core.NewGrid(4, 4)})

	require.Empty(t, ctl.list())
	require.Empty(t, ctl.snapshot().Groups)
	require.False(t, ctl.setInt("radius", 3))
	require.False(t, ctl.setBool("overwrite", true))
}

func TestSwatchColor(t *testing.T) {
	e := sand.New(4, 4)
	e.SetColor(core.Color{R: 0x12, G: 0xab, B: 0xff})
	p, ok := e.Parameters().Find("color")
	require.True(t, ok)

	c, ok := swatchColor(p)
	require.True(t, ok)
	require.Equal(t, core.Color{R: 0x12, G: 0xab, B: 0xff}, c)

	for _, bad := range []string{"", "12abff", "#12ab", "#zzzzzz"} {
		_, ok := swatchColor(core.Parameter{Value: bad})
		require.False(t, ok, bad)
	}
}

func TestTitle(t *testing.T) {
	require.Equal(t, "Sand Controls", title(sand.New(2, 2)))
	require.Equal(t, "Bare Controls", title(&bareSim{grid: core.NewGrid(1, 1)}))
}
