package ui

import (
	"strconv"
	"strings"

	"sandfall/internal/core"
)

// simControls holds the optional parameter interfaces a sim implements. Any
// of them may be nil.
type simControls struct {
	params   core.ParametersProvider
	controls core.ParameterControlsProvider
	ints     core.IntParameterSetter
	bools    core.BoolParameterSetter
}

func bindControls(sim core.Sim) simControls {
	var c simControls
	c.params, _ = sim.(core.ParametersProvider)
	c.controls, _ = sim.(core.ParameterControlsProvider)
	c.ints, _ = sim.(core.IntParameterSetter)
	c.bools, _ = sim.(core.BoolParameterSetter)
	return c
}

func (c simControls) snapshot() core.ParameterSnapshot {
	if c.params == nil {
		return core.ParameterSnapshot{}
	}
	return c.params.Parameters()
}

func (c simControls) list() []core.ParameterControl {
	if c.controls == nil {
		return nil
	}
	return c.controls.ParameterControls()
}

func (c simControls) setInt(key string, value int) bool {
	return c.ints != nil && c.ints.SetIntParameter(key, value)
}

func (c simControls) setBool(key string, value bool) bool {
	return c.bools != nil && c.bools.SetBoolParameter(key, value)
}

// swatchColor decodes a "#rrggbb" text parameter.
func swatchColor(p core.Parameter) (core.Color, bool) {
	hex, ok := strings.CutPrefix(p.Value, "#")
	if !ok || len(hex) != 6 {
		return core.Color{}, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return core.Color{}, false
	}
	return core.Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, true
}

func title(sim core.Sim) string {
	name := sim.Name()
	if name == "" {
		return "Controls"
	}
	return strings.ToUpper(name[:1]) + name[1:] + " Controls"
}
