package sand

import (
	"strconv"

	"sandfall/internal/core"
)

const maxRadius = 64

// Parameters describes the current world and brush settings.
func (e *Engine) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", e.cfg.Width),
				intParam("h", "Height", e.cfg.Height),
				int64Param("seed", "Seed", e.cfg.Seed),
				intParam("tick", "Tick", e.tick),
				intParam("particles", "Particles", e.grid.Count()),
			},
		},
		{
			Name: "Brush",
			Params: []core.Parameter{
				intParam("radius", "Radius", e.cfg.Radius),
				boolParam("overwrite", "Overwrite", e.cfg.Policy == PolicyOverwrite),
				textParam("color", "Color", FormatColor(e.cfg.Color)),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable brush settings.
func (e *Engine) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "radius", Label: "Radius", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: maxRadius, HasMin: true, HasMax: true},
		{Key: "overwrite", Label: "Overwrite", Type: core.ParamTypeBool},
	}
}

// SetIntParameter updates integer tunables by key.
func (e *Engine) SetIntParameter(key string, value int) bool {
	switch key {
	case "radius":
		if value > maxRadius {
			value = maxRadius
		}
		e.SetRadius(value)
		return true
	}
	return false
}

// SetBoolParameter updates boolean tunables by key.
func (e *Engine) SetBoolParameter(key string, value bool) bool {
	switch key {
	case "overwrite":
		if value {
			e.SetPolicy(PolicyOverwrite)
		} else {
			e.SetPolicy(PolicyEmptyOnly)
		}
		return true
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}

func textParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeText,
		Value: value,
	}
}
