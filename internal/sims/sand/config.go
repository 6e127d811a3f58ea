package sand

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"sandfall/internal/core"
)

// FillPolicy selects how Pour treats cells that already hold a particle.
type FillPolicy uint8

const (
	// PolicyEmptyOnly paints into empty cells and leaves particles untouched.
	PolicyEmptyOnly FillPolicy = iota
	// PolicyOverwrite paints over every cell under the brush.
	PolicyOverwrite
)

// ErrUnknownPolicy is returned by ParsePolicy for unrecognised names.
var ErrUnknownPolicy = errors.New("unknown fill policy")

// ErrBadColor is returned by ParseColor for malformed colors.
var ErrBadColor = errors.New("malformed color")

func (p FillPolicy) String() string {
	switch p {
	case PolicyOverwrite:
		return "overwrite"
	default:
		return "empty"
	}
}

// ParsePolicy decodes a policy name as accepted by the -policy flag.
func ParsePolicy(s string) (FillPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "empty", "empty-only", "into":
		return PolicyEmptyOnly, nil
	case "overwrite", "over":
		return PolicyOverwrite, nil
	}
	return PolicyEmptyOnly, fmt.Errorf("%q: %w", s, ErrUnknownPolicy)
}

// Config controls the sand simulation dimensions and brush.
type Config struct {
	Width  int
	Height int

	Seed int64

	Radius int
	Policy FillPolicy
	Color  core.Color
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  500,
		Height: 500,
		Seed:   1337,
		Radius: 5,
		Policy: PolicyEmptyOnly,
		Color:  DefaultColor,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Malformed values are ignored and the defaults kept.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Radius = parsed
		}
	}
	if v, ok := cfg["policy"]; ok {
		if parsed, err := ParsePolicy(v); err == nil {
			c.Policy = parsed
		}
	}
	if v, ok := cfg["color"]; ok {
		if parsed, err := ParseColor(v); err == nil {
			c.Color = parsed
		}
	}
	return c
}

// ParseColor accepts "#rrggbb", "rrggbb" or a palette name.
func ParseColor(s string) (core.Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := PaletteColor(s); ok {
		return c, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return core.Color{}, fmt.Errorf("%q: %w", s, ErrBadColor)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return core.Color{}, fmt.Errorf("%q: %w: %w", s, ErrBadColor, err)
	}
	return core.Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// FormatColor renders c as "#rrggbb".
func FormatColor(c core.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
