package app

import (
	"flag"
	"fmt"
	"strconv"

	"sandfall/internal/sims/sand"
)

// Config represents the command-line parameters for the frontends.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	Seed  int64

	Width  int
	Height int

	Radius int
	Policy string
	Color  string

	HUDWidth int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := sand.DefaultConfig()
	return &Config{
		Sim:      "sand",
		Scale:    2,
		TPS:      60,
		Seed:     def.Seed,
		Width:    250,
		Height:   250,
		Radius:   def.Radius,
		Policy:   def.Policy.String(),
		Color:    "sand",
		HUDWidth: 180,
	}
}

// Bind attaches the full GUI configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
	c.BindTerminal(fs)
}

// BindTerminal attaches only the flags the terminal frontend honours. Window
// scale, HUD width and sim selection are left unregistered.
func (c *Config) BindTerminal(fs *flag.FlagSet) {
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the diagonal tie-break")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Radius, "radius", c.Radius, "brush radius in cells")
	fs.StringVar(&c.Policy, "policy", c.Policy, "brush fill policy: empty or overwrite")
	fs.StringVar(&c.Color, "color", c.Color, "brush color as #rrggbb or a palette name")
}

// Validate checks values that FromMap would otherwise silently ignore.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("grid size %dx%d must be positive", c.Width, c.Height)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale %d must be positive", c.Scale)
	}
	if c.Radius < 0 {
		return fmt.Errorf("radius %d must not be negative", c.Radius)
	}
	if _, err := sand.ParsePolicy(c.Policy); err != nil {
		return fmt.Errorf("invalid -policy: %w", err)
	}
	if _, err := sand.ParseColor(c.Color); err != nil {
		return fmt.Errorf("invalid -color: %w", err)
	}
	return nil
}

// SimOptions converts the flags into the option map consumed by sim factories.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"w":      strconv.Itoa(c.Width),
		"h":      strconv.Itoa(c.Height),
		"seed":   strconv.FormatInt(c.Seed, 10),
		"radius": strconv.Itoa(c.Radius),
		"policy": c.Policy,
		"color":  c.Color,
	}
}

// WindowTitle names the GUI window after the running sim.
func WindowTitle(sim string) string { return "sandfall: " + sim }
