//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"sandfall/internal/app"
	"sandfall/internal/core"
	"sandfall/internal/sims/sand"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (available: %s)", cfg.Sim, strings.Join(core.SimNames(), ", "))
	}
	engine, ok := factory(cfg.SimOptions()).(*sand.Engine)
	if !ok {
		log.Fatalf("sim %q has no interactive frontend", cfg.Sim)
	}
	engine.Reset(cfg.Seed)

	game := app.New(engine, cfg.Scale, cfg.HUDWidth, cfg.Seed)
	size := engine.Size()

	ebiten.SetWindowTitle(app.WindowTitle(engine.Name()))
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
