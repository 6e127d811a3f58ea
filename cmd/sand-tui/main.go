package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"sandfall/internal/app"
	"sandfall/internal/sims/sand"
	"sandfall/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Width, cfg.Height = 0, 0
	cfg.BindTerminal(flag.CommandLine)
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("open terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init terminal: %v", err)
	}

	// Size the grid to the terminal unless -w/-h were given.
	cols, rows := screen.Size()
	if cfg.Width <= 0 {
		cfg.Width = cols
	}
	if cfg.Height <= 0 {
		cfg.Height = (rows - 1) * 2
	}
	if err := cfg.Validate(); err != nil {
		screen.Fini()
		log.Fatal(err)
	}

	engine := sand.NewWithConfig(sand.FromMap(cfg.SimOptions()))
	engine.Reset(cfg.Seed)
	session := term.NewSession(screen, engine, cfg.TPS, cfg.Seed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = session.Run(ctx)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
	log.Printf("stopped after %d ticks with %d particles", engine.Tick(), engine.Grid().Count())
}
