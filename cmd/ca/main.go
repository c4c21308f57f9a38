//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"mad-cca/internal/app"
	"mad-cca/internal/core"
	_ "mad-cca/internal/sims/aggregation"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim := factory(cfg.SimParams())
	if f, ok := sim.(core.Failer); ok && f.Err() != nil {
		log.Fatal(f.Err())
	}

	game := app.New(sim, cfg)
	size := sim.Size()

	ebiten.SetWindowTitle("mad-cca: " + sim.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
