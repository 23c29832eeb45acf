//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/gamecubate/cellular-landscaper/internal/app"
	"github.com/gamecubate/cellular-landscaper/pkg/core"
	_ "github.com/gamecubate/cellular-landscaper/pkg/sims/landscape"
	_ "github.com/gamecubate/cellular-landscaper/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := core.Build(cfg.Sim, cfg.SimConfig())
	if err != nil {
		log.Fatal(err)
	}
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.Seed, cfg.Interval)
	size := sim.Size()

	ebiten.SetWindowTitle("cellular-landscaper — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
