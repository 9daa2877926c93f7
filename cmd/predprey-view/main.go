//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Ulixes-8/Predator-Prey-Implementation/internal/app"
	"github.com/Ulixes-8/Predator-Prey-Implementation/internal/sim"

	_ "github.com/Ulixes-8/Predator-Prey-Implementation/internal/engines/parallel"
	_ "github.com/Ulixes-8/Predator-Prey-Implementation/internal/engines/scalar"
	_ "github.com/Ulixes-8/Predator-Prey-Implementation/internal/engines/vector"
)

func main() {
	cfg := app.NewConfig()
	cfg.BindViewer(flag.CommandLine)
	flag.Parse()

	eng, ok := sim.Engines()[cfg.Engine]
	if !ok {
		log.Fatalf("unknown engine %q (available: %v)", cfg.Engine, sim.EngineNames())
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Error: %v", err)
	}

	world, err := cfg.BuildWorld()
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	fmt.Printf("Width: %d Height: %d\n", world.Width, world.Height)

	game := app.New(cfg.Params, world, eng, cfg.Scale, cfg.TPS)

	ebiten.SetWindowTitle("predprey: " + eng.Name())
	ebiten.SetWindowSize(world.Width*cfg.Scale, world.Height*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
