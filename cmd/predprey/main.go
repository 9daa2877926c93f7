package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/Ulixes-8/Predator-Prey-Implementation/internal/app"
	"github.com/Ulixes-8/Predator-Prey-Implementation/internal/sim"
	"github.com/Ulixes-8/Predator-Prey-Implementation/internal/simio"

	_ "github.com/Ulixes-8/Predator-Prey-Implementation/internal/engines/parallel"
	_ "github.com/Ulixes-8/Predator-Prey-Implementation/internal/engines/scalar"
	_ "github.com/Ulixes-8/Predator-Prey-Implementation/internal/engines/vector"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	fmt.Println("Predator-prey simulation", app.Version)

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
	fmt.Printf("Number of land-only squares: %d\n", world.LandCount)

	rep, err := simio.NewReporter(cfg.OutDir)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	if cfg.ChartPath != "" {
		rep.EnableChart(cfg.ChartPath)
	}
	if cfg.VideoPath != "" {
		if err := rep.EnableVideo(cfg.VideoPath, world.Width, world.Height, 10); err != nil {
			log.Fatalf("Error: %v", err)
		}
	}

	if err := sim.Run(cfg.Params, world, eng, rep); err != nil {
		rep.Close()
		log.Fatalf("Error during simulation: %v", err)
	}
	if err := rep.Close(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
