package app

import (
	"flag"
	"fmt"

	"github.com/Ulixes-8/Predator-Prey-Implementation/internal/landscape"
	"github.com/Ulixes-8/Predator-Prey-Implementation/internal/sim"
	"github.com/Ulixes-8/Predator-Prey-Implementation/internal/simio"
	"github.com/Ulixes-8/Predator-Prey-Implementation/pkg/rng"
)

// Version is printed in the run banner.
const Version = "4.0"

// Config represents the command-line parameters for one simulation run.
type Config struct {
	Params     sim.Params
	AnimalFile string
	Engine     string

	OutDir    string
	ChartPath string
	VideoPath string

	// Viewer-only settings.
	Scale int
	TPS   int
}

// NewConfig returns a Config populated with the standard defaults.
func NewConfig() *Config {
	return &Config{
		Params: sim.DefaultParams(),
		Engine: "vector",
		OutDir: ".",
		Scale:  3,
		TPS:    30,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Float64Var(&c.Params.BirthMice, "r", c.Params.BirthMice, "birth rate of mice")
	fs.Float64Var(&c.Params.DeathMice, "a", c.Params.DeathMice, "rate at which foxes eat mice")
	fs.Float64Var(&c.Params.DiffusionMice, "k", c.Params.DiffusionMice, "diffusion rate of mice")
	fs.Float64Var(&c.Params.BirthFoxes, "b", c.Params.BirthFoxes, "birth rate of foxes")
	fs.Float64Var(&c.Params.DeathFoxes, "m", c.Params.DeathFoxes, "rate at which foxes starve")
	fs.Float64Var(&c.Params.DiffusionFoxes, "l", c.Params.DiffusionFoxes, "diffusion rate of foxes")
	fs.Float64Var(&c.Params.DT, "dt", c.Params.DT, "time step size")
	fs.IntVar(&c.Params.OutputSteps, "t", c.Params.OutputSteps, "number of time steps between outputs")
	fs.IntVar(&c.Params.Duration, "d", c.Params.Duration, "time to run the simulation")
	fs.Int64Var(&c.Params.LandscapeSeed, "ls", c.Params.LandscapeSeed, "random seed for initialising landscape")
	fs.Float64Var(&c.Params.LandProportion, "lp", c.Params.LandProportion, "average proportion of landscape that will initially be land")
	fs.IntVar(&c.Params.SmoothPasses, "lsm", c.Params.SmoothPasses, "number of smoothing passes after landscape initialisation")
	fs.StringVar(&c.AnimalFile, "f", c.AnimalFile, "input animal density file (required)")
	fs.StringVar(&c.Engine, "engine", c.Engine, "update engine to use")
	fs.StringVar(&c.OutDir, "outdir", c.OutDir, "directory for averages.csv and map images")
	fs.StringVar(&c.ChartPath, "chart", c.ChartPath, "write a population chart PNG to this path")
	fs.StringVar(&c.VideoPath, "video", c.VideoPath, "record snapshots to an MJPEG AVI at this path")
}

// BindViewer attaches the viewer-only settings as well.
func (c *Config) BindViewer(fs *flag.FlagSet) {
	c.Bind(fs)
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation steps per second")
}

// Validate checks the parameters and the required flags before any file is
// opened or created.
func (c *Config) Validate() error {
	if err := c.Params.Validate(); err != nil {
		return err
	}
	if c.AnimalFile == "" {
		return fmt.Errorf("animal density file (-f) is required")
	}
	return nil
}

// BuildWorld loads the animal densities, generates and smooths the
// landscape from an explicitly seeded generator, and assembles the world.
func (c *Config) BuildWorld() (*sim.World, error) {
	_, _, mice, foxes, err := simio.LoadAnimalFile(c.AnimalFile)
	if err != nil {
		return nil, err
	}
	ls := landscape.Generate(mice.W, mice.H, rng.New(c.Params.LandscapeSeed), c.Params.LandProportion)
	landscape.Smooth(ls, c.Params.SmoothPasses)
	return sim.NewWorld(mice, foxes, ls), nil
}
