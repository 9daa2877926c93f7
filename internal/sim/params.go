package sim

import "fmt"

// Params holds the rates and control values for one simulation run. They are
// immutable once the run starts.
type Params struct {
	BirthMice     float64 // r: birth rate of mice
	DeathMice     float64 // a: rate at which foxes eat mice
	DiffusionMice float64 // k: diffusion rate of mice

	BirthFoxes     float64 // b: birth rate of foxes
	DeathFoxes     float64 // m: rate at which foxes starve
	DiffusionFoxes float64 // l: diffusion rate of foxes

	DT          float64 // time step size
	OutputSteps int     // steps between CSV/PPM snapshots
	Duration    int     // total simulated time units; total steps = floor(Duration/DT)

	LandscapeSeed  int64   // seed for landscape generation
	LandProportion float64 // fraction of cells initially land, in [0,1]
	SmoothPasses   int     // majority-rule smoothing passes
}

// DefaultParams returns the standard parameter set.
func DefaultParams() Params {
	return Params{
		BirthMice:      0.1,
		DeathMice:      0.05,
		DiffusionMice:  0.2,
		BirthFoxes:     0.03,
		DeathFoxes:     0.09,
		DiffusionFoxes: 0.2,
		DT:             0.5,
		OutputSteps:    10,
		Duration:       500,
		LandscapeSeed:  1,
		LandProportion: 0.75,
		SmoothPasses:   2,
	}
}

// TotalSteps returns the number of update passes for the run.
func (p Params) TotalSteps() int {
	return int(float64(p.Duration) / p.DT)
}

// Validate checks the parameter set before any grid is allocated or any
// output file is touched. A rate of zero is legal (it switches the term
// off); negative rates, a non-positive time step, and out-of-range landscape
// values are not.
func (p Params) Validate() error {
	rates := []struct {
		name  string
		value float64
	}{
		{"mice birth rate (r)", p.BirthMice},
		{"mice death rate (a)", p.DeathMice},
		{"mice diffusion rate (k)", p.DiffusionMice},
		{"foxes birth rate (b)", p.BirthFoxes},
		{"foxes death rate (m)", p.DeathFoxes},
		{"foxes diffusion rate (l)", p.DiffusionFoxes},
	}
	for _, r := range rates {
		if r.value < 0 {
			return fmt.Errorf("%s must be non-negative, got %v", r.name, r.value)
		}
	}
	if p.DT <= 0 {
		return fmt.Errorf("time step size (dt) must be positive, got %v", p.DT)
	}
	if p.OutputSteps <= 0 {
		return fmt.Errorf("output time step (t) must be positive, got %d", p.OutputSteps)
	}
	if p.Duration <= 0 {
		return fmt.Errorf("simulation duration (d) must be positive, got %d", p.Duration)
	}
	if p.LandProportion < 0 || p.LandProportion > 1 {
		return fmt.Errorf("landscape proportion (lp) must be between 0 and 1, got %v", p.LandProportion)
	}
	if p.SmoothPasses < 0 {
		return fmt.Errorf("landscape smoothing passes (lsm) must be non-negative, got %d", p.SmoothPasses)
	}
	return nil
}
