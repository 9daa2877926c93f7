package sim

import "testing"

func TestValidateDefaults(t *testing.T) {
	if err := DefaultParams().Validate(); err != nil {
		t.Fatalf("default parameters rejected: %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Params)
	}{
		{"negative mice birth rate", func(p *Params) { p.BirthMice = -0.1 }},
		{"negative mice death rate", func(p *Params) { p.DeathMice = -1 }},
		{"negative mice diffusion", func(p *Params) { p.DiffusionMice = -0.2 }},
		{"negative fox birth rate", func(p *Params) { p.BirthFoxes = -0.03 }},
		{"negative fox death rate", func(p *Params) { p.DeathFoxes = -0.09 }},
		{"negative fox diffusion", func(p *Params) { p.DiffusionFoxes = -0.2 }},
		{"zero dt", func(p *Params) { p.DT = 0 }},
		{"negative dt", func(p *Params) { p.DT = -0.5 }},
		{"zero output interval", func(p *Params) { p.OutputSteps = 0 }},
		{"negative duration", func(p *Params) { p.Duration = -10 }},
		{"proportion above one", func(p *Params) { p.LandProportion = 1.1 }},
		{"negative proportion", func(p *Params) { p.LandProportion = -0.1 }},
		{"negative smoothing", func(p *Params) { p.SmoothPasses = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultParams()
			tc.mutate(&p)
			if err := p.Validate(); err == nil {
				t.Fatal("expected validation error, got nil")
			}
		})
	}
}

func TestValidateAllowsZeroRates(t *testing.T) {
	p := DefaultParams()
	p.BirthMice = 0
	p.DeathFoxes = 0
	p.DiffusionMice = 0
	if err := p.Validate(); err != nil {
		t.Fatalf("zero rates should be legal: %v", err)
	}
}

func TestTotalStepsFloors(t *testing.T) {
	cases := []struct {
		dt       float64
		duration int
		want     int
	}{
		{0.5, 30, 60},
		{0.5, 500, 1000},
		{0.7, 10, 14},
		{1.0, 7, 7},
		{2.0, 7, 3},
	}
	for _, tc := range cases {
		p := DefaultParams()
		p.DT = tc.dt
		p.Duration = tc.duration
		if got := p.TotalSteps(); got != tc.want {
			t.Errorf("TotalSteps(dt=%v, d=%d) = %d, want %d", tc.dt, tc.duration, got, tc.want)
		}
	}
}
