package core

import "time"

// maxCatchUp bounds how many owed steps a single Tick can report, so a
// stalled frame cannot trigger an unbounded burst of updates.
const maxCatchUp = 4

// StepClock paces simulation updates at a steady steps-per-second rate,
// independent of the render frame rate.
type StepClock struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewStepClock constructs a clock targeting the given steps per second.
func NewStepClock(sps int) *StepClock {
	c := &StepClock{}
	c.SetRate(sps)
	c.accumulator = c.step
	return c
}

// SetRate changes the step rate. It is safe to call from the main loop.
func (c *StepClock) SetRate(sps int) {
	if sps <= 0 {
		sps = 30
	}
	c.step = time.Second / time.Duration(sps)
}

// Tick reports how many simulation steps are owed since the last call,
// capped so a long stall cannot snowball.
func (c *StepClock) Tick() int {
	now := time.Now()
	if c.last.IsZero() {
		c.last = now
	}
	c.accumulator += now.Sub(c.last)
	c.last = now

	steps := 0
	for c.accumulator >= c.step && steps < maxCatchUp {
		c.accumulator -= c.step
		steps++
	}
	if steps == maxCatchUp {
		c.accumulator = 0
	}
	return steps
}
