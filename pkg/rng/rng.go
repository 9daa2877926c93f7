package rng

import "math/rand/v2"

// Source is a thin convenience wrapper around math/rand/v2 for deterministic
// seeding. Landscape generation consumes exactly one Float64 per interior
// cell in row-major order, so reproducibility depends on callers sharing a
// Source only when they intend to share its stream.
type Source struct {
	r *rand.Rand
}

// New creates a deterministic Source using the provided seed.
func New(seed int64) *Source {
	return &Source{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a uniformly distributed value in [0, 1).
func (s *Source) Float64() float64 {
	return s.r.Float64()
}

// IntN returns a random int in [0, n).
func (s *Source) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return s.r.IntN(n)
}

// Rand exposes the underlying rand.Rand for advanced use.
func (s *Source) Rand() *rand.Rand { return s.r }
