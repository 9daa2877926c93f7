package sim

import (
	"gonum.org/v1/gonum/floats"

	"github.com/Ulixes-8/Predator-Prey-Implementation/internal/core"
)

// MeanDensity returns the average density over land cells: total mass
// divided by the land-cell count. Water and halo cells hold zero, so the
// full-slice sum only contributes interior land mass. A landscape with no
// land cells reports zero.
func MeanDensity(g *core.Grid, landCount int) float64 {
	if landCount == 0 {
		return 0
	}
	return floats.Sum(g.Cells()) / float64(landCount)
}

// MaxDensity returns the maximum density anywhere on the grid. The halo is
// zero, so the result is never negative.
func MaxDensity(g *core.Grid) float64 {
	return floats.Max(g.Cells())
}
