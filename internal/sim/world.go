package sim

import (
	"github.com/Ulixes-8/Predator-Prey-Implementation/internal/core"
	"github.com/Ulixes-8/Predator-Prey-Implementation/internal/landscape"
)

// World bundles the immutable landscape with the mutable population buffers.
// Engines read the current buffers and write the next buffers; the driver
// swaps them after every full pass, so within one step the two never alias.
type World struct {
	Width, Height int

	Landscape *core.IntGrid // 1 land, 0 water; fixed after smoothing
	Neighbors *core.IntGrid // land-neighbor counts, fixed
	LandCount int

	Mice  *core.Grid
	Foxes *core.Grid

	MiceNext  *core.Grid
	FoxesNext *core.Grid
}

// NewWorld assembles a world from loaded population densities and a finished
// landscape. Both densities are masked to zero on water up front; engines
// re-apply the mask every step so drift can never leak onto water.
func NewWorld(mice, foxes *core.Grid, ls *core.IntGrid) *World {
	MaskWater(mice, ls)
	MaskWater(foxes, ls)
	return &World{
		Width:     ls.W,
		Height:    ls.H,
		Landscape: ls,
		Neighbors: landscape.Neighbors(ls),
		LandCount: landscape.CountLand(ls),
		Mice:      mice,
		Foxes:     foxes,
		MiceNext:  mice.Clone(),
		FoxesNext: foxes.Clone(),
	}
}

// Size reports the interior grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.Width, H: w.Height} }

// Swap promotes the next buffers to current.
func (w *World) Swap() {
	w.Mice, w.MiceNext = w.MiceNext, w.Mice
	w.Foxes, w.FoxesNext = w.FoxesNext, w.Foxes
}

// MaskWater zeroes the density grid wherever the landscape is water,
// halo included.
func MaskWater(g *core.Grid, ls *core.IntGrid) {
	cells := g.Cells()
	land := ls.Cells()
	for i := range cells {
		if land[i] == 0 {
			cells[i] = 0
		}
	}
}
