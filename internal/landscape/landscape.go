// Package landscape builds the land/water grid the simulation runs on.
//
// Generation draws one uniform value per interior cell from an explicitly
// constructed PRNG, in row-major order. That draw order is part of the
// reproducibility contract: for a given seed every implementation must
// consume the stream identically to produce the same landscape.
package landscape

import (
	"github.com/Ulixes-8/Predator-Prey-Implementation/internal/core"
	"github.com/Ulixes-8/Predator-Prey-Implementation/pkg/rng"
)

// Generate produces a halo-padded landscape grid where 1 is land and 0 is
// water. Each interior cell is land iff its draw is less than or equal to
// landProportion; the boundary value counts as land. The halo stays water.
func Generate(width, height int, src *rng.Source, landProportion float64) *core.IntGrid {
	ls := core.NewIntGrid(width, height)
	for i := 1; i <= height; i++ {
		for j := 1; j <= width; j++ {
			if src.Float64() <= landProportion {
				ls.Set(i, j, 1)
			}
		}
	}
	return ls
}

// Smooth applies majority-rule passes that turn mostly-water cells into
// water and mostly-land cells into land, reducing isolated cells.
//
// The update is in place and order dependent: within a single pass, cells
// later in row-major order see the already-updated values of earlier cells.
// A double-buffered rewrite would produce a different landscape and breaks
// output equivalence with the reference results.
func Smooth(ls *core.IntGrid, passes int) {
	for p := 0; p < passes; p++ {
		for i := 1; i <= ls.H; i++ {
			for j := 1; j <= ls.W; j++ {
				sum := ls.At(i, j) + ls.At(i-1, j) + ls.At(i+1, j) + ls.At(i, j-1) + ls.At(i, j+1)
				if sum < 2 {
					ls.Set(i, j, 0)
				}
				if sum > 2 {
					ls.Set(i, j, 1)
				}
			}
		}
	}
}

// Neighbors precomputes, for every interior cell, how many of its four
// direct neighbors are land. The counts weight the diffusion term; water
// cells get a count too but the engines never read it.
func Neighbors(ls *core.IntGrid) *core.IntGrid {
	nb := core.NewIntGrid(ls.W, ls.H)
	for i := 1; i <= ls.H; i++ {
		for j := 1; j <= ls.W; j++ {
			nb.Set(i, j, ls.At(i-1, j)+ls.At(i+1, j)+ls.At(i, j-1)+ls.At(i, j+1))
		}
	}
	return nb
}

// CountLand returns the number of land cells in the grid.
func CountLand(ls *core.IntGrid) int {
	n := 0
	for _, v := range ls.Cells() {
		if v != 0 {
			n++
		}
	}
	return n
}
