// Package vector implements the update engine as whole-grid array
// arithmetic: neighbor-sum grids are built first, then the update formula is
// applied to every interior cell in bulk and water is re-masked afterwards.
// Applying the formula on water cells would not naturally yield zero there
// (the diffusion term picks up inflow from land neighbors), so the final
// mask is load-bearing, not defensive.
package vector

import (
	"github.com/Ulixes-8/Predator-Prey-Implementation/internal/core"
	"github.com/Ulixes-8/Predator-Prey-Implementation/internal/sim"
)

type engine struct{}

func (engine) Name() string { return "vector" }

func (engine) Step(p sim.Params, w *sim.World) {
	mNbr := core.NewGrid(w.Width, w.Height)
	fNbr := core.NewGrid(w.Width, w.Height)
	neighborSums(w.Mice, mNbr)
	neighborSums(w.Foxes, fNbr)

	stride := w.Mice.Stride()
	ms := w.Mice.Cells()
	fs := w.Foxes.Cells()
	msNew := w.MiceNext.Cells()
	fsNew := w.FoxesNext.Cells()
	mSums := mNbr.Cells()
	fSums := fNbr.Cells()
	nbs := w.Neighbors.Cells()

	for i := 1; i <= w.Height; i++ {
		lo := i*stride + 1
		hi := lo + w.Width
		for idx := lo; idx < hi; idx++ {
			m := ms[idx]
			f := fs[idx]
			nb := float64(nbs[idx])
			dM := p.BirthMice*m - p.DeathMice*m*f + p.DiffusionMice*(mSums[idx]-nb*m)
			dF := p.BirthFoxes*m*f - p.DeathFoxes*f + p.DiffusionFoxes*(fSums[idx]-nb*f)
			newM := m + p.DT*dM
			if newM < 0 {
				newM = 0
			}
			newF := f + p.DT*dF
			if newF < 0 {
				newF = 0
			}
			msNew[idx] = newM
			fsNew[idx] = newF
		}
	}

	sim.MaskWater(w.MiceNext, w.Landscape)
	sim.MaskWater(w.FoxesNext, w.Landscape)
}

// neighborSums fills out's interior with the elementwise sum of each cell's
// four direct neighbors, accumulated up, down, left, right so the result is
// bit-identical to the scalar engine's per-cell sums.
func neighborSums(g, out *core.Grid) {
	stride := g.Stride()
	cells := g.Cells()
	sums := out.Cells()
	for i := 1; i <= g.H; i++ {
		up := cells[(i-1)*stride+1 : (i-1)*stride+1+g.W]
		down := cells[(i+1)*stride+1 : (i+1)*stride+1+g.W]
		left := cells[i*stride : i*stride+g.W]
		right := cells[i*stride+2 : i*stride+2+g.W]
		row := sums[i*stride+1 : i*stride+1+g.W]
		for j := range row {
			row[j] = up[j] + down[j] + left[j] + right[j]
		}
	}
}

func init() {
	sim.RegisterEngine("vector", engine{})
}
