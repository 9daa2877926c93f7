// Package scalar implements the update engine as a plain per-cell loop over
// the interior. It is the oracle the other engines are equivalence-tested
// against.
package scalar

import "github.com/Ulixes-8/Predator-Prey-Implementation/internal/sim"

type engine struct{}

func (engine) Name() string { return "scalar" }

func (engine) Step(p sim.Params, w *sim.World) {
	ms, fs := w.Mice, w.Foxes
	msNew, fsNew := w.MiceNext, w.FoxesNext
	for i := 1; i <= w.Height; i++ {
		for j := 1; j <= w.Width; j++ {
			if w.Landscape.At(i, j) == 0 {
				msNew.Set(i, j, 0)
				fsNew.Set(i, j, 0)
				continue
			}
			nb := float64(w.Neighbors.At(i, j))
			m := ms.At(i, j)
			f := fs.At(i, j)
			// Neighbor sums accumulate up, down, left, right in that order;
			// the grouping of the update terms below is fixed so that every
			// engine reproduces the same floating-point result.
			mNbr := ms.At(i-1, j) + ms.At(i+1, j) + ms.At(i, j-1) + ms.At(i, j+1)
			fNbr := fs.At(i-1, j) + fs.At(i+1, j) + fs.At(i, j-1) + fs.At(i, j+1)
			dM := p.BirthMice*m - p.DeathMice*m*f + p.DiffusionMice*(mNbr-nb*m)
			dF := p.BirthFoxes*m*f - p.DeathFoxes*f + p.DiffusionFoxes*(fNbr-nb*f)
			newM := m + p.DT*dM
			if newM < 0 {
				newM = 0
			}
			newF := f + p.DT*dF
			if newF < 0 {
				newF = 0
			}
			msNew.Set(i, j, newM)
			fsNew.Set(i, j, newF)
		}
	}
}

func init() {
	sim.RegisterEngine("scalar", engine{})
}
