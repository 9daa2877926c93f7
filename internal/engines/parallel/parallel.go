// Package parallel implements the update engine with the interior rows split
// into horizontal bands, one goroutine per band. Every worker reads only the
// frozen current buffers and writes a disjoint row range of the next
// buffers, so the writes never race and no locking is needed. The per-cell
// arithmetic is the scalar engine's, in the same order, so the output is
// numerically identical regardless of how the bands are scheduled.
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/Ulixes-8/Predator-Prey-Implementation/internal/sim"
)

type engine struct{}

func (engine) Name() string { return "parallel" }

func (engine) Step(p sim.Params, w *sim.World) {
	workers := runtime.GOMAXPROCS(0)
	if workers > w.Height {
		workers = w.Height
	}
	if workers < 1 {
		workers = 1
	}

	var g errgroup.Group
	rowsPerBand := (w.Height + workers - 1) / workers
	for start := 1; start <= w.Height; start += rowsPerBand {
		end := start + rowsPerBand - 1
		if end > w.Height {
			end = w.Height
		}
		g.Go(func() error {
			stepRows(p, w, start, end)
			return nil
		})
	}
	// Workers cannot fail; Wait is the per-step barrier.
	_ = g.Wait()
}

func stepRows(p sim.Params, w *sim.World, rowStart, rowEnd int) {
	ms, fs := w.Mice, w.Foxes
	msNew, fsNew := w.MiceNext, w.FoxesNext
	for i := rowStart; i <= rowEnd; i++ {
		for j := 1; j <= w.Width; j++ {
			if w.Landscape.At(i, j) == 0 {
				msNew.Set(i, j, 0)
				fsNew.Set(i, j, 0)
				continue
			}
			nb := float64(w.Neighbors.At(i, j))
			m := ms.At(i, j)
			f := fs.At(i, j)
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
	sim.RegisterEngine("parallel", engine{})
}
