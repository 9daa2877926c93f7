package simio

import (
	"bufio"
	"fmt"
	"os"

	"github.com/Ulixes-8/Predator-Prey-Implementation/internal/core"
)

// PPMName returns the snapshot file name for a step, map_0040.ppm style.
func PPMName(step int) string {
	return fmt.Sprintf("map_%04d.ppm", step)
}

// WritePPM renders the current densities as a plain-ASCII PPM image. Land
// pixels carry the fox density in the red channel and the mice density in
// the green channel, each linearly scaled against that snapshot's
// per-species maximum and truncated to an integer; a species whose maximum
// is zero renders as zero everywhere. Water pixels are always 0 200 255.
func WritePPM(path string, ls *core.IntGrid, mice, foxes *core.Grid, miceMax, foxesMax float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ppm: %w", err)
	}
	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "P3\n%d %d\n255\n", ls.W, ls.H)
	for i := 1; i <= ls.H; i++ {
		for j := 1; j <= ls.W; j++ {
			if ls.At(i, j) == 0 {
				w.WriteString("0 200 255\n")
				continue
			}
			mcol := 0
			if miceMax != 0 {
				mcol = int(mice.At(i, j) / miceMax * 255)
			}
			fcol := 0
			if foxesMax != 0 {
				fcol = int(foxes.At(i, j) / foxesMax * 255)
			}
			fmt.Fprintf(w, "%d %d 0\n", fcol, mcol)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("ppm: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("ppm: %w", err)
	}
	return nil
}
