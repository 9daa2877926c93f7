//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Ulixes-8/Predator-Prey-Implementation/internal/core"
)

// GridPainter updates a single RGBA image from the density grids and draws
// it scaled onto the screen.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a w*h interior.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the current state into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, ls *core.IntGrid, mice, foxes *core.Grid, miceMax, foxesMax float64, scale int) {
	if ls.W != gp.w || ls.H != gp.h {
		return
	}
	FillRGBA(gp.buf, ls, mice, foxes, miceMax, foxesMax)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
