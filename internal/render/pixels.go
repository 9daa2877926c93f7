package render

import (
	"image"

	"github.com/Ulixes-8/Predator-Prey-Implementation/internal/core"
)

// Water pixels use the same fixed color as the PPM output.
var waterR, waterG, waterB = uint8(0), uint8(200), uint8(255)

// FillRGBA converts the current densities into RGBA pixels in buf, which
// must hold 4*W*H bytes for the interior. The mapping mirrors the PPM
// contract: red carries the fox density and green the mice density, each
// scaled against the snapshot's per-species maximum; water is fixed cyan.
func FillRGBA(buf []byte, ls *core.IntGrid, mice, foxes *core.Grid, miceMax, foxesMax float64) {
	if len(buf) != 4*ls.W*ls.H {
		return
	}
	idx := 0
	for i := 1; i <= ls.H; i++ {
		for j := 1; j <= ls.W; j++ {
			base := idx * 4
			idx++
			if ls.At(i, j) == 0 {
				buf[base+0] = waterR
				buf[base+1] = waterG
				buf[base+2] = waterB
				buf[base+3] = 255
				continue
			}
			var mcol, fcol uint8
			if miceMax != 0 {
				mcol = uint8(int(mice.At(i, j) / miceMax * 255))
			}
			if foxesMax != 0 {
				fcol = uint8(int(foxes.At(i, j) / foxesMax * 255))
			}
			buf[base+0] = fcol
			buf[base+1] = mcol
			buf[base+2] = 0
			buf[base+3] = 255
		}
	}
}

// FrameRGBA renders the current state into a freshly allocated image, sized
// to the interior. Used for the MJPEG recording.
func FrameRGBA(ls *core.IntGrid, mice, foxes *core.Grid, miceMax, foxesMax float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, ls.W, ls.H))
	FillRGBA(img.Pix, ls, mice, foxes, miceMax, foxesMax)
	return img
}
