//go:build ebiten

package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Ulixes-8/Predator-Prey-Implementation/internal/sim"
)

// Overlay draws run statistics on top of the base density render.
type Overlay struct {
	visible bool
}

// NewOverlay constructs a new overlay instance, visible by default.
func NewOverlay() *Overlay {
	return &Overlay{visible: true}
}

// Update toggles visibility on Tab.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		o.visible = !o.visible
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, w *sim.World, step int, dt float64) {
	if !o.visible {
		return
	}
	miceAvg := sim.MeanDensity(w.Mice, w.LandCount)
	foxesAvg := sim.MeanDensity(w.Foxes, w.LandCount)
	text := fmt.Sprintf(
		"step %d  time %.1f\nland %d/%d\nmice  avg %.4f max %.4f\nfoxes avg %.4f max %.4f",
		step, float64(step)*dt,
		w.LandCount, w.Width*w.Height,
		miceAvg, sim.MaxDensity(w.Mice),
		foxesAvg, sim.MaxDensity(w.Foxes),
	)
	ebitenutil.DebugPrint(screen, text)
}
