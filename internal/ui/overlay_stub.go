//go:build !ebiten

package ui

import "github.com/Ulixes-8/Predator-Prey-Implementation/internal/sim"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay() *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(_ any, _ *sim.World, _ int, _ float64) {}
