//go:build ebiten

package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Ulixes-8/Predator-Prey-Implementation/internal/core"
	"github.com/Ulixes-8/Predator-Prey-Implementation/internal/render"
	"github.com/Ulixes-8/Predator-Prey-Implementation/internal/sim"
	"github.com/Ulixes-8/Predator-Prey-Implementation/internal/ui"
)

// Game adapts a simulation run to the ebiten.Game interface for the live
// viewer. The simulation advances at a fixed step rate decoupled from the
// render frame rate.
type Game struct {
	params  sim.Params
	world   *sim.World
	eng     sim.Engine
	painter *render.GridPainter
	overlay *ui.Overlay
	clock   *core.StepClock

	scale    int
	paused   bool
	tickOnce bool
	step     int
}

// New constructs a Game for the provided world and engine.
func New(p sim.Params, w *sim.World, eng sim.Engine, scale, tps int) *Game {
	return &Game{
		params:  p,
		world:   w,
		eng:     eng,
		painter: render.NewGridPainter(w.Width, w.Height),
		overlay: ui.NewOverlay(),
		clock:   core.NewStepClock(tps),
		scale:   scale,
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	g.overlay.Update()

	steps := 0
	if g.tickOnce {
		steps = 1
		g.tickOnce = false
	} else if !g.paused {
		steps = g.clock.Tick()
	}
	for ; steps > 0; steps-- {
		g.eng.Step(g.params, g.world)
		g.world.Swap()
		g.step++
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	miceMax := sim.MaxDensity(g.world.Mice)
	foxesMax := sim.MaxDensity(g.world.Foxes)
	g.painter.Blit(screen, g.world.Landscape, g.world.Mice, g.world.Foxes, miceMax, foxesMax, g.scale)
	g.overlay.Draw(screen, g.world, g.step, g.params.DT)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.world.Width * g.scale, g.world.Height * g.scale
}
