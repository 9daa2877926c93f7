package sim

import "sort"

// Engine advances the populations by one time step. Implementations read
// only w.Mice/w.Foxes, write only w.MiceNext/w.FoxesNext, and must force
// water cells to zero in the next buffers. All registered engines are
// required to produce numerically identical results cell for cell; the
// per-cell neighbor summation order (up, down, left, right) is part of
// that contract even when cells are processed in parallel.
type Engine interface {
	Name() string
	Step(p Params, w *World)
}

var engines = map[string]Engine{}

// RegisterEngine adds an engine under the provided name. Engines register
// themselves from init so importing an engine package is enough to make it
// selectable.
func RegisterEngine(name string, e Engine) {
	if name == "" || e == nil {
		return
	}
	engines[name] = e
}

// Engines exposes the registry of available update engines.
func Engines() map[string]Engine {
	return engines
}

// EngineNames returns the registered engine names in sorted order.
func EngineNames() []string {
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
