package sim

// Recorder receives one callback per output interval with the statistics the
// output adapters need. The world must be treated as read-only for the
// duration of the call.
type Recorder interface {
	Snapshot(step int, time float64, w *World, miceMax, foxesMax, miceAvg, foxesAvg float64) error
}

// Run executes the full simulation: floor(Duration/DT) update passes with a
// snapshot every OutputSteps steps, starting at step 0. There is no early
// termination; a parameter set that drives the densities to NaN or infinity
// runs to completion with whatever values result.
func Run(p Params, w *World, eng Engine, rec Recorder) error {
	totalSteps := p.TotalSteps()
	for i := 0; i < totalSteps; i++ {
		if i%p.OutputSteps == 0 && rec != nil {
			miceMax := MaxDensity(w.Mice)
			foxesMax := MaxDensity(w.Foxes)
			miceAvg := MeanDensity(w.Mice, w.LandCount)
			foxesAvg := MeanDensity(w.Foxes, w.LandCount)
			if err := rec.Snapshot(i, float64(i)*p.DT, w, miceMax, foxesMax, miceAvg, foxesAvg); err != nil {
				return err
			}
		}
		eng.Step(p, w)
		w.Swap()
	}
	return nil
}
