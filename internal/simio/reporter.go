package simio

import (
	"errors"
	"path/filepath"

	"github.com/Ulixes-8/Predator-Prey-Implementation/internal/render"
	"github.com/Ulixes-8/Predator-Prey-Implementation/internal/sim"
)

// Reporter implements sim.Recorder. Every snapshot appends one CSV record
// and writes one PPM image into the output directory; a chart and an MJPEG
// recording can be enabled on top.
type Reporter struct {
	dir   string
	csv   *AveragesWriter
	video *VideoRecorder

	chartPath string
	times     []float64
	miceAvg   []float64
	foxesAvg  []float64
}

// NewReporter creates the averages CSV in dir and returns a reporter
// writing all snapshot files there.
func NewReporter(dir string) (*Reporter, error) {
	csv, err := NewAveragesWriter(filepath.Join(dir, "averages.csv"))
	if err != nil {
		return nil, err
	}
	return &Reporter{dir: dir, csv: csv}, nil
}

// EnableChart makes Close render a population chart to path.
func (r *Reporter) EnableChart(path string) {
	r.chartPath = path
}

// EnableVideo records one frame per snapshot into an MJPEG AVI at path.
func (r *Reporter) EnableVideo(path string, width, height, fps int) error {
	v, err := NewVideoRecorder(path, width, height, fps)
	if err != nil {
		return err
	}
	r.video = v
	return nil
}

// Snapshot writes the outputs for one output interval.
func (r *Reporter) Snapshot(step int, time float64, w *sim.World, miceMax, foxesMax, miceAvg, foxesAvg float64) error {
	if err := r.csv.Append(step, time, miceAvg, foxesAvg); err != nil {
		return err
	}
	if err := WritePPM(filepath.Join(r.dir, PPMName(step)), w.Landscape, w.Mice, w.Foxes, miceMax, foxesMax); err != nil {
		return err
	}
	if r.chartPath != "" {
		r.times = append(r.times, time)
		r.miceAvg = append(r.miceAvg, miceAvg)
		r.foxesAvg = append(r.foxesAvg, foxesAvg)
	}
	if r.video != nil {
		frame := render.FrameRGBA(w.Landscape, w.Mice, w.Foxes, miceMax, foxesMax)
		if err := r.video.AddFrame(frame); err != nil {
			return err
		}
	}
	return nil
}

// Close flushes the CSV, finalizes the video, and renders the chart if one
// was requested.
func (r *Reporter) Close() error {
	var errs []error
	if r.csv != nil {
		errs = append(errs, r.csv.Close())
	}
	if r.video != nil {
		errs = append(errs, r.video.Close())
	}
	if r.chartPath != "" {
		errs = append(errs, WriteChart(r.chartPath, r.times, r.miceAvg, r.foxesAvg))
	}
	return errors.Join(errs...)
}
