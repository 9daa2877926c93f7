package simio

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Ulixes-8/Predator-Prey-Implementation/internal/core"
	"github.com/Ulixes-8/Predator-Prey-Implementation/internal/sim"
)

func testWorld(t *testing.T) *sim.World {
	t.Helper()
	ls := core.NewIntGrid(2, 2)
	ls.Set(1, 1, 1)
	ls.Set(2, 2, 1)
	mice := core.NewGrid(2, 2)
	mice.Set(1, 1, 3)
	foxes := core.NewGrid(2, 2)
	foxes.Set(2, 2, 1)
	return sim.NewWorld(mice, foxes, ls)
}

func TestReporterWritesCSVAndPPM(t *testing.T) {
	dir := t.TempDir()
	rep, err := NewReporter(dir)
	if err != nil {
		t.Fatal(err)
	}
	w := testWorld(t)
	if err := rep.Snapshot(0, 0, w, 3, 1, 1.5, 0.5); err != nil {
		t.Fatal(err)
	}
	if err := rep.Snapshot(10, 5, w, 3, 1, 1.5, 0.5); err != nil {
		t.Fatal(err)
	}
	if err := rep.Close(); err != nil {
		t.Fatal(err)
	}

	csv, err := os.ReadFile(filepath.Join(dir, "averages.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(csv)), "\n")
	if len(lines) != 3 {
		t.Fatalf("csv has %d lines, want 3", len(lines))
	}
	for _, name := range []string{"map_0000.ppm", "map_0010.ppm"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("missing snapshot %s: %v", name, err)
		}
	}
}

func TestWriteChartNeedsTwoPoints(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.png")
	if err := WriteChart(path, []float64{0}, []float64{1}, []float64{1}); err == nil {
		t.Fatal("expected error for a single snapshot")
	}
	if err := WriteChart(path, []float64{0, 5, 10}, []float64{1, 2, 3}, []float64{3, 2, 1}); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Fatal("chart file is empty")
	}
}

func TestVideoRecorder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.avi")
	rec, err := NewVideoRecorder(path, 16, 16, 10)
	if err != nil {
		t.Fatal(err)
	}
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for i := 0; i < len(img.Pix); i += 4 {
		img.SetRGBA((i/4)%16, (i/4)/16, color.RGBA{R: 200, A: 255})
	}
	if err := rec.AddFrame(img); err != nil {
		t.Fatal(err)
	}
	if err := rec.AddFrame(img); err != nil {
		t.Fatal(err)
	}
	if err := rec.Close(); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Fatal("video file is empty")
	}
}
