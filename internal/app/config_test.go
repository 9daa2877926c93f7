package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestBindParsesAllFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{
		"-r", "0.2", "-a", "0.1", "-k", "0.3", "-b", "0.04", "-m", "0.1", "-l", "0.3",
		"-dt", "0.25", "-t", "5", "-d", "100", "-ls", "42", "-lp", "0.5", "-lsm", "3",
		"-f", "animals.dat", "-engine", "parallel", "-outdir", "/tmp/out",
	})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Params.BirthMice != 0.2 || cfg.Params.DiffusionFoxes != 0.3 {
		t.Fatal("rate flags not bound")
	}
	if cfg.Params.LandscapeSeed != 42 || cfg.Params.LandProportion != 0.5 || cfg.Params.SmoothPasses != 3 {
		t.Fatal("landscape flags not bound")
	}
	if cfg.AnimalFile != "animals.dat" || cfg.Engine != "parallel" || cfg.OutDir != "/tmp/out" {
		t.Fatal("file/engine flags not bound")
	}
}

func TestValidateRequiresAnimalFile(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error without -f")
	}
	cfg.AnimalFile = "animals.dat"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
}

func TestValidateRejectsBadParams(t *testing.T) {
	cfg := NewConfig()
	cfg.AnimalFile = "animals.dat"
	cfg.Params.DT = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative dt")
	}
}

func TestBuildWorld(t *testing.T) {
	path := filepath.Join(t.TempDir(), "animals.dat")
	if err := os.WriteFile(path, []byte("3 3\n23 23 23\n23 23 23\n23 23 23\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := NewConfig()
	cfg.AnimalFile = path
	cfg.Params.LandProportion = 1.0 // all land, regardless of seed

	w, err := cfg.BuildWorld()
	if err != nil {
		t.Fatal(err)
	}
	if w.Width != 3 || w.Height != 3 {
		t.Fatalf("world is %dx%d, want 3x3", w.Width, w.Height)
	}
	if w.LandCount != 9 {
		t.Fatalf("LandCount = %d, want 9", w.LandCount)
	}
	if w.Mice.At(2, 2) != 2 || w.Foxes.At(2, 2) != 3 {
		t.Fatal("densities not unpacked from the animal file")
	}
}

func TestBuildWorldMissingFile(t *testing.T) {
	cfg := NewConfig()
	cfg.AnimalFile = filepath.Join(t.TempDir(), "missing.dat")
	if _, err := cfg.BuildWorld(); err == nil {
		t.Fatal("expected error for missing animal file")
	}
}
