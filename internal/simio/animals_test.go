package simio

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "animals.dat")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAnimalFileDigitPacking(t *testing.T) {
	path := writeFile(t, "3 2\n23 0 99\n10 5 47\n")
	w, h, mice, foxes, err := LoadAnimalFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if w != 3 || h != 2 {
		t.Fatalf("dimensions = %dx%d, want 3x2", w, h)
	}
	cases := []struct {
		i, j       int
		mouse, fox float64
	}{
		{1, 1, 2, 3},
		{1, 2, 0, 0},
		{1, 3, 9, 9},
		{2, 1, 1, 0},
		{2, 2, 0, 5},
		{2, 3, 4, 7},
	}
	for _, tc := range cases {
		if got := mice.At(tc.i, tc.j); got != tc.mouse {
			t.Errorf("mice(%d,%d) = %v, want %v", tc.i, tc.j, got, tc.mouse)
		}
		if got := foxes.At(tc.i, tc.j); got != tc.fox {
			t.Errorf("foxes(%d,%d) = %v, want %v", tc.i, tc.j, got, tc.fox)
		}
	}
}

func TestLoadAnimalFileZeroHalo(t *testing.T) {
	path := writeFile(t, "2 2\n99 99\n99 99\n")
	_, _, mice, foxes, err := LoadAnimalFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for j := 0; j < 4; j++ {
		if mice.At(0, j) != 0 || mice.At(3, j) != 0 || foxes.At(0, j) != 0 || foxes.At(3, j) != 0 {
			t.Fatalf("halo row cell %d holds density", j)
		}
	}
	for i := 0; i < 4; i++ {
		if mice.At(i, 0) != 0 || mice.At(i, 3) != 0 {
			t.Fatalf("halo column cell %d holds density", i)
		}
	}
}

func TestLoadAnimalFileSkipsBlankLines(t *testing.T) {
	path := writeFile(t, "2 2\n\n12 34\n\n\n56 78\n\n")
	_, _, mice, _, err := LoadAnimalFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if mice.At(2, 2) != 7 {
		t.Fatalf("mice(2,2) = %v, want 7", mice.At(2, 2))
	}
}

func TestLoadAnimalFileErrors(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"bad header", "two three\n1 2\n"},
		{"one dimension", "3\n1 2 3\n"},
		{"short row", "3 1\n1 2\n"},
		{"long row", "2 1\n1 2 3\n"},
		{"too few rows", "2 2\n10 20\n"},
		{"too many rows", "2 1\n10 20\n30 40\n"},
		{"non-integer value", "2 1\n10 x\n"},
		{"empty file", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, tc.content)
			if _, _, _, _, err := LoadAnimalFile(path); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestLoadAnimalFileMissing(t *testing.T) {
	if _, _, _, _, err := LoadAnimalFile(filepath.Join(t.TempDir(), "nope.dat")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
