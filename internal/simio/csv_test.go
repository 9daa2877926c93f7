package simio

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAveragesWriterFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "averages.csv")
	w, err := NewAveragesWriter(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Append(0, 0.0, 1.6875, 1.5); err != nil {
		t.Fatal(err)
	}
	if err := w.Append(10, 5.0, 0.0625, 2); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "Timestep,Time,Mice,Foxes\n" +
		"0,0.0,1.68750000000000000,1.50000000000000000\n" +
		"10,5.0,0.06250000000000000,2.00000000000000000\n"
	if string(got) != want {
		t.Fatalf("csv content:\n%s\nwant:\n%s", got, want)
	}
}

func TestAveragesWriterTruncatesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "averages.csv")
	if err := os.WriteFile(path, []byte("stale\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := NewAveragesWriter(path)
	if err != nil {
		t.Fatal(err)
	}
	w.Close()

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "Timestep,Time,Mice,Foxes\n" {
		t.Fatalf("csv content: %q", got)
	}
}
