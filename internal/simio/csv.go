package simio

import (
	"fmt"
	"os"
)

// AveragesWriter appends population averages to the averages CSV. The row
// format is fixed: integer step, time with one decimal, densities with 17
// decimals.
type AveragesWriter struct {
	f *os.File
}

// NewAveragesWriter creates (or truncates) the CSV file and writes the
// header.
func NewAveragesWriter(path string) (*AveragesWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("averages csv: %w", err)
	}
	if _, err := f.WriteString("Timestep,Time,Mice,Foxes\n"); err != nil {
		f.Close()
		return nil, fmt.Errorf("averages csv: %w", err)
	}
	return &AveragesWriter{f: f}, nil
}

// Append writes one record.
func (w *AveragesWriter) Append(step int, time, miceAvg, foxesAvg float64) error {
	if _, err := fmt.Fprintf(w.f, "%d,%.1f,%.17f,%.17f\n", step, time, miceAvg, foxesAvg); err != nil {
		return fmt.Errorf("averages csv: %w", err)
	}
	return nil
}

// Close flushes and closes the file.
func (w *AveragesWriter) Close() error {
	return w.f.Close()
}
