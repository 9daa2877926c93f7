// Package simio reads animal density files and writes every output the
// simulation produces: the averages CSV, the PPM snapshots, the optional
// population chart, and the optional MJPEG recording.
package simio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Ulixes-8/Predator-Prey-Implementation/internal/core"
)

// LoadAnimalFile parses an animal density file. The first line holds
// "width height"; each following non-blank line holds width integers, one
// row per line. Each value packs both species into decimal digits: the tens
// digit is the mice count, the units digit the foxes count. The returned
// grids are halo padded with a zero border.
func LoadAnimalFile(path string) (width, height int, mice, foxes *core.Grid, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, nil, nil, fmt.Errorf("animal file: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, 0, nil, nil, fmt.Errorf("animal file %s: %w", path, err)
		}
		return 0, 0, nil, nil, fmt.Errorf("animal file %s: missing dimension header", path)
	}
	header := strings.Fields(sc.Text())
	if len(header) != 2 {
		return 0, 0, nil, nil, fmt.Errorf("animal file %s: invalid dimensions %q", path, strings.TrimSpace(sc.Text()))
	}
	width, werr := strconv.Atoi(header[0])
	height, herr := strconv.Atoi(header[1])
	if werr != nil || herr != nil || width <= 0 || height <= 0 {
		return 0, 0, nil, nil, fmt.Errorf("animal file %s: invalid dimensions %q", path, strings.TrimSpace(sc.Text()))
	}

	mice = core.NewGrid(width, height)
	foxes = core.NewGrid(width, height)

	row := 1
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		values := strings.Fields(line)
		if len(values) != width {
			return 0, 0, nil, nil, fmt.Errorf("animal file %s: row %d has %d values, expected %d", path, row, len(values), width)
		}
		if row > height {
			return 0, 0, nil, nil, fmt.Errorf("animal file %s: more than %d rows", path, height)
		}
		for j, s := range values {
			v, err := strconv.Atoi(s)
			if err != nil {
				return 0, 0, nil, nil, fmt.Errorf("animal file %s: row %d: invalid value %q", path, row, s)
			}
			mice.Set(row, j+1, float64(v/10))
			foxes.Set(row, j+1, float64(v%10))
		}
		row++
	}
	if err := sc.Err(); err != nil {
		return 0, 0, nil, nil, fmt.Errorf("animal file %s: %w", path, err)
	}
	if row-1 != height {
		return 0, 0, nil, nil, fmt.Errorf("animal file %s: %d rows, expected %d", path, row-1, height)
	}
	return width, height, mice, foxes, nil
}
