package core

// Size describes the interior dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Grid stores a halo-padded 2D grid of float64 densities in row-major order.
// W and H are the interior dimensions; the backing slice covers (H+2)*(W+2)
// cells. Interior cells occupy rows 1..H and columns 1..W. The one-cell halo
// border is zero and callers must keep it that way.
type Grid struct {
	W, H int
	data []float64
}

// NewGrid allocates a zeroed halo-padded grid for a w*h interior.
func NewGrid(w, h int) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Grid{W: w, H: h, data: make([]float64, (w+2)*(h+2))}
}

// Cells exposes the backing slice, halo included, so callers can read/write
// values directly.
func (g *Grid) Cells() []float64 { return g.data }

// Stride returns the row length of the backing slice (interior width plus
// both halo columns).
func (g *Grid) Stride() int { return g.W + 2 }

// Index returns the linear slice index for halo coordinates (row i, col j).
func (g *Grid) Index(i, j int) int { return i*(g.W+2) + j }

// At reads the value at halo coordinates (row i, col j).
func (g *Grid) At(i, j int) float64 { return g.data[i*(g.W+2)+j] }

// Set writes the value at halo coordinates (row i, col j).
func (g *Grid) Set(i, j int, v float64) { g.data[i*(g.W+2)+j] = v }

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{W: g.W, H: g.H, data: make([]float64, len(g.data))}
	copy(out.data, g.data)
	return out
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// IntGrid stores a halo-padded 2D grid of integers in row-major order, with
// the same layout as Grid. It backs the landscape (1 land, 0 water) and the
// precomputed land-neighbor counts.
type IntGrid struct {
	W, H int
	data []int
}

// NewIntGrid allocates a zeroed halo-padded integer grid for a w*h interior.
func NewIntGrid(w, h int) *IntGrid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &IntGrid{W: w, H: h, data: make([]int, (w+2)*(h+2))}
}

// Cells exposes the backing slice, halo included.
func (g *IntGrid) Cells() []int { return g.data }

// Index returns the linear slice index for halo coordinates (row i, col j).
func (g *IntGrid) Index(i, j int) int { return i*(g.W+2) + j }

// At reads the value at halo coordinates (row i, col j).
func (g *IntGrid) At(i, j int) int { return g.data[i*(g.W+2)+j] }

// Set writes the value at halo coordinates (row i, col j).
func (g *IntGrid) Set(i, j int, v int) { g.data[i*(g.W+2)+j] = v }

// Clone returns an independent copy of the grid.
func (g *IntGrid) Clone() *IntGrid {
	out := &IntGrid{W: g.W, H: g.H, data: make([]int, len(g.data))}
	copy(out.data, g.data)
	return out
}
