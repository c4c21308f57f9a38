package core

// Empty marks a lattice cell with no occupant.
const Empty int32 = -1

// LabelGrid stores a square-or-rectangular grid of int32 labels in row-major
// order. Unlabelled cells hold Empty.
type LabelGrid struct {
	W, H int
	data []int32
}

// NewLabelGrid allocates a grid with the given dimensions, every cell Empty.
func NewLabelGrid(w, h int) *LabelGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	g := &LabelGrid{W: w, H: h, data: make([]int32, w*h)}
	g.Clear()
	return g
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *LabelGrid) Cells() []int32 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *LabelGrid) Index(x, y int) int { return y*g.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *LabelGrid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// At returns the label at (x, y) after wrapping.
func (g *LabelGrid) At(x, y int) int32 {
	x, y = g.Wrap(x, y)
	return g.data[g.Index(x, y)]
}

// Set writes label v at (x, y) after wrapping.
func (g *LabelGrid) Set(x, y int, v int32) {
	x, y = g.Wrap(x, y)
	g.data[g.Index(x, y)] = v
}

// Occupied counts the cells that are not Empty.
func (g *LabelGrid) Occupied() int {
	n := 0
	for _, v := range g.data {
		if v != Empty {
			n++
		}
	}
	return n
}

// Clear resets every cell to Empty.
func (g *LabelGrid) Clear() {
	for i := range g.data {
		g.data[i] = Empty
	}
}
