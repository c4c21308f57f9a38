package cca

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"

	icore "mad-cca/internal/core"
)

// BoxCounts maps a tile edge length s to the number of s*s tiles holding at
// least one particle.
type BoxCounts map[int]int

// Sizes returns the tile sizes in ascending order.
func (b BoxCounts) Sizes() []int {
	sizes := make([]int, 0, len(b))
	for s := range b {
		sizes = append(sizes, s)
	}
	slices.Sort(sizes)
	return sizes
}

// BoxCount tiles the lattice with non-overlapping s*s blocks for
// s = 1, 2, 4, ... < L and counts the occupied ones. Only whole tiles are
// counted; when s does not divide L the ragged edge is skipped.
func (e *Engine) BoxCount() BoxCounts {
	counts := BoxCounts{}
	for s := 1; s < e.l; s *= 2 {
		n := 0
		for i := 0; i+s <= e.l; i += s {
			for j := 0; j+s <= e.l; j += s {
				if e.tileOccupied(i, j, s) {
					n++
				}
			}
		}
		counts[s] = n
	}
	return counts
}

// OccupiedTiles returns the origins of the whole s*s tiles holding at least
// one particle, row by row. It returns nil when s < 1 or s > L.
func (e *Engine) OccupiedTiles(s int) []Point {
	if s < 1 || s > e.l {
		return nil
	}
	var tiles []Point
	for j := 0; j+s <= e.l; j += s {
		for i := 0; i+s <= e.l; i += s {
			if e.tileOccupied(i, j, s) {
				tiles = append(tiles, Point{X: i, Y: j})
			}
		}
	}
	return tiles
}

func (e *Engine) tileOccupied(x0, y0, s int) bool {
	cells := e.site.Cells()
	for y := y0; y < y0+s; y++ {
		row := y * e.l
		for x := x0; x < x0+s; x++ {
			if cells[row+x] != icore.Empty {
				return true
			}
		}
	}
	return false
}

// FractalDimension fits log N(s) against log(1/s) by least squares and
// returns the slope. Sizes with no occupied tile are ignored.
func FractalDimension(counts BoxCounts) (float64, error) {
	var xs, ys []float64
	for _, s := range counts.Sizes() {
		n := counts[s]
		if n <= 0 {
			continue
		}
		xs = append(xs, -math.Log(float64(s)))
		ys = append(ys, math.Log(float64(n)))
	}
	if len(xs) < 2 {
		return 0, ErrInsufficientData
	}
	_, slope := stat.LinearRegression(xs, ys, nil, false)
	return slope, nil
}
