package ui

import "image"

// BoxTiler is implemented by sims that can report occupied box-counting
// tiles in lattice coordinates.
type BoxTiler interface {
	BoxSizes() []int
	BoxTiles(size int) []image.Rectangle
}

// boxCycle steps through off, then each available tile size in turn.
type boxCycle struct {
	index int
}

func newBoxCycle() boxCycle { return boxCycle{index: -1} }

func (b *boxCycle) advance(sizes []int) {
	if len(sizes) == 0 {
		b.index = -1
		return
	}
	b.index++
	if b.index >= len(sizes) {
		b.index = -1
	}
}

func (b boxCycle) current(sizes []int) (int, bool) {
	if b.index < 0 || b.index >= len(sizes) {
		return 0, false
	}
	return sizes[b.index], true
}

// scaleRect converts a lattice rectangle to screen pixels.
func scaleRect(r image.Rectangle, scale int) image.Rectangle {
	return image.Rect(r.Min.X*scale, r.Min.Y*scale, r.Max.X*scale, r.Max.Y*scale)
}
