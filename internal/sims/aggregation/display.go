package aggregation

import (
	"image/color"

	"mad-cca/pkg/cca"
)

// displayEmpty is the display byte of an unoccupied cell; cluster ids map to
// 1 + id mod the number of cluster colours.
const displayEmpty = 0

var clusterPalette = buildClusterPalette()

// Palette exposes the color palette used for rendering clusters.
func (s *Sim) Palette() []color.RGBA {
	return clusterPalette
}

// tableau-10 qualitative colours
var clusterColors = []color.RGBA{
	{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
	{R: 0x8c, G: 0x56, B: 0x4b, A: 0xff},
	{R: 0xe3, G: 0x77, B: 0xc2, A: 0xff},
	{R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff},
	{R: 0xbc, G: 0xbd, B: 0x22, A: 0xff},
	{R: 0x17, G: 0xbe, B: 0xcf, A: 0xff},
}

func buildClusterPalette() []color.RGBA {
	palette := make([]color.RGBA, 0, len(clusterColors)+1)
	palette = append(palette, color.RGBA{R: 12, G: 12, B: 16, A: 255})
	return append(palette, clusterColors...)
}

func encodeDisplayValue(cluster int) uint8 {
	if cluster == cca.Empty {
		return displayEmpty
	}
	return uint8(1 + cluster%len(clusterColors))
}

func (s *Sim) rebuildDisplay() {
	n := s.cfg.Size
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			s.display[y*n+x] = encodeDisplayValue(s.engine.Occupant(x, y))
		}
	}
}
