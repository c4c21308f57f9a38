//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"

	"mad-cca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	tileFill   = color.RGBA{R: 255, G: 255, B: 255, A: 28}
	tileStroke = color.RGBA{R: 255, G: 230, B: 120, A: 200}
)

// Overlay outlines the occupied box-counting tiles of the current size on
// top of the lattice. B cycles the tile size.
type Overlay struct {
	sim   core.Sim
	scale int
	cycle boxCycle
	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale, cycle: newBoxCycle()}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// SetSim points the overlay at a rebuilt simulation and turns it off.
func (o *Overlay) SetSim(sim core.Sim) {
	o.sim = sim
	o.cycle = newBoxCycle()
}

// Update handles the overlay key bindings.
func (o *Overlay) Update() {
	tiler, ok := o.sim.(BoxTiler)
	if !ok {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		o.cycle.advance(tiler.BoxSizes())
	}
}

// Label describes the active tile size for the HUD, or "" when hidden.
func (o *Overlay) Label() string {
	tiler, ok := o.sim.(BoxTiler)
	if !ok {
		return ""
	}
	size, on := o.cycle.current(tiler.BoxSizes())
	if !on {
		return ""
	}
	return fmt.Sprintf("boxes %dx%d: %d", size, size, len(tiler.BoxTiles(size)))
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	tiler, ok := o.sim.(BoxTiler)
	if !ok {
		return
	}
	size, on := o.cycle.current(tiler.BoxSizes())
	if !on {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	for _, tile := range tiler.BoxTiles(size) {
		r := scaleRect(tile, scale)
		o.fillRect(screen, r, tileFill)
		if r.Dx() >= 3 {
			o.strokeRect(screen, r, tileStroke)
		}
	}
}

func (o *Overlay) strokeRect(screen *ebiten.Image, r image.Rectangle, col color.RGBA) {
	o.fillRect(screen, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), col)
	o.fillRect(screen, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), col)
	o.fillRect(screen, image.Rect(r.Min.X, r.Min.Y+1, r.Min.X+1, r.Max.Y-1), col)
	o.fillRect(screen, image.Rect(r.Max.X-1, r.Min.Y+1, r.Max.X, r.Max.Y-1), col)
}

func (o *Overlay) fillRect(screen *ebiten.Image, r image.Rectangle, col color.RGBA) {
	if r.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
