//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"mad-cca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	panelColor  = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedColor  = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	statusColor = color.RGBA{R: 240, G: 180, B: 90, A: 255}
)

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
	status     string

	controls     []controlState
	setter       core.IntParameterSetter
	panelOffsetX int
	title        string

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.title = buildTitle(sim)
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		h.controls = newControlStates(provider.ParameterControls(), width)
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		h.setter = setter
	}
	return h
}

// SetStatus sets a one-line message shown under the statistics.
func (h *HUD) SetStatus(s string) {
	if h != nil {
		h.status = s
	}
}

// Update refreshes the cached parameter snapshot and handles clicks on the
// +/- buttons. It reports whether a control changed the simulation.
func (h *HUD) Update(panelOffsetX int) bool {
	if h == nil {
		return false
	}
	h.panelOffsetX = panelOffsetX
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return false
	}
	h.snapshot = provider.Parameters()
	refreshControls(h.controls, h.snapshot)
	return h.handleInput()
}

// Draw paints the HUD panel anchored to the right edge of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelColor)
	h.drawControls()
	h.drawStats()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	return fmt.Sprintf("%s controls", strings.ToUpper(sim.Name()))
}

func (h *HUD) handleInput() bool {
	if len(h.controls) == 0 || h.setter == nil {
		return false
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return false
	}
	i, dir, ok := hitTest(h.controls, mx-h.panelOffsetX, my)
	if !ok {
		return false
	}
	next, changed := h.controls[i].target(dir)
	if !changed {
		return false
	}
	if !h.setter.SetIntParameter(h.controls[i].control.Key, next) {
		return false
	}
	h.controls[i].value = next
	return true
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline, titleColor)
	for i := range h.controls {
		s := &h.controls[i]
		y := s.top + labelBaseline
		text.Draw(h.panel, s.control.Label, face, panelPadding, y, labelColor)

		valueColor := labelColor
		if !s.hasValue {
			valueColor = mutedColor
		}
		value := s.label()
		width := text.BoundString(face, value).Dx()
		text.Draw(h.panel, value, face, s.minusRect.Min.X-buttonGap-width, y, valueColor)

		_, canDown := s.target(-1)
		_, canUp := s.target(1)
		h.drawButton(s.minusRect, "-", canDown && h.setter != nil)
		h.drawButton(s.plusRect, "+", canUp && h.setter != nil)
	}
}

func (h *HUD) drawStats() {
	face := basicfont.Face7x13
	y := controlsTop + len(h.controls)*lineHeight + statsSpacing
	for _, line := range statLines(h.snapshot, h.controls) {
		c := labelColor
		if !strings.HasPrefix(line, " ") {
			c = titleColor
		}
		text.Draw(h.panel, line, face, panelPadding, y, c)
		y += statsSpacing
	}
	if h.status != "" {
		text.Draw(h.panel, h.status, face, panelPadding, y+statsSpacing/2, statusColor)
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}
