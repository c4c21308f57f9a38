//go:build !ebiten

package ui

import "mad-cca/internal/core"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(core.Sim, int) *Overlay { return &Overlay{} }

// SetSim is a no-op in headless builds.
func (o *Overlay) SetSim(core.Sim) {}

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Label is always empty in headless builds.
func (o *Overlay) Label() string { return "" }

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
