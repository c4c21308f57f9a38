package core

import "image/color"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a lattice simulation must implement for
// the viewer. Cells returns one display byte per lattice cell in row-major
// order.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// PaletteProvider is implemented by sims whose display bytes index a palette.
type PaletteProvider interface {
	Palette() []color.RGBA
}

// Finisher is implemented by sims that reach a terminal state where further
// steps change nothing of interest.
type Finisher interface {
	Done() bool
}

// Failer reports the last error from Reset, since Reset cannot return one.
type Failer interface {
	Err() error
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
