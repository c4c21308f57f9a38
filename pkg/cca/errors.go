package cca

import (
	"errors"
	"fmt"
)

// ErrInvalidSize indicates a non-positive lattice dimension.
var ErrInvalidSize = errors.New("lattice size must be positive")

// ErrInvalidParticles indicates a non-positive particle count.
var ErrInvalidParticles = errors.New("particle count must be positive")

// ErrInvalidAttempts indicates a negative placement attempt budget.
var ErrInvalidAttempts = errors.New("placement attempts must be non-negative")

// ErrCapacity indicates more particles than lattice cells.
var ErrCapacity = errors.New("particle count exceeds lattice capacity")

// ErrPlacement indicates random placement ran out of attempts for a particle.
var ErrPlacement = errors.New("particle placement failed")

// ErrPointCount indicates InitializeAt received the wrong number of points.
var ErrPointCount = errors.New("point count does not match particle count")

// ErrOutOfRange indicates a point outside [0, L) on either axis.
var ErrOutOfRange = errors.New("point outside lattice")

// ErrOccupied indicates two particles were given the same cell.
var ErrOccupied = errors.New("cell already occupied")

// ErrInsufficientData indicates too few box sizes with occupied tiles to fit
// a fractal dimension.
var ErrInsufficientData = errors.New("need at least two box sizes with occupied tiles")

// ErrInvariant indicates the engine state violates a structural invariant.
var ErrInvariant = errors.New("engine invariant violated")

func capacityError(size, particles int) error {
	return fmt.Errorf("%w: %d particles on %dx%d lattice (%d cells)", ErrCapacity, particles, size, size, size*size)
}
