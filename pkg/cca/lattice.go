package cca

import (
	"fmt"

	icore "mad-cca/internal/core"
)

// Initialize clears all state and places every particle at a uniformly random
// free cell, merging it with any cluster it touches. Draws x then y per
// attempt and gives up on a particle after the configured attempt budget.
func (e *Engine) Initialize() error {
	e.reset()
	budget := e.cfg.attempts()
	for i := 0; i < e.n; i++ {
		placed := false
		for a := 0; a < budget; a++ {
			x := e.rng.IntN(e.l)
			y := e.rng.IntN(e.l)
			if e.site.At(x, y) != icore.Empty {
				continue
			}
			e.addParticle(i, x, y)
			e.checkNeighbors(x, y)
			placed = true
			break
		}
		if !placed {
			return fmt.Errorf("%w: particle %d after %d attempts (%d/%d cells occupied)",
				ErrPlacement, i, budget, i, e.l*e.l)
		}
	}
	e.ready = true
	return nil
}

// Reset reseeds the RNG and re-initializes.
func (e *Engine) Reset(seed int64) error {
	e.cfg.Seed = seed
	e.rng.Reseed(seed)
	return e.Initialize()
}

// InitializeAt places particle i at points[i] in order, merging on contact the
// same way Initialize does. Points must be distinct and inside the lattice;
// the state is untouched when validation fails.
func (e *Engine) InitializeAt(points []Point) error {
	if len(points) != e.n {
		return fmt.Errorf("%w: got %d points for %d particles", ErrPointCount, len(points), e.n)
	}
	seen := make([]bool, e.l*e.l)
	for i, p := range points {
		if p.X < 0 || p.X >= e.l || p.Y < 0 || p.Y >= e.l {
			return fmt.Errorf("%w: particle %d at (%d,%d) on %dx%d lattice", ErrOutOfRange, i, p.X, p.Y, e.l, e.l)
		}
		idx := e.site.Index(p.X, p.Y)
		if seen[idx] {
			return fmt.Errorf("%w: particle %d at (%d,%d)", ErrOccupied, i, p.X, p.Y)
		}
		seen[idx] = true
	}

	e.reset()
	for i, p := range points {
		e.addParticle(i, p.X, p.Y)
		e.checkNeighbors(p.X, p.Y)
	}
	e.ready = true
	return nil
}

func (e *Engine) reset() {
	e.site.Clear()
	for i := range e.next {
		e.next[i] = none
		e.x[i] = 0
		e.y[i] = 0
	}
	for c := range e.mass {
		e.first[c] = none
		e.last[c] = none
		e.mass[c] = 0
	}
	e.clusters = 0
	e.moving = none
	e.merges = 0
	e.steps = 0
	e.ready = false
}

// addParticle puts particle i at (x, y) as a new singleton cluster.
func (e *Engine) addParticle(i, x, y int) {
	c := e.clusters
	e.x[i] = x
	e.y[i] = y
	e.next[i] = none
	e.first[c] = i
	e.last[c] = i
	e.mass[c] = 1
	e.site.Set(x, y, int32(c))
	e.clusters++
}

func (e *Engine) place(p, c int) {
	e.site.Set(e.x[p], e.y[p], int32(c))
}

func (e *Engine) clear(p int) {
	e.site.Set(e.x[p], e.y[p], icore.Empty)
}

func (e *Engine) wrap(v int) int {
	return (v%e.l + e.l) % e.l
}
