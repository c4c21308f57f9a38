package cca

import "strconv"

// Config controls the lattice dimensions, particle count and randomness of
// an Engine.
type Config struct {
	// Size is the linear lattice dimension L; the lattice has L*L cells.
	Size int
	// Particles is the number of particles placed by Initialize.
	Particles int
	// Seed feeds the engine RNG.
	Seed int64
	// PlacementAttempts caps the rejection-sampling draws per particle.
	// Zero selects DefaultAttemptFactor*L*L.
	PlacementAttempts int
}

// DefaultAttemptFactor scales the lattice area into the default per-particle
// placement budget.
const DefaultAttemptFactor = 32

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Size: 50, Particles: 500, Seed: 1337}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["l"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["n"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Particles = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["attempts"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.PlacementAttempts = parsed
		}
	}
	return c
}

// Validate reports whether the configuration can build an Engine.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return ErrInvalidSize
	}
	if c.Particles <= 0 {
		return ErrInvalidParticles
	}
	if c.Particles > c.Size*c.Size {
		return capacityError(c.Size, c.Particles)
	}
	if c.PlacementAttempts < 0 {
		return ErrInvalidAttempts
	}
	return nil
}

func (c Config) attempts() int {
	if c.PlacementAttempts > 0 {
		return c.PlacementAttempts
	}
	return DefaultAttemptFactor * c.Size * c.Size
}
