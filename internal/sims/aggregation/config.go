package aggregation

import "mad-cca/pkg/cca"

// Bounds for the HUD controls.
const (
	MinSize      = 10
	MaxSize      = 100
	MinParticles = 100
	MaxParticles = 1000
)

// FromMap reads the engine configuration from flag-style pairs and clamps it
// for interactive use.
func FromMap(cfg map[string]string) cca.Config {
	return clampConfig(cca.FromMap(cfg))
}

func clampConfig(c cca.Config) cca.Config {
	if c.Size < 1 {
		c.Size = 1
	}
	if c.Particles < 1 {
		c.Particles = 1
	}
	if capacity := c.Size * c.Size; c.Particles > capacity {
		c.Particles = capacity
	}
	if c.PlacementAttempts < 0 {
		c.PlacementAttempts = 0
	}
	return c
}
