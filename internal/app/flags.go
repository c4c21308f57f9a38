package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim       string
	Scale     int
	TPS       int
	Seed      int64
	Size      int
	Particles int
	HUDWidth  int
	Mono      bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "cca", Scale: 10, TPS: 30, Seed: 1337, Size: 50, Particles: 500, HUDWidth: 260}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Size, "size", c.Size, "lattice size L")
	fs.IntVar(&c.Particles, "particles", c.Particles, "number of particles N")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
	fs.BoolVar(&c.Mono, "mono", c.Mono, "draw clusters in a single colour")
}

// SimParams returns the factory configuration map for the selected sim.
func (c *Config) SimParams() map[string]string {
	return map[string]string{
		"l":    strconv.Itoa(c.Size),
		"n":    strconv.Itoa(c.Particles),
		"seed": strconv.FormatInt(c.Seed, 10),
	}
}
