// Package config loads the headless run configuration. Values come from
// defaults, then an optional YAML file, then CCA_* environment variables;
// command-line flags are applied by the caller before Validate.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"mad-cca/internal/runner"
	"mad-cca/pkg/cca"
)

// EnvPrefix prefixes every environment variable, e.g. CCA_LATTICE_SIZE.
const EnvPrefix = "CCA_"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config is the complete headless configuration.
type Config struct {
	Lattice LatticeConfig `yaml:"lattice" envPrefix:"LATTICE_"`
	Run     RunConfig     `yaml:"run" envPrefix:"RUN_"`
	Sweep   SweepConfig   `yaml:"sweep" envPrefix:"SWEEP_"`
	Logging LoggingConfig `yaml:"logging" envPrefix:"LOG_"`
	Metrics MetricsConfig `yaml:"metrics" envPrefix:"METRICS_"`
}

// LatticeConfig sizes the engine.
type LatticeConfig struct {
	Size      int   `yaml:"size" env:"SIZE" validate:"min=1"`
	Particles int   `yaml:"particles" env:"PARTICLES" validate:"min=1"`
	Seed      int64 `yaml:"seed" env:"SEED"`
	// PlacementAttempts of 0 selects the engine default.
	PlacementAttempts int `yaml:"placement_attempts" env:"PLACEMENT_ATTEMPTS" validate:"min=0"`
}

// RunConfig controls the driving loop.
type RunConfig struct {
	MaxSteps     int  `yaml:"max_steps" env:"MAX_STEPS" validate:"min=0"`
	BoxEvery     int  `yaml:"box_every" env:"BOX_EVERY" validate:"min=0"`
	StopAtSingle bool `yaml:"stop_at_single" env:"STOP_AT_SINGLE"`
	Verify       bool `yaml:"verify" env:"VERIFY"`
}

// SweepConfig controls ensemble runs.
type SweepConfig struct {
	Runs    int `yaml:"runs" env:"RUNS" validate:"min=1,max=100000"`
	Workers int `yaml:"workers" env:"WORKERS" validate:"min=0"`
}

// LoggingConfig selects the zap level and encoder.
type LoggingConfig struct {
	Level  string `yaml:"level" env:"LEVEL" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" env:"FORMAT" validate:"oneof=console json"`
}

// MetricsConfig enables the Prometheus endpoint when Addr is set.
type MetricsConfig struct {
	Addr string `yaml:"addr" env:"ADDR" validate:"omitempty,hostname_port"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	engine := cca.DefaultConfig()
	opts := runner.DefaultOptions()
	return &Config{
		Lattice: LatticeConfig{Size: engine.Size, Particles: engine.Particles, Seed: engine.Seed},
		Run:     RunConfig{MaxSteps: opts.MaxSteps, BoxEvery: opts.BoxEvery, StopAtSingle: opts.StopAtSingle},
		Sweep:   SweepConfig{Runs: 8},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

// Load returns the defaults overlaid with the YAML file at path (skipped
// when path is empty) and the process environment. The result is not
// validated.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(nil); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile reads a YAML file over the defaults.
func LoadFromFile(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.mergeFile(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

// ApplyEnv overlays CCA_* variables from environ, or from the process
// environment when environ is nil. Unset variables keep their value.
func (c *Config) ApplyEnv(environ map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(c, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Engine returns the engine configuration.
func (c *Config) Engine() cca.Config {
	return cca.Config{
		Size:              c.Lattice.Size,
		Particles:         c.Lattice.Particles,
		Seed:              c.Lattice.Seed,
		PlacementAttempts: c.Lattice.PlacementAttempts,
	}
}

// Options returns the runner options.
func (c *Config) Options() runner.Options {
	return runner.Options{
		MaxSteps:     c.Run.MaxSteps,
		BoxEvery:     c.Run.BoxEvery,
		StopAtSingle: c.Run.StopAtSingle,
		Verify:       c.Run.Verify,
	}
}
