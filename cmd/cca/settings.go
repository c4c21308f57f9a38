package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mad-cca/internal/config"
	"mad-cca/internal/logging"
)

// addLatticeFlags registers the engine flags shared by every run command.
func addLatticeFlags(cmd *cobra.Command) {
	d := config.Default()
	cmd.Flags().Int("size", d.Lattice.Size, "lattice size L")
	cmd.Flags().Int("particles", d.Lattice.Particles, "number of particles N")
	cmd.Flags().Int64("seed", d.Lattice.Seed, "RNG seed")
	cmd.Flags().Int("steps", d.Run.MaxSteps, "stop after this many steps (0: run until one cluster)")
	cmd.Flags().Int("box-every", d.Run.BoxEvery, "report progress every n steps (0: start and end only)")
	cmd.Flags().Bool("verify", d.Run.Verify, "check every engine invariant after each step")
}

// loadSettings resolves defaults, the config file, the environment and the
// flags the user actually set, in that order, then validates the result.
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	fs := cmd.Flags()
	if fs.Changed("log-level") {
		cfg.Logging.Level, _ = fs.GetString("log-level")
	}
	if fs.Changed("log-format") {
		cfg.Logging.Format, _ = fs.GetString("log-format")
	}
	if fs.Changed("size") {
		cfg.Lattice.Size, _ = fs.GetInt("size")
	}
	if fs.Changed("particles") {
		cfg.Lattice.Particles, _ = fs.GetInt("particles")
	}
	if fs.Changed("seed") {
		cfg.Lattice.Seed, _ = fs.GetInt64("seed")
	}
	if fs.Changed("steps") {
		cfg.Run.MaxSteps, _ = fs.GetInt("steps")
	}
	if fs.Changed("box-every") {
		cfg.Run.BoxEvery, _ = fs.GetInt("box-every")
	}
	if fs.Changed("verify") {
		cfg.Run.Verify, _ = fs.GetBool("verify")
	}
	if fs.Lookup("metrics-addr") != nil && fs.Changed("metrics-addr") {
		cfg.Metrics.Addr, _ = fs.GetString("metrics-addr")
	}
	if fs.Lookup("runs") != nil && fs.Changed("runs") {
		cfg.Sweep.Runs, _ = fs.GetInt("runs")
	}
	if fs.Lookup("workers") != nil && fs.Changed("workers") {
		cfg.Sweep.Workers, _ = fs.GetInt("workers")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg *config.Config) (*zap.Logger, error) {
	return logging.New(cfg.Logging.Level, cfg.Logging.Format, cmd.ErrOrStderr())
}

func jsonOutput(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")
	return v
}
