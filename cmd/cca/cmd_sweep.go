package main

import (
	"github.com/spf13/cobra"

	"mad-cca/internal/config"
	"mad-cca/internal/metrics"
	"mad-cca/internal/sweep"
)

func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run independent aggregations over consecutive seeds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			log, err := newLogger(cmd, cfg)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			var rec *metrics.Recorder
			if cfg.Metrics.Addr != "" {
				rec = metrics.New()
				stop, err := serveMetrics(cfg.Metrics.Addr, rec, log)
				if err != nil {
					return err
				}
				defer stop()
			}

			seeds := sweep.Seeds(cfg.Lattice.Seed, cfg.Sweep.Runs)
			sum, err := sweep.Run(cmd.Context(), cfg.Engine(), cfg.Options(), seeds, cfg.Sweep.Workers, log, rec)
			if err != nil {
				return err
			}
			return printSummary(cmd.OutOrStdout(), sum, jsonOutput(cmd))
		},
	}
	d := config.Default()
	addLatticeFlags(cmd)
	cmd.Flags().Int("runs", d.Sweep.Runs, "number of seeds, starting at --seed")
	cmd.Flags().Int("workers", d.Sweep.Workers, "concurrent runs (0: GOMAXPROCS)")
	cmd.Flags().String("metrics-addr", "", "serve Prometheus metrics on host:port while running")
	return cmd
}
