package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mad-cca/internal/metrics"
	"mad-cca/internal/runner"
	"mad-cca/pkg/cca"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one aggregation to completion",
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

			res, err := runOnce(cmd.Context(), cfg.Engine(), cfg.Options(), log, rec)
			if res.RunID != "" {
				if perr := printResult(cmd.OutOrStdout(), res, jsonOutput(cmd)); perr != nil && err == nil {
					err = perr
				}
			}
			return err
		},
	}
	addLatticeFlags(cmd)
	cmd.Flags().String("metrics-addr", "", "serve Prometheus metrics on host:port while running")
	return cmd
}

func runOnce(ctx context.Context, cfg cca.Config, opts runner.Options, log *zap.Logger, rec *metrics.Recorder) (runner.Result, error) {
	engine, err := cca.NewWithConfig(cfg)
	if err != nil {
		return runner.Result{}, err
	}
	r, err := runner.New(engine, log, rec, opts)
	if err != nil {
		return runner.Result{}, err
	}
	return r.Run(ctx)
}

// serveMetrics exposes rec on addr until the returned stop func is called.
func serveMetrics(addr string, rec *metrics.Recorder, log *zap.Logger) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", rec.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server", zap.Error(err))
		}
	}()
	log.Info("serving metrics", zap.String("addr", ln.Addr().String()))
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
