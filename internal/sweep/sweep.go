// Package sweep runs independent aggregation engines over a set of seeds on
// a bounded worker pool.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"mad-cca/internal/logging"
	"mad-cca/internal/metrics"
	"mad-cca/internal/runner"
	"mad-cca/pkg/cca"
)

// ErrNoSeeds is returned when a sweep is asked to run nothing.
var ErrNoSeeds = errors.New("sweep: no seeds")

// Summary aggregates the per-seed results. Results are in seed order.
type Summary struct {
	Results []runner.Result `json:"results"`
	// Dimension statistics cover only runs with an estimate.
	MeanDimension float64 `json:"mean_dimension"`
	StdDimension  float64 `json:"std_dimension"`
	Estimates     int     `json:"estimates"`
	MeanSteps     float64 `json:"mean_steps"`
	Complete      int     `json:"complete"`
}

// Seeds derives n consecutive seeds starting at base.
func Seeds(base int64, n int) []int64 {
	if n <= 0 {
		return nil
	}
	seeds := make([]int64, n)
	for i := range seeds {
		seeds[i] = base + int64(i)
	}
	return seeds
}

// Run builds one engine per seed from base and drives each to its stop
// condition with at most workers in flight; workers <= 0 uses GOMAXPROCS.
// The first failure cancels the remaining runs.
func Run(ctx context.Context, base cca.Config, opts runner.Options, seeds []int64, workers int, logger *zap.Logger, rec *metrics.Recorder) (Summary, error) {
	if len(seeds) == 0 {
		return Summary{}, ErrNoSeeds
	}
	if err := opts.Validate(); err != nil {
		return Summary{}, err
	}
	if err := base.Validate(); err != nil {
		return Summary{}, err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	log := logging.OrNop(logger)
	log.Info("sweep started",
		zap.Int("runs", len(seeds)),
		zap.Int("workers", workers),
		zap.Int("size", base.Size),
		zap.Int("particles", base.Particles))

	results := make([]runner.Result, len(seeds))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, seed := range seeds {
		g.Go(func() error {
			cfg := base
			cfg.Seed = seed
			engine, err := cca.NewWithConfig(cfg)
			if err != nil {
				return err
			}
			r, err := runner.New(engine, log.With(zap.Int("index", i)), rec, opts)
			if err != nil {
				return err
			}
			res, err := r.Run(gctx)
			results[i] = res
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{Results: results}, err
	}

	sum := Summarize(results)
	log.Info("sweep finished",
		zap.Int("complete", sum.Complete),
		zap.Float64("mean_dimension", sum.MeanDimension),
		zap.Float64("std_dimension", sum.StdDimension),
		zap.Float64("mean_steps", sum.MeanSteps))
	return sum, nil
}

// Summarize computes ensemble statistics over results.
func Summarize(results []runner.Result) Summary {
	sum := Summary{Results: results}
	var dims, steps []float64
	for _, r := range results {
		steps = append(steps, float64(r.Steps))
		if r.HasDimension {
			dims = append(dims, r.Dimension)
		}
		if r.Complete {
			sum.Complete++
		}
	}
	sum.Estimates = len(dims)
	if len(steps) > 0 {
		sum.MeanSteps = stat.Mean(steps, nil)
	}
	switch len(dims) {
	case 0:
	case 1:
		sum.MeanDimension = dims[0]
	default:
		sum.MeanDimension, sum.StdDimension = stat.MeanStdDev(dims, nil)
	}
	return sum
}
