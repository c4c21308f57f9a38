// Package runner drives a single aggregation engine to completion and
// reports progress through zap and Prometheus.
package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"mad-cca/internal/logging"
	"mad-cca/internal/metrics"
	"mad-cca/pkg/cca"
)

// ErrUnbounded is returned when a run has neither a step limit nor a stop at
// a single cluster.
var ErrUnbounded = errors.New("runner: MaxSteps 0 requires StopAtSingle")

// Options controls when a run stops and how often it reports.
type Options struct {
	// MaxSteps stops the run after this many steps; 0 means no limit.
	MaxSteps int
	// BoxEvery logs progress and records metrics every BoxEvery steps; 0
	// reports only at the start and end.
	BoxEvery int
	// StopAtSingle ends the run once one cluster remains.
	StopAtSingle bool
	// Verify checks every engine invariant after each step.
	Verify bool
}

// DefaultOptions runs until one cluster remains.
func DefaultOptions() Options {
	return Options{StopAtSingle: true, BoxEvery: 1000}
}

// Validate reports whether the options describe a terminating run.
func (o Options) Validate() error {
	if o.MaxSteps < 0 || o.BoxEvery < 0 {
		return fmt.Errorf("runner: negative option in %+v", o)
	}
	if o.MaxSteps == 0 && !o.StopAtSingle {
		return ErrUnbounded
	}
	return nil
}

// Result summarises a finished or interrupted run.
type Result struct {
	RunID     string        `json:"run_id"`
	Seed      int64         `json:"seed"`
	Size      int           `json:"size"`
	Particles int           `json:"particles"`
	Steps     int           `json:"steps"`
	Clusters  int           `json:"clusters"`
	Largest   int           `json:"largest"`
	Merges    int           `json:"merges"`
	Elapsed   time.Duration `json:"elapsed_ns"`
	BoxCounts cca.BoxCounts `json:"box_counts"`
	// Dimension is valid only when HasDimension is set.
	Dimension    float64 `json:"dimension"`
	HasDimension bool    `json:"has_dimension"`
	// Complete is set once a single cluster remains.
	Complete bool `json:"complete"`
}

// Runner owns the driving loop around one engine.
type Runner struct {
	engine *cca.Engine
	log    *zap.Logger
	rec    *metrics.Recorder
	opts   Options
	id     string

	lastSteps  int
	lastMerges int
}

// New returns a runner for engine. logger and rec may be nil.
func New(engine *cca.Engine, logger *zap.Logger, rec *metrics.Recorder, opts Options) (*Runner, error) {
	if engine == nil {
		return nil, errors.New("runner: nil engine")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	id := uuid.NewString()
	return &Runner{
		engine: engine,
		log:    logging.OrNop(logger).With(zap.String("run_id", id)),
		rec:    rec,
		opts:   opts,
		id:     id,
	}, nil
}

// ID returns the run identifier attached to every log line.
func (r *Runner) ID() string { return r.id }

// Run steps the engine until a stop condition holds. The engine is
// initialized first if needed. When ctx is cancelled between ticks the
// partial result is returned together with ctx.Err().
func (r *Runner) Run(ctx context.Context) (Result, error) {
	e := r.engine
	r.lastSteps, r.lastMerges = e.Steps(), e.Merges()
	if !e.Ready() {
		if err := e.Initialize(); err != nil {
			r.rec.RunFinished(metrics.OutcomeFailed, nil, 0, false)
			return Result{RunID: r.id, Seed: e.Config().Seed}, err
		}
	}
	start := time.Now()
	base := e.Steps()

	r.log.Info("run started",
		zap.Int64("seed", e.Config().Seed),
		zap.Int("size", e.Size()),
		zap.Int("particles", e.Particles()),
		zap.Int("clusters", e.Clusters()))
	r.observe()

	for {
		if r.opts.StopAtSingle && e.Clusters() <= 1 {
			break
		}
		if r.opts.MaxSteps > 0 && e.Steps()-base >= r.opts.MaxSteps {
			break
		}
		if err := ctx.Err(); err != nil {
			res := r.finish(start, metrics.OutcomeCancelled)
			r.log.Warn("run cancelled", zap.Int("step", res.Steps), zap.Error(err))
			return res, err
		}
		e.Step()
		if r.opts.Verify {
			if err := e.Verify(); err != nil {
				res := r.finish(start, metrics.OutcomeFailed)
				r.log.Error("invariant violated", zap.Int("step", e.Steps()), zap.Error(err))
				return res, fmt.Errorf("step %d: %w", e.Steps(), err)
			}
		}
		if r.opts.BoxEvery > 0 && e.Steps()%r.opts.BoxEvery == 0 {
			r.progress()
		}
	}

	outcome := metrics.OutcomeTruncated
	if e.Clusters() <= 1 {
		outcome = metrics.OutcomeComplete
	}
	res := r.finish(start, outcome)
	fields := []zap.Field{
		zap.Int("step", res.Steps),
		zap.Int("clusters", res.Clusters),
		zap.Int("largest", res.Largest),
		zap.Int("merges", res.Merges),
		zap.Duration("elapsed", res.Elapsed),
	}
	if res.HasDimension {
		fields = append(fields, zap.Float64("dimension", res.Dimension))
	}
	r.log.Info("run finished", fields...)
	return res, nil
}

func (r *Runner) progress() {
	e := r.engine
	r.log.Debug("progress",
		zap.Int("step", e.Steps()),
		zap.Int("clusters", e.Clusters()),
		zap.Int("largest", e.Largest()),
		zap.Int("merges", e.Merges()))
	r.observe()
}

func (r *Runner) observe() {
	e := r.engine
	r.rec.Observe(metrics.Sample{
		Steps:    e.Steps() - r.lastSteps,
		Merges:   e.Merges() - r.lastMerges,
		Clusters: e.Clusters(),
		Largest:  e.Largest(),
	})
	r.lastSteps, r.lastMerges = e.Steps(), e.Merges()
}

func (r *Runner) finish(start time.Time, outcome string) Result {
	e := r.engine
	r.observe()
	counts := e.BoxCount()
	res := Result{
		RunID:     r.id,
		Seed:      e.Config().Seed,
		Size:      e.Size(),
		Particles: e.Particles(),
		Steps:     e.Steps(),
		Clusters:  e.Clusters(),
		Largest:   e.Largest(),
		Merges:    e.Merges(),
		Elapsed:   time.Since(start),
		BoxCounts: counts,
		Complete:  e.Clusters() <= 1,
	}
	if dim, err := cca.FractalDimension(counts); err == nil {
		res.Dimension, res.HasDimension = dim, true
	}
	r.rec.RunFinished(outcome, counts, res.Dimension, res.HasDimension)
	return res
}
