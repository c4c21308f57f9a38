package sweep

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mad-cca/internal/metrics"
	"mad-cca/internal/runner"
	"mad-cca/pkg/cca"
)

func TestSeeds(t *testing.T) {
	assert.Equal(t, []int64{7, 8, 9}, Seeds(7, 3))
	assert.Nil(t, Seeds(7, 0))
}

func TestRunOrderedAndDeterministic(t *testing.T) {
	base := cca.Config{Size: 20, Particles: 60}
	opts := runner.Options{MaxSteps: 200}
	seeds := Seeds(100, 6)
	rec := metrics.New()

	sum, err := Run(context.Background(), base, opts, seeds, 3, nil, rec)
	require.NoError(t, err)
	require.Len(t, sum.Results, len(seeds))
	for i, r := range sum.Results {
		assert.Equal(t, seeds[i], r.Seed, "result %d out of order", i)
		assert.Equal(t, 200, r.Steps)
	}
	assert.Equal(t, 6.0, testutil.ToFloat64(rec.Runs.WithLabelValues(metrics.OutcomeTruncated))+
		testutil.ToFloat64(rec.Runs.WithLabelValues(metrics.OutcomeComplete)))

	again, err := Run(context.Background(), base, opts, seeds, 1, nil, nil)
	require.NoError(t, err)
	for i := range seeds {
		assert.Equal(t, sum.Results[i].Clusters, again.Results[i].Clusters)
		assert.Equal(t, sum.Results[i].BoxCounts, again.Results[i].BoxCounts)
	}
}

func TestRunRejects(t *testing.T) {
	_, err := Run(context.Background(), cca.DefaultConfig(), runner.DefaultOptions(), nil, 1, nil, nil)
	assert.ErrorIs(t, err, ErrNoSeeds)

	_, err = Run(context.Background(), cca.Config{Size: 2, Particles: 9}, runner.DefaultOptions(), Seeds(1, 2), 1, nil, nil)
	assert.ErrorIs(t, err, cca.ErrCapacity)

	_, err = Run(context.Background(), cca.DefaultConfig(), runner.Options{}, Seeds(1, 2), 1, nil, nil)
	assert.ErrorIs(t, err, runner.ErrUnbounded)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, cca.Config{Size: 20, Particles: 50}, runner.Options{MaxSteps: 100}, Seeds(1, 4), 2, nil, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSummarize(t *testing.T) {
	sum := Summarize([]runner.Result{
		{Steps: 10, Dimension: 1.0, HasDimension: true, Complete: true},
		{Steps: 30, Dimension: 2.0, HasDimension: true},
		{Steps: 20},
	})
	assert.Equal(t, 20.0, sum.MeanSteps)
	assert.Equal(t, 2, sum.Estimates)
	assert.Equal(t, 1, sum.Complete)
	assert.InDelta(t, 1.5, sum.MeanDimension, 1e-12)
	// sample standard deviation of {1, 2}
	assert.InDelta(t, 0.70710678, sum.StdDimension, 1e-6)
}
