package runner

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"mad-cca/internal/metrics"
	"mad-cca/pkg/cca"
)

func newEngine(t *testing.T, size, particles int, seed int64) *cca.Engine {
	t.Helper()
	e, err := cca.NewWithConfig(cca.Config{Size: size, Particles: particles, Seed: seed})
	require.NoError(t, err)
	return e
}

func TestOptionsValidate(t *testing.T) {
	assert.ErrorIs(t, Options{}.Validate(), ErrUnbounded)
	assert.NoError(t, Options{MaxSteps: 10}.Validate())
	assert.NoError(t, DefaultOptions().Validate())
	assert.Error(t, Options{MaxSteps: -1, StopAtSingle: true}.Validate())
}

func TestRunToSingleCluster(t *testing.T) {
	e := newEngine(t, 12, 30, 4)
	rec := metrics.New()
	core, logs := observer.New(zap.DebugLevel)

	r, err := New(e, zap.New(core), rec, Options{StopAtSingle: true, BoxEvery: 50, Verify: true})
	require.NoError(t, err)

	res, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Complete)
	assert.Equal(t, 1, res.Clusters)
	assert.Equal(t, 30, res.Largest)
	assert.Equal(t, 29, res.Merges)
	assert.Equal(t, r.ID(), res.RunID)
	assert.Equal(t, int64(4), res.Seed)
	assert.Equal(t, []int{1, 2, 4, 8}, res.BoxCounts.Sizes())
	assert.Equal(t, 30, res.BoxCounts[1])
	assert.True(t, res.HasDimension)

	assert.Equal(t, float64(res.Steps), testutil.ToFloat64(rec.Steps))
	assert.Equal(t, 29.0, testutil.ToFloat64(rec.Merges))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.Runs.WithLabelValues(metrics.OutcomeComplete)))

	require.Equal(t, 1, logs.FilterMessage("run finished").Len())
	entry := logs.FilterMessage("run finished").All()[0]
	assert.Equal(t, res.RunID, entry.ContextMap()["run_id"])
}

func TestRunMaxSteps(t *testing.T) {
	e := newEngine(t, 40, 100, 1)
	r, err := New(e, nil, nil, Options{MaxSteps: 25})
	require.NoError(t, err)

	res, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 25, res.Steps)
	assert.Equal(t, res.Clusters <= 1, res.Complete)
	require.NoError(t, e.Verify())

	// a second run continues from the current state
	res, err = r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 50, res.Steps)
}

func TestRunCancelled(t *testing.T) {
	e := newEngine(t, 40, 100, 1)
	rec := metrics.New()
	r, err := New(e, nil, rec, Options{MaxSteps: 1000})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := r.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, res.Steps)
	assert.Equal(t, res.RunID, r.ID())
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.Runs.WithLabelValues(metrics.OutcomeCancelled)))
}

func TestRunInitializesEngine(t *testing.T) {
	e := newEngine(t, 10, 20, 2)
	require.False(t, e.Ready())
	r, err := New(e, nil, nil, Options{MaxSteps: 3})
	require.NoError(t, err)
	res, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, e.Ready())
	assert.Equal(t, 3, res.Steps)
}

func TestRunPlacementFailure(t *testing.T) {
	e, err := cca.NewWithConfig(cca.Config{Size: 4, Particles: 16, Seed: 1, PlacementAttempts: 1})
	require.NoError(t, err)
	rec := metrics.New()
	r, err := New(e, nil, rec, Options{MaxSteps: 3})
	require.NoError(t, err)
	_, err = r.Run(context.Background())
	assert.ErrorIs(t, err, cca.ErrPlacement)
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.Runs.WithLabelValues(metrics.OutcomeFailed)))
}

func TestNewRejects(t *testing.T) {
	_, err := New(nil, nil, nil, DefaultOptions())
	assert.Error(t, err)
	_, err = New(newEngine(t, 5, 5, 1), nil, nil, Options{})
	assert.ErrorIs(t, err, ErrUnbounded)
}
