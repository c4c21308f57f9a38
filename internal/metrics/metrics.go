// Package metrics exposes aggregation progress as Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace prefixes every metric name.
const Namespace = "cca"

// Run outcomes for RunFinished.
const (
	OutcomeComplete  = "complete"
	OutcomeTruncated = "truncated"
	OutcomeCancelled = "cancelled"
	OutcomeFailed    = "failed"
)

// Sample is one progress observation. Steps and Merges are increments since
// the previous sample of the same run.
type Sample struct {
	Steps    int
	Merges   int
	Clusters int
	Largest  int
}

// Recorder holds the metrics for one process. A nil *Recorder discards
// everything.
type Recorder struct {
	registry *prometheus.Registry

	Steps     prometheus.Counter
	Merges    prometheus.Counter
	Clusters  prometheus.Gauge
	Largest   prometheus.Gauge
	Dimension prometheus.Gauge
	Runs      *prometheus.CounterVec
	BoxCount  *prometheus.GaugeVec
}

// New creates a recorder on a private registry.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		Steps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "steps_total",
			Help:      "Random-walk steps taken across all runs",
		}),
		Merges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "merges_total",
			Help:      "Cluster merges across all runs",
		}),
		Clusters: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "clusters",
			Help:      "Live clusters in the most recently observed run",
		}),
		Largest: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "largest_cluster_mass",
			Help:      "Mass of the largest cluster in the most recently observed run",
		}),
		Dimension: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "fractal_dimension",
			Help:      "Box-counting dimension of the most recently finished run",
		}),
		Runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "runs_total",
			Help:      "Finished runs by outcome",
		}, []string{"outcome"}),
		BoxCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "box_count",
			Help:      "Occupied tiles per tile size in the most recently finished run",
		}, []string{"size"}),
	}
	r.registry.MustRegister(r.Steps, r.Merges, r.Clusters, r.Largest, r.Dimension, r.Runs, r.BoxCount)
	return r
}

// Registry returns the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Observe records one progress sample.
func (r *Recorder) Observe(s Sample) {
	if r == nil {
		return
	}
	if s.Steps > 0 {
		r.Steps.Add(float64(s.Steps))
	}
	if s.Merges > 0 {
		r.Merges.Add(float64(s.Merges))
	}
	r.Clusters.Set(float64(s.Clusters))
	r.Largest.Set(float64(s.Largest))
}

// RunFinished counts a finished run and stores its box counts. hasDim is
// false when no dimension estimate was possible.
func (r *Recorder) RunFinished(outcome string, counts map[int]int, dim float64, hasDim bool) {
	if r == nil {
		return
	}
	r.Runs.WithLabelValues(outcome).Inc()
	for size, n := range counts {
		r.BoxCount.WithLabelValues(strconv.Itoa(size)).Set(float64(n))
	}
	if hasDim {
		r.Dimension.Set(dim)
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
