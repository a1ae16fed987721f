package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "sweeparr"

// Collector owns the Prometheus registry and the run-level metrics exposed
// in watch mode. Record methods are safe on a nil receiver so the one-shot
// path can skip metrics entirely.
type Collector struct {
	registry *prometheus.Registry

	runs     *prometheus.CounterVec
	episodes *prometheus.CounterVec
	pruned   prometheus.Counter
	duration prometheus.Histogram
	lastRun  prometheus.Gauge
}

// NewCollector creates the collector with its own registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "runs_total",
				Help:      "Completed cleanup runs by mode and outcome",
			},
			[]string{"mode", "outcome"},
		),
		episodes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "episodes_processed_total",
				Help:      "Episodes handled across all runs by result",
			},
			[]string{"result"},
		),
		pruned: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "directories_pruned_total",
				Help:      "Empty directories removed across all runs",
			},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "run_duration_seconds",
				Help:      "Wall-clock duration of cleanup runs",
				Buckets:   []float64{1, 5, 15, 60, 300, 900, 1800},
			},
		),
		lastRun: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "last_run_timestamp_seconds",
				Help:      "Unix time of the most recent completed run",
			},
		),
	}

	c.registry.MustRegister(c.runs, c.episodes, c.pruned, c.duration, c.lastRun)
	return c
}

// RecordRun records one completed run.
func (c *Collector) RecordRun(dryRun bool, success bool, elapsed time.Duration) {
	if c == nil {
		return
	}
	mode := "real"
	if dryRun {
		mode = "dry_run"
	}
	outcome := "success"
	if !success {
		outcome = "error"
	}
	c.runs.WithLabelValues(mode, outcome).Inc()
	c.duration.Observe(elapsed.Seconds())
	c.lastRun.SetToCurrentTime()
}

// RecordEpisodes records per-episode outcomes from one run.
func (c *Collector) RecordEpisodes(succeeded, failed int) {
	if c == nil {
		return
	}
	if succeeded > 0 {
		c.episodes.WithLabelValues("success").Add(float64(succeeded))
	}
	if failed > 0 {
		c.episodes.WithLabelValues("failure").Add(float64(failed))
	}
}

// RecordPruned records directories removed by the prune pass.
func (c *Collector) RecordPruned(count int) {
	if c == nil {
		return
	}
	if count > 0 {
		c.pruned.Add(float64(count))
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
