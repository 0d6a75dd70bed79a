// Package metrics records update metrics with Prometheus.
package metrics

import (
	"strconv"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// Namespace prefixes every metric name.
const Namespace = "pacforge"

// Recorder implements ports.Metrics using Prometheus collectors.
type Recorder struct {
	chunkDuration *prom.HistogramVec
	packages      *prom.CounterVec
	workers       prom.Gauge
}

// NewRecorder creates the collectors and registers them with reg.
// A nil reg uses a private registry.
func NewRecorder(reg prom.Registerer) *Recorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	r := &Recorder{
		chunkDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: Namespace,
			Name:      "chunk_duration_seconds",
			Help:      "Duration of dispatched update chunks",
			Buckets:   []float64{1, 5, 15, 60, 300, 900, 1800, 3600, 7200},
		}, []string{"updater", "failed"}),
		packages: prom.NewCounterVec(prom.CounterOpts{
			Namespace: Namespace,
			Name:      "updated_packages_total",
			Help:      "Packages processed by update runs, by outcome",
		}, []string{"outcome"}),
		workers: prom.NewGauge(prom.GaugeOpts{
			Namespace: Namespace,
			Name:      "workers",
			Help:      "Number of live workers known to the coordinator",
		}),
	}
	reg.MustRegister(r.chunkDuration, r.packages, r.workers)
	return r
}

// ObserveChunk records the duration of one chunk.
func (r *Recorder) ObserveChunk(updater string, duration time.Duration, failed bool) {
	r.chunkDuration.WithLabelValues(updater, strconv.FormatBool(failed)).Observe(duration.Seconds())
}

// AddPackages counts processed packages.
func (r *Recorder) AddPackages(outcome string, count int) {
	if count <= 0 {
		return
	}
	r.packages.WithLabelValues(outcome).Add(float64(count))
}

// SetWorkers sets the live worker gauge.
func (r *Recorder) SetWorkers(count int) {
	r.workers.Set(float64(count))
}
