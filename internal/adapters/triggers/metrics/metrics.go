// Package metrics provides a trigger that counts updated packages with Prometheus.
package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/pacforge/internal/core/domain"
	"go.trai.ch/pacforge/internal/engine/triggers"
	"go.trai.ch/zerr"
)

// Identifier is the name the trigger is registered under.
const Identifier = "pacforge.triggers.metrics.MetricsTrigger"

func init() {
	triggers.Register(Identifier, func(env triggers.Environment) (any, error) {
		return New(env)
	})
}

// MetricsTrigger exports per-repository package counters.
type MetricsTrigger struct {
	triggers.Base
	repository domain.RepositoryID
	packages   *prometheus.CounterVec
	lastRun    *prometheus.GaugeVec
	now        func() time.Time
}

// New creates the trigger and registers its collectors with env.Registerer.
// Collectors that are already registered are reused.
func New(env triggers.Environment) (*MetricsTrigger, error) {
	reg := env.Registerer
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	packages, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pacforge",
		Name:      "packages_total",
		Help:      "Packages reported by update runs, by result",
	}, []string{"repository", "result"}))
	if err != nil {
		return nil, err
	}
	lastRun, err := register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "pacforge",
		Name:      "last_update_timestamp_seconds",
		Help:      "Unix time of the last finished update run",
	}, []string{"repository"}))
	if err != nil {
		return nil, err
	}

	return &MetricsTrigger{
		repository: env.Repository,
		packages:   packages,
		lastRun:    lastRun,
		now:        time.Now,
	}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		var zero C
		return zero, zerr.Wrap(err, "failed to register trigger metrics")
	}
	return c, nil
}

// OnResult counts the packages of result.
func (t *MetricsTrigger) OnResult(_ context.Context, result *domain.Result, _ []domain.Package) error {
	repo := t.repository.String()
	t.packages.WithLabelValues(repo, "success").Add(float64(len(result.Success())))
	t.packages.WithLabelValues(repo, "failed").Add(float64(len(result.Failed())))
	t.lastRun.WithLabelValues(repo).Set(float64(t.now().Unix()))
	return nil
}
