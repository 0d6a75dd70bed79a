// Package updater implements the local and remote package update strategies.
package updater

import (
	"context"

	"go.trai.ch/pacforge/internal/core/domain"
	"go.trai.ch/pacforge/internal/core/ports"
)

// Updater builds and publishes packages.
type Updater interface {
	// Name identifies the strategy in logs and metrics.
	Name() string

	// Partition splits packages into the chunks passed to Update.
	Partition(packages []domain.Package) ([][]domain.Package, error)

	// Update builds one chunk. Per-package failures are reported in the
	// result; a returned error aborts the whole run.
	Update(ctx context.Context, packages []domain.Package, opts domain.UpdateOptions) (*domain.Result, error)

	// Concurrency is the number of chunks that may be updated at once.
	Concurrency() int
}

// Select returns a RemoteUpdater if workers are given or configured, and a
// LocalUpdater otherwise.
func Select(
	cfg *domain.Configuration,
	workers []domain.Worker,
	builder ports.Builder,
	publisher ports.Publisher,
	factory ports.ClientFactory,
	logger ports.Logger,
) Updater {
	if len(workers) == 0 {
		for _, address := range cfg.Build.Workers {
			workers = append(workers, domain.NewWorker(address, ""))
		}
	}

	if len(workers) > 0 {
		return NewRemote(cfg.Repository, workers, factory, logger,
			WithPollInterval(cfg.Build.PollInterval),
			WithTimeout(cfg.Build.Timeout),
		)
	}
	return NewLocal(cfg.Repository, builder, publisher, logger)
}
