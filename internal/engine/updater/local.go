package updater

import (
	"context"

	"go.trai.ch/pacforge/internal/core/domain"
	"go.trai.ch/pacforge/internal/core/ports"
	"go.trai.ch/zerr"
)

// LocalUpdater builds packages on this machine, one dependency level at a time.
type LocalUpdater struct {
	repository domain.RepositoryID
	builder    ports.Builder
	publisher  ports.Publisher
	logger     ports.Logger
}

// NewLocal creates a new LocalUpdater.
func NewLocal(
	repository domain.RepositoryID,
	builder ports.Builder,
	publisher ports.Publisher,
	logger ports.Logger,
) *LocalUpdater {
	return &LocalUpdater{
		repository: repository,
		builder:    builder,
		publisher:  publisher,
		logger:     logger,
	}
}

// Name implements Updater.
func (u *LocalUpdater) Name() string {
	return "local"
}

// Concurrency implements Updater. Levels are built strictly in order.
func (u *LocalUpdater) Concurrency() int {
	return 1
}

// Partition orders packages into dependency levels.
func (u *LocalUpdater) Partition(packages []domain.Package) ([][]domain.Package, error) {
	return domain.Resolve(packages)
}

// Update builds the packages and publishes the ones that were built.
func (u *LocalUpdater) Update(
	ctx context.Context,
	packages []domain.Package,
	opts domain.UpdateOptions,
) (*domain.Result, error) {
	built, err := u.builder.Build(ctx, u.repository, packages, opts)
	if err != nil {
		u.logger.Error(zerr.With(zerr.Wrap(err, "build failed"), "packages", domain.Bases(packages)))
		return failedResult(packages), nil
	}

	toPublish := built.Success()
	if len(toPublish) == 0 {
		return built, nil
	}

	published, err := u.publisher.Publish(ctx, u.repository, toPublish)
	if err != nil {
		u.logger.Error(zerr.With(zerr.Wrap(err, "publish failed"), "packages", domain.Bases(toPublish)))
		published = failedResult(toPublish)
	}

	return built.Merge(published)
}

func failedResult(packages []domain.Package) *domain.Result {
	result := domain.NewResult()
	for i := range packages {
		result.AddFailed(&packages[i])
	}
	return result
}
