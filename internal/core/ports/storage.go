package ports

import (
	"context"

	"go.trai.ch/pacforge/internal/core/domain"
)

// BuildQueue stores packages waiting to be built.
//
//go:generate go run go.uber.org/mock/mockgen -source=storage.go -destination=mocks/mock_storage.go -package=mocks
type BuildQueue interface {
	BuildQueueInsert(ctx context.Context, repository domain.RepositoryID, pkg *domain.Package) error
	BuildQueueGet(ctx context.Context, repository domain.RepositoryID) ([]domain.Package, error)
	// BuildQueueClear removes base from the queue, or everything if base is empty.
	BuildQueueClear(ctx context.Context, repository domain.RepositoryID, base string) error
}

// WorkerStore persists registered workers.
type WorkerStore interface {
	WorkersGet(ctx context.Context) ([]domain.Worker, error)
	WorkersInsert(ctx context.Context, worker domain.Worker) error
	// WorkersRemove removes the worker with identifier, or every worker if it is empty.
	WorkersRemove(ctx context.Context, identifier string) error
}

// EventStore records package events.
type EventStore interface {
	EventInsert(ctx context.Context, repository domain.RepositoryID, event *domain.Event) error
	// EventGet lists events, newest first. Empty filters match everything;
	// limit <= 0 means no limit.
	EventGet(ctx context.Context, repository domain.RepositoryID, event, objectID string, limit int) ([]domain.Event, error)
}

// PackageStore keeps the package catalog of a repository.
type PackageStore interface {
	// PackageGet returns the requested packages, or all of them when no base is given.
	PackageGet(ctx context.Context, repository domain.RepositoryID, bases ...string) ([]domain.Package, error)
	PackageUpdate(ctx context.Context, repository domain.RepositoryID, pkg *domain.Package) error
}

// Storage is the persistent store of the application.
type Storage interface {
	BuildQueue
	WorkerStore
	EventStore
	PackageStore
	Close() error
}

// StorageOpener opens the storage at a path.
type StorageOpener interface {
	Open(path string) (Storage, error)
}
