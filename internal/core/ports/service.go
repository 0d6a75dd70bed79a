package ports

import (
	"context"

	"go.trai.ch/pacforge/internal/core/domain"
)

// ServiceClient talks to the HTTP service of a remote worker.
//
//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks
type ServiceClient interface {
	// Submit asks the worker to update the given package bases and returns
	// the identifier of the spawned process.
	Submit(ctx context.Context, repository domain.RepositoryID, bases []string, opts domain.UpdateOptions) (string, error)

	// ProcessAlive reports whether the process is still running.
	// An unknown process is reported as not alive.
	ProcessAlive(ctx context.Context, processID string) (bool, error)
}

// ClientFactory creates service clients for workers.
type ClientFactory interface {
	NewClient(worker domain.Worker) (ServiceClient, error)
}

// WorkerRegistrar registers workers with a coordinator.
type WorkerRegistrar interface {
	// Register announces or refreshes the worker.
	Register(ctx context.Context, worker domain.Worker) error

	// Unregister removes the worker.
	Unregister(ctx context.Context, worker domain.Worker) error

	// Workers lists the workers the coordinator considers alive.
	Workers(ctx context.Context) ([]domain.Worker, error)
}

// RegistrarFactory creates registrars talking to a coordinator.
type RegistrarFactory interface {
	NewRegistrar(coordinator string) (WorkerRegistrar, error)
}
