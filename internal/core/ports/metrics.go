package ports

import "time"

// Metrics records operational metrics of update runs.
//
//go:generate go run go.uber.org/mock/mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type Metrics interface {
	// ObserveChunk records one dispatched chunk and how long it took.
	ObserveChunk(updater string, duration time.Duration, failed bool)

	// AddPackages counts packages by outcome ("success" or "failed").
	AddPackages(outcome string, count int)

	// SetWorkers sets the number of live workers.
	SetWorkers(count int)
}
