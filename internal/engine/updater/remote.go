package updater

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/pacforge/internal/core/domain"
	"go.trai.ch/pacforge/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultPollInterval is the default interval between process status requests.
const DefaultPollInterval = 5 * time.Second

// RemoteUpdater dispatches chunks to remote workers in round-robin order.
type RemoteUpdater struct {
	repository   domain.RepositoryID
	workers      []domain.Worker
	factory      ports.ClientFactory
	logger       ports.Logger
	clock        clockwork.Clock
	pollInterval time.Duration
	timeout      time.Duration

	mu      sync.Mutex
	cursor  int
	clients map[string]ports.ServiceClient
}

// RemoteOption configures a RemoteUpdater.
type RemoteOption func(*RemoteUpdater)

// WithPollInterval sets the interval between process status requests.
func WithPollInterval(d time.Duration) RemoteOption {
	return func(u *RemoteUpdater) {
		if d > 0 {
			u.pollInterval = d
		}
	}
}

// WithTimeout bounds how long a chunk may run on a worker. Zero means no limit.
func WithTimeout(d time.Duration) RemoteOption {
	return func(u *RemoteUpdater) {
		u.timeout = d
	}
}

// WithClock sets the clock used for polling.
func WithClock(clock clockwork.Clock) RemoteOption {
	return func(u *RemoteUpdater) {
		u.clock = clock
	}
}

// NewRemote creates a new RemoteUpdater for the given workers.
func NewRemote(
	repository domain.RepositoryID,
	workers []domain.Worker,
	factory ports.ClientFactory,
	logger ports.Logger,
	opts ...RemoteOption,
) *RemoteUpdater {
	u := &RemoteUpdater{
		repository:   repository,
		workers:      append([]domain.Worker(nil), workers...),
		factory:      factory,
		logger:       logger,
		clock:        clockwork.NewRealClock(),
		pollInterval: DefaultPollInterval,
		clients:      make(map[string]ports.ServiceClient),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Name implements Updater.
func (u *RemoteUpdater) Name() string {
	return "remote"
}

// Concurrency implements Updater. Every worker builds one chunk at a time.
func (u *RemoteUpdater) Concurrency() int {
	return max(len(u.workers), 1)
}

// Workers returns the workers of the pool.
func (u *RemoteUpdater) Workers() []domain.Worker {
	return append([]domain.Worker(nil), u.workers...)
}

// Partition splits packages into one dependency-closed chunk per worker.
// Empty chunks are dropped.
func (u *RemoteUpdater) Partition(packages []domain.Package) ([][]domain.Package, error) {
	buckets, err := domain.Partition(packages, len(u.workers))
	if err != nil {
		return nil, err
	}

	chunks := make([][]domain.Package, 0, len(buckets))
	for _, bucket := range buckets {
		if len(bucket) > 0 {
			chunks = append(chunks, bucket)
		}
	}
	return chunks, nil
}

// NextWorker returns the next worker in round-robin order together with its
// client. Clients are created on first use and reused afterwards.
func (u *RemoteUpdater) NextWorker() (domain.Worker, ports.ServiceClient, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if len(u.workers) == 0 {
		return domain.Worker{}, nil, zerr.Wrap(domain.ErrNoWorkers, "failed to select worker")
	}

	worker := u.workers[u.cursor]
	u.cursor = (u.cursor + 1) % len(u.workers)

	client, ok := u.clients[worker.Identifier]
	if !ok {
		var err error
		client, err = u.factory.NewClient(worker)
		if err != nil {
			return worker, nil, zerr.With(zerr.Wrap(err, "failed to create worker client"), "worker", worker.Identifier)
		}
		u.clients[worker.Identifier] = client
	}
	return worker, client, nil
}

// Update submits the chunk to the next worker and waits for it to finish.
// Any failure marks every package of the chunk as failed.
func (u *RemoteUpdater) Update(
	ctx context.Context,
	packages []domain.Package,
	opts domain.UpdateOptions,
) (*domain.Result, error) {
	bases := domain.Bases(packages)

	worker, client, err := u.NextWorker()
	if err == nil {
		err = u.build(ctx, client, bases, opts)
	}
	if err != nil {
		err = zerr.With(zerr.Wrap(err, "remote build failed"), "packages", bases)
		u.logger.Error(zerr.With(err, "worker", worker.Identifier))
		return failedResult(packages), nil
	}

	result := domain.NewResult()
	for i := range packages {
		result.AddSuccess(&packages[i])
	}
	return result, nil
}

func (u *RemoteUpdater) build(
	ctx context.Context,
	client ports.ServiceClient,
	bases []string,
	opts domain.UpdateOptions,
) error {
	processID, err := client.Submit(ctx, u.repository, bases, opts)
	if err != nil {
		return zerr.Wrap(err, "failed to submit chunk")
	}
	if err := u.wait(ctx, client, processID); err != nil {
		return zerr.With(err, "process_id", processID)
	}
	return nil
}

// wait polls the process until it is no longer alive.
func (u *RemoteUpdater) wait(ctx context.Context, client ports.ServiceClient, processID string) error {
	start := u.clock.Now()
	for {
		alive, err := client.ProcessAlive(ctx, processID)
		if err != nil {
			return zerr.Wrap(err, "failed to poll process")
		}
		if !alive {
			return nil
		}

		if u.timeout > 0 && u.clock.Since(start) >= u.timeout {
			return zerr.With(zerr.Wrap(domain.ErrRemoteBuild, "timed out"), "timeout", u.timeout.String())
		}

		select {
		case <-ctx.Done():
			return zerr.Wrap(domain.ErrRemoteBuild, "cancelled while waiting")
		case <-u.clock.After(u.pollInterval):
		}
	}
}
