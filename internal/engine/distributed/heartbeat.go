package distributed

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/pacforge/internal/core/domain"
	"go.trai.ch/pacforge/internal/core/ports"
	"go.trai.ch/zerr"
)

// unregisterTimeout bounds the final deregistration on Stop.
const unregisterTimeout = 10 * time.Second

// Heartbeat periodically registers a worker with its coordinator.
type Heartbeat struct {
	worker    domain.Worker
	registrar ports.WorkerRegistrar
	logger    ports.Logger
	interval  time.Duration
	clock     clockwork.Clock

	mu        sync.Mutex
	scheduler gocron.Scheduler
	cancel    context.CancelFunc
}

// NewHeartbeat creates a heartbeat that refreshes the registration every ttl/4.
func NewHeartbeat(
	worker domain.Worker,
	registrar ports.WorkerRegistrar,
	logger ports.Logger,
	ttl time.Duration,
	clock clockwork.Clock,
) *Heartbeat {
	if ttl <= 0 {
		ttl = DefaultTimeToLive
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Heartbeat{
		worker:    worker,
		registrar: registrar,
		logger:    logger,
		interval:  ttl / 4,
		clock:     clock,
	}
}

// Interval returns the registration interval.
func (h *Heartbeat) Interval() time.Duration {
	return h.interval
}

// Start registers the worker and schedules the periodic re-registration.
// The job is stopped when ctx is cancelled or Stop is called.
// Calling Start on a running heartbeat is a no-op.
func (h *Heartbeat) Start(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.scheduler != nil {
		return nil
	}

	s, err := gocron.NewScheduler(gocron.WithClock(h.clock))
	if err != nil {
		return zerr.Wrap(err, "failed to create heartbeat scheduler")
	}

	jobCtx, cancel := context.WithCancel(ctx)
	_, err = s.NewJob(
		gocron.DurationJob(h.interval),
		gocron.NewTask(h.register),
		gocron.WithName("heartbeat"),
		gocron.WithContext(jobCtx),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		cancel()
		_ = s.Shutdown()
		return zerr.With(zerr.Wrap(err, "failed to schedule heartbeat"), "worker", h.worker.Identifier)
	}

	s.Start()
	h.scheduler = s
	h.cancel = cancel
	return nil
}

// Stop cancels the periodic registration and deregisters the worker.
// It is safe to call Stop multiple times.
func (h *Heartbeat) Stop(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.scheduler == nil {
		return nil
	}

	h.cancel()
	err := h.scheduler.Shutdown()
	h.scheduler = nil
	h.cancel = nil

	unregisterCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), unregisterTimeout)
	defer cancel()
	if uerr := h.registrar.Unregister(unregisterCtx, h.worker); uerr != nil {
		h.logger.Warn("failed to unregister worker " + h.worker.Identifier + ": " + uerr.Error())
	}

	if err != nil {
		return zerr.Wrap(err, "failed to stop heartbeat scheduler")
	}
	return nil
}

func (h *Heartbeat) register(ctx context.Context) {
	if err := h.registrar.Register(ctx, h.worker); err != nil {
		h.logger.Error(zerr.With(zerr.Wrap(err, "failed to register worker"), "worker", h.worker.Identifier))
	}
}
