// Package httpapi serves the worker and coordinator HTTP API.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.trai.ch/pacforge/internal/adapters/remote"
	"go.trai.ch/pacforge/internal/core/domain"
	"go.trai.ch/pacforge/internal/core/ports"
	"go.trai.ch/pacforge/internal/engine/distributed"
	"go.trai.ch/zerr"
)

const shutdownTimeout = 10 * time.Second

// UpdateFunc runs an update of the given bases.
type UpdateFunc func(ctx context.Context, bases []string, opts domain.UpdateOptions) error

// Option configures a Server.
type Option func(*Server)

// WithMetrics exposes gatherer on /metrics and reports the worker count to m.
func WithMetrics(m ports.Metrics, gatherer prometheus.Gatherer) Option {
	return func(s *Server) {
		s.metrics = m
		s.gatherer = gatherer
	}
}

// WithProcessIDs overrides the generator of process identifiers.
func WithProcessIDs(next func() string) Option {
	return func(s *Server) {
		s.newID = next
	}
}

// Server is the HTTP service of a worker or coordinator.
type Server struct {
	repository domain.RepositoryID
	storage    ports.Storage
	registry   *distributed.Registry
	logger     ports.Logger
	update     UpdateFunc
	metrics    ports.Metrics
	gatherer   prometheus.Gatherer
	newID      func() string

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu        sync.Mutex
	processes map[string]struct{}
}

// NewServer creates a server for repository.
func NewServer(
	repository domain.RepositoryID,
	storage ports.Storage,
	registry *distributed.Registry,
	logger ports.Logger,
	update UpdateFunc,
	opts ...Option,
) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		repository: repository,
		storage:    storage,
		registry:   registry,
		logger:     logger,
		update:     update,
		newID:      uuid.NewString,
		ctx:        ctx,
		cancel:     cancel,
		processes:  make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the routes of the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST "+remote.ServiceAddPath, s.handleServiceAdd)
	mux.HandleFunc("GET "+remote.ServiceProcessPath+"{id}", s.handleProcess)
	mux.HandleFunc("POST "+remote.DistributedPath, s.handleRegister)
	mux.HandleFunc("GET "+remote.DistributedPath, s.handleWorkers)
	mux.HandleFunc("DELETE "+remote.DistributedPath, s.handleRemoveAll)
	mux.HandleFunc("DELETE "+remote.DistributedPath+"/{id}", s.handleRemove)
	if s.gatherer != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{EnableOpenMetrics: true}))
	}
	return mux
}

// ListenAndServe serves on address until ctx is cancelled, then shuts down
// and cancels the running processes.
func (s *Server) ListenAndServe(ctx context.Context, address string) error {
	ln, err := net.Listen("tcp", address)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to listen"), "address", address)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.logger.Info("listening on " + ln.Addr().String())

	select {
	case err := <-errCh:
		s.Close()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return zerr.Wrap(err, "http server failed")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	s.Close()
	if err != nil {
		return zerr.Wrap(err, "failed to shut down http server")
	}
	return nil
}

// Close cancels running processes and waits for them to finish.
func (s *Server) Close() {
	s.cancel()
	s.wg.Wait()
}

// Wait blocks until every spawned process has finished.
func (s *Server) Wait() {
	s.wg.Wait()
}

// IsAlive reports whether the process is running.
func (s *Server) IsAlive(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.processes[id]
	return ok
}

// spawn starts an update of packages in the background.
func (s *Server) spawn(packages []domain.Package, opts domain.UpdateOptions) string {
	id := s.newID()
	bases := domain.Bases(packages)

	s.mu.Lock()
	s.processes[id] = struct{}{}
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() {
			s.mu.Lock()
			delete(s.processes, id)
			s.mu.Unlock()
		}()

		if err := s.update(s.ctx, bases, opts); err != nil {
			s.logger.Error(zerr.With(zerr.Wrap(err, "update process failed"), "process", id))
		}

		// the queue must be cleared even when the server is shutting down
		ctx := context.WithoutCancel(s.ctx)
		for _, base := range bases {
			if err := s.storage.BuildQueueClear(ctx, s.repository, base); err != nil {
				s.logger.Error(zerr.With(err, "process", id))
			}
		}
	}()
	return id
}

func (s *Server) refreshWorkerGauge() {
	if s.metrics != nil {
		s.metrics.SetWorkers(len(s.registry.Workers()))
	}
}
