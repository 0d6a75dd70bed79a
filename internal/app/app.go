// Package app implements the application layer for pacforge.
package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/pacforge/internal/adapters/httpapi" //nolint:depguard // Wired in app layer
	"go.trai.ch/pacforge/internal/core/domain"
	"go.trai.ch/pacforge/internal/core/ports"
	"go.trai.ch/pacforge/internal/engine/distributed"
	"go.trai.ch/pacforge/internal/engine/triggers"
	"go.trai.ch/pacforge/internal/engine/updater"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	storage      ports.StorageOpener
	toolchains   ports.ToolchainFactory
	clients      ports.ClientFactory
	registrars   ports.RegistrarFactory
	metrics      ports.Metrics
	registry     *prometheus.Registry
	tracer       trace.Tracer
	triggers     *triggers.Registry
	clock        clockwork.Clock
	configPath   string

	// serveMu serializes updates requested over HTTP.
	serveMu sync.Mutex
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	storage ports.StorageOpener,
	toolchains ports.ToolchainFactory,
	clients ports.ClientFactory,
	registrars ports.RegistrarFactory,
	metrics ports.Metrics,
	registry *prometheus.Registry,
	tracer trace.Tracer,
) *App {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	return &App{
		configLoader: loader,
		logger:       log,
		storage:      storage,
		toolchains:   toolchains,
		clients:      clients,
		registrars:   registrars,
		metrics:      metrics,
		registry:     registry,
		tracer:       tracer,
		triggers:     triggers.DefaultRegistry(),
		clock:        clockwork.NewRealClock(),
	}
}

// WithTriggers replaces the registry triggers are looked up in.
// This is primarily used for testing.
func (a *App) WithTriggers(registry *triggers.Registry) *App {
	a.triggers = registry
	return a
}

// WithClock replaces the clock of the worker registry and the heartbeat.
func (a *App) WithClock(clock clockwork.Clock) *App {
	a.clock = clock
	return a
}

// SetConfigPath sets the configuration file used by every command.
// An empty path selects the default file.
func (a *App) SetConfigPath(path string) {
	a.configPath = path
}

// SetJSONLogs switches the logger to JSON output if it supports it.
func (a *App) SetJSONLogs(enable bool) {
	if l, ok := a.logger.(interface{ SetJSON(enable bool) }); ok {
		l.SetJSON(enable)
	}
}

// UpdateOptions configuration for the Update method.
type UpdateOptions struct {
	domain.UpdateOptions

	// Workers overrides the configured workers for this run.
	Workers []string
}

// Update builds and publishes the given package bases, or the whole catalog
// when no base is given. Per-package failures are reported in the result.
func (a *App) Update(ctx context.Context, bases []string, opts UpdateOptions) (*domain.Result, error) {
	cfg, storage, err := a.open()
	if err != nil {
		return nil, err
	}
	defer a.closeStorage(storage)

	u, err := a.selectUpdater(ctx, cfg, opts.Workers)
	if err != nil {
		return nil, err
	}
	return a.update(ctx, cfg, storage, u, bases, opts.UpdateOptions)
}

func (a *App) selectUpdater(ctx context.Context, cfg *domain.Configuration, addresses []string) (updater.Updater, error) {
	workers := make([]domain.Worker, 0, len(addresses))
	for _, address := range addresses {
		workers = append(workers, domain.NewWorker(address, ""))
	}

	if len(workers) == 0 && cfg.Build.UseRegisteredWorkers {
		registrar, err := a.registrar(cfg)
		if err != nil {
			return nil, err
		}
		registered, err := registrar.Workers(ctx)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to fetch registered workers")
		}
		if len(registered) == 0 {
			return nil, zerr.With(zerr.Wrap(domain.ErrNoWorkers, "no registered workers"), "coordinator", cfg.Distributed.Coordinator)
		}
		workers = registered
	}

	toolchain := a.toolchains.NewToolchain(cfg.Build)
	return updater.Select(cfg, workers, toolchain, toolchain, a.clients, a.logger), nil
}

//nolint:cyclop // orchestration function
func (a *App) update(
	ctx context.Context,
	cfg *domain.Configuration,
	storage ports.Storage,
	u updater.Updater,
	bases []string,
	opts domain.UpdateOptions,
) (*domain.Result, error) {
	// 1. Resolve the requested bases against the catalog
	packages, err := lookupPackages(ctx, storage, cfg.Repository, bases)
	if err != nil {
		return nil, err
	}
	if len(packages) == 0 {
		a.logger.Info("nothing to update in " + cfg.Repository.String())
		return domain.NewResult(), nil
	}

	// 2. Load the triggers before anything is built
	pipeline, err := triggers.NewLoader(a.triggers).Load(cfg.Build.Triggers, triggers.Environment{
		Repository:    cfg.Repository,
		Configuration: cfg,
		Logger:        a.logger,
		Events:        storage,
		Registerer:    a.registry,
	})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load triggers")
	}
	pipeline.OnStart(ctx)
	defer pipeline.OnStop(context.WithoutCancel(ctx))

	// 3. Build
	a.logger.Info(fmt.Sprintf("updating %d package(s) in %s using %s updater",
		len(packages), cfg.Repository, u.Name()))
	result, err := updater.NewRunner(a.logger, a.metrics, a.tracer).Run(ctx, u, packages, opts)
	if err != nil {
		return nil, zerr.Wrap(err, "update failed")
	}

	// 4. Report and record the new packager
	pipeline.Process(ctx, result, packages)
	if opts.Packager != "" {
		for _, pkg := range result.Success() {
			pkg.Packager = opts.Packager
			if err := storage.PackageUpdate(ctx, cfg.Repository, &pkg); err != nil {
				a.logger.Error(zerr.With(zerr.Wrap(err, "failed to record packager"), "package", pkg.Base))
			}
		}
	}
	return result, nil
}

func lookupPackages(
	ctx context.Context,
	storage ports.PackageStore,
	repository domain.RepositoryID,
	bases []string,
) ([]domain.Package, error) {
	packages, err := storage.PackageGet(ctx, repository, bases...)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read package catalog")
	}

	known := make(map[string]struct{}, len(packages))
	for _, pkg := range packages {
		known[pkg.Base] = struct{}{}
	}
	for _, base := range bases {
		if _, ok := known[base]; !ok {
			return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrPackageNotFound, "unknown package"), "package", base), "repository", repository.String())
		}
	}
	return packages, nil
}

// Serve runs the HTTP service until ctx is cancelled. When a coordinator and
// an address are configured the instance also registers itself as a worker.
func (a *App) Serve(ctx context.Context) error {
	cfg, storage, err := a.open()
	if err != nil {
		return err
	}
	defer a.closeStorage(storage)

	var heartbeat *distributed.Heartbeat
	if cfg.Distributed.Coordinator != "" && cfg.Distributed.Address != "" {
		registrar, err := a.registrar(cfg)
		if err != nil {
			return err
		}
		heartbeat = distributed.NewHeartbeat(cfg.Worker(), registrar, a.logger, cfg.Distributed.TimeToLive, a.clock)
	}

	toolchain := a.toolchains.NewToolchain(cfg.Build)
	local := updater.NewLocal(cfg.Repository, toolchain, toolchain, a.logger)

	registry := distributed.NewRegistry(a.clock, cfg.Distributed.TimeToLive)
	server := httpapi.NewServer(cfg.Repository, storage, registry, a.logger,
		func(ctx context.Context, bases []string, opts domain.UpdateOptions) error {
			a.serveMu.Lock()
			defer a.serveMu.Unlock()
			_, err := a.update(ctx, cfg, storage, local, bases, opts)
			return err
		},
		httpapi.WithMetrics(a.metrics, a.registry),
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.ListenAndServe(ctx, cfg.Distributed.Listen)
	})
	if heartbeat != nil {
		g.Go(func() error {
			if err := heartbeat.Start(ctx); err != nil {
				return err
			}
			<-ctx.Done()
			return heartbeat.Stop(ctx)
		})
	}

	return g.Wait()
}

// Workers lists the live workers of the configured coordinator, or the
// configured build workers when there is none. With all set it lists every
// worker ever registered with this instance instead.
func (a *App) Workers(ctx context.Context, all bool) ([]domain.Worker, error) {
	cfg, err := a.configuration()
	if err != nil {
		return nil, err
	}

	if all {
		storage, err := a.openStorage(cfg)
		if err != nil {
			return nil, err
		}
		defer a.closeStorage(storage)
		workers, err := storage.WorkersGet(ctx)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to read workers")
		}
		return workers, nil
	}

	if cfg.Distributed.Coordinator == "" {
		workers := make([]domain.Worker, 0, len(cfg.Build.Workers))
		for _, address := range cfg.Build.Workers {
			workers = append(workers, domain.NewWorker(address, ""))
		}
		return workers, nil
	}

	registrar, err := a.registrar(cfg)
	if err != nil {
		return nil, err
	}
	workers, err := registrar.Workers(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to fetch registered workers")
	}
	return workers, nil
}

// RemoveWorker removes the worker with identifier from the coordinator, if one
// is configured, and from the local worker history.
func (a *App) RemoveWorker(ctx context.Context, identifier string) error {
	cfg, storage, err := a.open()
	if err != nil {
		return err
	}
	defer a.closeStorage(storage)

	if cfg.Distributed.Coordinator != "" {
		registrar, err := a.registrar(cfg)
		if err != nil {
			return err
		}
		if err := registrar.Unregister(ctx, domain.Worker{Identifier: identifier}); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to unregister worker"), "worker", identifier)
		}
	}

	if err := storage.WorkersRemove(ctx, identifier); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove worker"), "worker", identifier)
	}
	a.logger.Info("removed worker " + identifier)
	return nil
}

// AddPackages reads package definitions from a JSON file and stores them in
// the catalog. The file holds either one package object or an array of them.
func (a *App) AddPackages(ctx context.Context, path string) ([]domain.Package, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read package file"), "path", path)
	}
	packages, err := decodePackages(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	cfg, storage, err := a.open()
	if err != nil {
		return nil, err
	}
	defer a.closeStorage(storage)

	for i := range packages {
		if err := storage.PackageUpdate(ctx, cfg.Repository, &packages[i]); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to store package"), "package", packages[i].Base)
		}
	}
	a.logger.Info(fmt.Sprintf("added %d package(s) to %s", len(packages), cfg.Repository))
	return packages, nil
}

func decodePackages(data []byte) ([]domain.Package, error) {
	data = bytes.TrimSpace(data)

	var packages []domain.Package
	if bytes.HasPrefix(data, []byte("[")) {
		if err := json.Unmarshal(data, &packages); err != nil {
			return nil, zerr.Wrap(domain.ErrInvalidPackage, err.Error())
		}
	} else {
		var pkg domain.Package
		if err := json.Unmarshal(data, &pkg); err != nil {
			return nil, zerr.Wrap(domain.ErrInvalidPackage, err.Error())
		}
		packages = append(packages, pkg)
	}

	for i, pkg := range packages {
		if strings.TrimSpace(pkg.Base) == "" {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidPackage, "package base is required"), "index", i)
		}
	}
	return packages, nil
}

// ListPackages returns the package catalog of the repository.
func (a *App) ListPackages(ctx context.Context) ([]domain.Package, error) {
	cfg, storage, err := a.open()
	if err != nil {
		return nil, err
	}
	defer a.closeStorage(storage)

	packages, err := storage.PackageGet(ctx, cfg.Repository)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read package catalog")
	}
	return packages, nil
}

// EventsOptions configuration for the Events method.
type EventsOptions struct {
	Event    string
	ObjectID string
	Limit    int
}

// Events lists the recorded package events, newest first.
func (a *App) Events(ctx context.Context, opts EventsOptions) ([]domain.Event, error) {
	cfg, storage, err := a.open()
	if err != nil {
		return nil, err
	}
	defer a.closeStorage(storage)

	events, err := storage.EventGet(ctx, cfg.Repository, opts.Event, opts.ObjectID, opts.Limit)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read events")
	}
	return events, nil
}

func (a *App) configuration() (*domain.Configuration, error) {
	cfg, err := a.configLoader.Load(a.configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

func (a *App) open() (*domain.Configuration, ports.Storage, error) {
	cfg, err := a.configuration()
	if err != nil {
		return nil, nil, err
	}
	storage, err := a.openStorage(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, storage, nil
}

func (a *App) openStorage(cfg *domain.Configuration) (ports.Storage, error) {
	storage, err := a.storage.Open(cfg.StoragePath)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open storage"), "path", cfg.StoragePath)
	}
	return storage, nil
}

func (a *App) closeStorage(storage ports.Storage) {
	if err := storage.Close(); err != nil {
		a.logger.Error(zerr.Wrap(err, "failed to close storage"))
	}
}

func (a *App) registrar(cfg *domain.Configuration) (ports.WorkerRegistrar, error) {
	if cfg.Distributed.Coordinator == "" {
		return nil, zerr.Wrap(domain.ErrInvalidConfig, "distributed.coordinator is required")
	}
	registrar, err := a.registrars.NewRegistrar(cfg.Distributed.Coordinator)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create coordinator client"), "coordinator", cfg.Distributed.Coordinator)
	}
	return registrar, nil
}
