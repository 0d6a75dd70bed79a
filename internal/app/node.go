package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/pacforge/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/pacforge/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/pacforge/internal/adapters/metrics"   //nolint:depguard // Wired in app layer
	"go.trai.ch/pacforge/internal/adapters/remote"    //nolint:depguard // Wired in app layer
	"go.trai.ch/pacforge/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/pacforge/internal/adapters/sqlite"    //nolint:depguard // Wired in app layer
	"go.trai.ch/pacforge/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/pacforge/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			sqlite.NodeID,
			shell.ToolchainNodeID,
			remote.ClientFactoryNodeID,
			remote.RegistrarFactoryNodeID,
			metrics.NodeID,
			metrics.RegistryNodeID,
			telemetry.TracerNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	storage, err := graft.Dep[ports.StorageOpener](ctx)
	if err != nil {
		return nil, err
	}

	toolchains, err := graft.Dep[ports.ToolchainFactory](ctx)
	if err != nil {
		return nil, err
	}

	clients, err := graft.Dep[ports.ClientFactory](ctx)
	if err != nil {
		return nil, err
	}

	registrars, err := graft.Dep[ports.RegistrarFactory](ctx)
	if err != nil {
		return nil, err
	}

	recorder, err := graft.Dep[ports.Metrics](ctx)
	if err != nil {
		return nil, err
	}

	registry, err := graft.Dep[*prometheus.Registry](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[trace.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, storage, toolchains, clients, registrars, recorder, registry, tracer), nil
}
