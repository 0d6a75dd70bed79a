package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pacforge/internal/adapters/logger"
	"go.trai.ch/pacforge/internal/core/domain"
	"go.trai.ch/pacforge/internal/core/ports"
)

// NodeID is the unique identifier for the executor Graft node.
const NodeID graft.ID = "adapter.executor"

func init() {
	graft.Register(graft.Node[ports.Executor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Executor, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewExecutor(log), nil
		},
	})
}

// ToolchainNodeID is the unique identifier for the toolchain factory Graft node.
const ToolchainNodeID graft.ID = "adapter.toolchain"

// ToolchainFactory creates command based toolchains.
type ToolchainFactory struct {
	executor ports.Executor
}

// NewToolchain implements ports.ToolchainFactory.
func (f *ToolchainFactory) NewToolchain(config domain.BuildConfig) ports.Toolchain {
	return NewToolchain(f.executor, config.Command, config.PublishCommand)
}

func init() {
	graft.Register(graft.Node[ports.ToolchainFactory]{
		ID:        ToolchainNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (ports.ToolchainFactory, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return &ToolchainFactory{executor: executor}, nil
		},
	})
}
