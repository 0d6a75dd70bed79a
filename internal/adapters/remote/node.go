package remote

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pacforge/internal/core/ports"
)

const (
	// ClientFactoryNodeID is the unique identifier for the client factory Graft node.
	ClientFactoryNodeID graft.ID = "adapter.client_factory"
	// RegistrarFactoryNodeID is the unique identifier for the registrar factory Graft node.
	RegistrarFactoryNodeID graft.ID = "adapter.registrar_factory"
)

func init() {
	graft.Register(graft.Node[ports.ClientFactory]{
		ID:        ClientFactoryNodeID,
		Cacheable: true,
		Run: func(context.Context) (ports.ClientFactory, error) {
			return NewFactory(nil), nil
		},
	})

	graft.Register(graft.Node[ports.RegistrarFactory]{
		ID:        RegistrarFactoryNodeID,
		Cacheable: true,
		Run: func(context.Context) (ports.RegistrarFactory, error) {
			return NewFactory(nil), nil
		},
	})
}
