package sqlite

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pacforge/internal/core/ports"
)

// NodeID is the unique identifier for the storage opener Graft node.
const NodeID graft.ID = "adapter.storage"

// Opener opens SQLite storages.
type Opener struct{}

// Open implements ports.StorageOpener.
func (Opener) Open(path string) (ports.Storage, error) {
	storage, err := Open(path)
	if err != nil {
		return nil, err
	}
	return storage, nil
}

func init() {
	graft.Register(graft.Node[ports.StorageOpener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(context.Context) (ports.StorageOpener, error) {
			return Opener{}, nil
		},
	})
}
