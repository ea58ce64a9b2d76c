package saltcloud

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/herd/internal/core/ports"
)

// NodeID is the unique identifier for the salt-cloud store Graft node.
const NodeID graft.ID = "adapter.saltcloud"

func init() {
	graft.Register(graft.Node[ports.ProfileStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ProfileStore, error) {
			return NewStore(), nil
		},
	})
}
