package ssh

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/herd/internal/adapters/logger"
	"go.trai.ch/herd/internal/core/ports"
)

// NodeID is the unique identifier for the SSH executor Graft node.
const NodeID graft.ID = "adapter.ssh"

func init() {
	graft.Register(graft.Node[ports.RemoteExecutor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.RemoteExecutor, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewExecutor(log), nil
		},
	})
}
