package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/herd/internal/adapters/logger"
	"go.trai.ch/herd/internal/core/ports"
)

// NodeID is the unique identifier for the local runner Graft node.
const NodeID graft.ID = "adapter.local_runner"

func init() {
	graft.Register(graft.Node[ports.LocalRunner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.LocalRunner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(log), nil
		},
	})
}
