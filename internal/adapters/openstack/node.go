package openstack

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/herd/internal/adapters/logger"
	"go.trai.ch/herd/internal/core/ports"
)

// NodeID is the unique identifier for the OpenStack connector Graft node.
const NodeID graft.ID = "adapter.openstack"

func init() {
	graft.Register(graft.Node[ports.CloudConnector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.CloudConnector, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewConnector(log), nil
		},
	})
}
