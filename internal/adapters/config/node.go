package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pipbridge/internal/adapters/logger"
	"go.trai.ch/pipbridge/internal/core/ports"
)

// NodeID is the unique identifier for the workspace locator Graft node.
const NodeID graft.ID = "adapter.workspace_locator"

func init() {
	graft.Register(graft.Node[ports.WorkspaceLocator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.WorkspaceLocator, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLocator(log), nil
		},
	})
}
