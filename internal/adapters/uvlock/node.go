package uvlock

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pipbridge/internal/core/ports"
)

// NodeID is the unique identifier for the uv.lock reader Graft node.
const NodeID graft.ID = "adapter.uvlock"

func init() {
	graft.Register(graft.Node[ports.GraphReader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.GraphReader, error) {
			return NewReader(), nil
		},
	})
}
