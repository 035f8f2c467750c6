package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pipbridge/internal/core/ports"
)

const (
	// WriterNodeID is the unique identifier for the file writer Graft node.
	WriterNodeID graft.ID = "adapter.fs.writer"
	// FinderNodeID is the unique identifier for the project finder Graft node.
	FinderNodeID graft.ID = "adapter.fs.finder"
)

func init() {
	graft.Register(graft.Node[ports.FileWriter]{
		ID:        WriterNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileWriter, error) {
			return NewWriter(), nil
		},
	})

	graft.Register(graft.Node[ports.ProjectFinder]{
		ID:        FinderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ProjectFinder, error) {
			return NewWalker(DefaultIgnores), nil
		},
	})
}
