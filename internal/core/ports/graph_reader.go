package ports

import "go.trai.ch/pipbridge/internal/core/domain"

// GraphReader defines the interface for reading the resolution engine's output.
//
//go:generate mockgen -source=graph_reader.go -destination=mocks/mock_graph_reader.go -package=mocks
type GraphReader interface {
	// Read decodes the resolved graph at path.
	// Returns nil, nil if no graph exists yet.
	Read(path string) (*domain.LockGraph, error)
}
