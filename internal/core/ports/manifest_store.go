package ports

import "go.trai.ch/pipbridge/internal/core/domain"

// ManifestStore defines the interface for reading and writing the Pipfile.
//
//go:generate mockgen -source=manifest_store.go -destination=mocks/mock_manifest_store.go -package=mocks
type ManifestStore interface {
	// Load reads and parses the manifest at path.
	Load(path string) (*domain.Manifest, error)

	// Save renders the manifest and writes it to path.
	Save(path string, manifest *domain.Manifest) error
}
