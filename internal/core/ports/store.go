package ports

import "go.trai.ch/pipbridge/internal/core/domain"

// FingerprintStore defines the interface for tracking which inputs produced a generated file.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type FingerprintStore interface {
	// Get retrieves the fingerprint recorded for output.
	// Returns nil, nil if not found.
	Get(stateDir, output string) (*domain.Fingerprint, error)

	// Put records the fingerprint.
	Put(stateDir string, fp domain.Fingerprint) error

	// Digest computes the fingerprint digest of the given inputs.
	Digest(inputs ...[]byte) string
}
