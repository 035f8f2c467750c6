package ports

import "go.trai.ch/pipbridge/internal/core/domain"

// LockStore defines the interface for persisting the legacy lock artifact.
//
//go:generate mockgen -source=lock_store.go -destination=mocks/mock_lock_store.go -package=mocks
type LockStore interface {
	// Write serializes the lock and writes it to path.
	Write(path string, lock *domain.LegacyLock) error

	// Read decodes the lock at path.
	// Returns nil, nil if the file does not exist.
	Read(path string) (*domain.LegacyLock, error)
}
