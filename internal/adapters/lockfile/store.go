// Package lockfile persists the reconstructed Pipfile.lock as JSON.
package lockfile

import (
	"bytes"
	_ "crypto/sha256" // registers the hash behind digest.SHA256
	"encoding/json"
	"errors"
	"os"

	"github.com/opencontainers/go-digest"
	"go.trai.ch/pipbridge/internal/adapters/fs"
	"go.trai.ch/pipbridge/internal/core/domain"
	"go.trai.ch/pipbridge/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.LockStore = (*Store)(nil)

// Store implements ports.LockStore.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Marshal renders lock as two-space indented JSON with a trailing newline.
func Marshal(lock *domain.LegacyLock) ([]byte, error) {
	if lock == nil {
		return nil, zerr.Wrap(zerr.New("nil lock"), domain.ErrLockSerialize.Error())
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(lock); err != nil {
		return nil, zerr.Wrap(err, domain.ErrLockSerialize.Error())
	}
	return buf.Bytes(), nil
}

// Write serializes lock and atomically replaces the file at path.
func (s *Store) Write(path string, lock *domain.LegacyLock) error {
	data, err := Marshal(lock)
	if err != nil {
		return zerr.With(err, "path", path)
	}

	if err := fs.WriteFileAtomic(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrLockWrite.Error()), "path", path)
	}
	return nil
}

// Read decodes the lock at path and validates its digests.
// Returns nil, nil if the file does not exist.
func (s *Store) Read(path string) (*domain.LegacyLock, error) {
	//nolint:gosec // Path is derived from the located workspace
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLockRead.Error()), "path", path)
	}

	var lock domain.LegacyLock
	if err := json.Unmarshal(data, &lock); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLockParse.Error()), "path", path)
	}

	if err := validate(&lock); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return &lock, nil
}

func validate(lock *domain.LegacyLock) error {
	meta := digest.NewDigestFromEncoded(digest.SHA256, lock.Meta.Hash.SHA256)
	if err := meta.Validate(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrInvalidHash.Error()), "field", "_meta.hash.sha256")
	}

	for section, entries := range map[string]map[string]domain.LockedEntry{
		"default": lock.Default,
		"develop": lock.Develop,
	} {
		for name, entry := range entries {
			for _, h := range entry.Hashes {
				if _, err := digest.Parse(h); err != nil {
					return zerr.With(zerr.With(zerr.Wrap(err, domain.ErrInvalidHash.Error()), "section", section), "package", name)
				}
			}
		}
	}
	return nil
}
