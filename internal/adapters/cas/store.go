// Package cas stores fingerprints of the inputs that produced each generated file.
package cas

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	pbfs "go.trai.ch/pipbridge/internal/adapters/fs"
	"go.trai.ch/pipbridge/internal/core/domain"
	"go.trai.ch/pipbridge/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FingerprintStore = (*Store)(nil)

// Store implements ports.FingerprintStore using a file-per-output strategy.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the fingerprint recorded for output.
func (s *Store) Get(stateDir, output string) (*domain.Fingerprint, error) {
	filename := s.filename(stateDir, output)
	//nolint:gosec // Path is constructed from the state directory and a hashed name
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", filename)
	}

	var fp domain.Fingerprint
	if err := json.Unmarshal(data, &fp); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", filename)
	}

	return &fp, nil
}

// Put stores the fingerprint.
func (s *Store) Put(stateDir string, fp domain.Fingerprint) error {
	data, err := json.MarshalIndent(fp, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	filename := s.filename(stateDir, fp.Output)
	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "path", stateDir)
	}

	if err := pbfs.WriteFileAtomic(filename, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", filename)
	}

	return nil
}

// Digest hashes the inputs with XXHash. Each input is length-prefixed so that
// moving bytes between adjacent inputs changes the digest.
func (s *Store) Digest(inputs ...[]byte) string {
	hasher := xxhash.New()
	var size [8]byte
	for _, in := range inputs {
		binary.LittleEndian.PutUint64(size[:], uint64(len(in)))
		_, _ = hasher.Write(size[:])
		_, _ = hasher.Write(in)
	}
	return fmt.Sprintf("%016x", hasher.Sum64())
}

func (s *Store) filename(stateDir, output string) string {
	return filepath.Join(stateDir, fmt.Sprintf("%016x.json", xxhash.Sum64String(output)))
}
