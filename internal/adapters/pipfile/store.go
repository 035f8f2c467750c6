package pipfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/pipbridge/internal/adapters/fs"
	"go.trai.ch/pipbridge/internal/core/domain"
	"go.trai.ch/pipbridge/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestStore = (*Store)(nil)

// Store implements ports.ManifestStore on the local file system.
type Store struct {
	logger ports.Logger
}

// NewStore creates a new Store that reports unknown keys through logger.
func NewStore(logger ports.Logger) *Store {
	return &Store{logger: logger}
}

// Load reads and parses the manifest at path.
func (s *Store) Load(path string) (*domain.Manifest, error) {
	//nolint:gosec // Path comes from manifest discovery
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, zerr.With(domain.ErrManifestNotFound, "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestRead.Error()), "path", path)
	}

	m, unknown, err := decode(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	for _, key := range unknown {
		s.logger.Warn(fmt.Sprintf("ignoring unknown key %q in %s", key, filepath.Base(path)))
	}

	return m, nil
}

// Save renders the manifest and atomically replaces the file at path.
func (s *Store) Save(path string, m *domain.Manifest) error {
	text, err := Render(m)
	if err != nil {
		return zerr.With(err, "path", path)
	}

	if err := fs.WriteFileAtomic(path, []byte(text), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrManifestWrite.Error()), "path", path)
	}
	return nil
}
