// Package fs implements file system helpers for generated files.
package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/pipbridge/internal/core/domain"
	"go.trai.ch/zerr"
)

// Writer implements ports.FileWriter with atomic replacement.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteFile atomically replaces the file at path with data.
func (w *Writer) WriteFile(path string, data []byte) error {
	return WriteFileAtomic(path, data, domain.FilePerm)
}

// Exists reports whether a regular file exists at path.
func (w *Writer) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// WriteFileAtomic writes data to a temporary file next to path and renames it into place.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create temporary file"), "path", path)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, "failed to write temporary file"), "path", path)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close temporary file"), "path", path)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to set file mode"), "path", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to replace file"), "path", path)
	}
	return nil
}
