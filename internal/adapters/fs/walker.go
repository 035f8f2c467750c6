// Package fs provides file system adapters for writing outputs and discovering projects.
package fs

import (
	"errors"
	"io/fs"
	"path/filepath"
	"slices"

	"go.trai.ch/pipbridge/internal/core/domain"
	"go.trai.ch/pipbridge/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ProjectFinder = (*Walker)(nil)

// DefaultIgnores are directory names never descended into.
var DefaultIgnores = []string{
	".git",
	".jj",
	".venv",
	"venv",
	"node_modules",
	"__pycache__",
	".tox",
	".mypy_cache",
	domain.StateDirName,
}

// Walker finds projects by walking the file tree.
type Walker struct {
	ignores []string
}

// NewWalker creates a new Walker skipping directories matching any of ignores.
func NewWalker(ignores []string) *Walker {
	return &Walker{ignores: ignores}
}

// FindProjects implements ports.ProjectFinder.
func (w *Walker) FindProjects(root string) ([]string, error) {
	var dirs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && w.shouldSkipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Name() == domain.ManifestFileName && d.Type().IsRegular() {
			dirs = append(dirs, filepath.Dir(path))
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrManifestNotFound, "root", root)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to walk project tree"), "root", root)
	}

	slices.Sort(dirs)
	return dirs, nil
}

// shouldSkipDir reports whether a directory name matches one of the ignore patterns.
func (w *Walker) shouldSkipDir(name string) bool {
	for _, ignore := range w.ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			return true
		}
	}
	return false
}
