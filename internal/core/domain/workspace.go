package domain

import (
	"path/filepath"
	"time"
)

// Workspace is a located project: the manifest plus every path derived from it.
type Workspace struct {
	// Dir is the directory containing the manifest.
	Dir string

	// ManifestPath is the absolute path of the Pipfile.
	ManifestPath string

	// ProjectName is the name written to the generated project manifest.
	ProjectName string

	// ProjectPath is where pyproject.toml is written.
	ProjectPath string

	// ResolvedGraphPath is where the resolution engine leaves uv.lock.
	ResolvedGraphPath string

	// LockPath is where Pipfile.lock is written.
	LockPath string

	// StateDir holds fingerprint state.
	StateDir string
}

// NewWorkspace returns a Workspace with the default layout for the given manifest.
func NewWorkspace(manifestPath, projectName string) *Workspace {
	dir := filepath.Dir(manifestPath)
	return &Workspace{
		Dir:               dir,
		ManifestPath:      manifestPath,
		ProjectName:       projectName,
		ProjectPath:       filepath.Join(dir, ProjectFileName),
		ResolvedGraphPath: filepath.Join(dir, ResolvedGraphFileName),
		LockPath:          filepath.Join(dir, LegacyLockFileName),
		StateDir:          DefaultStatePath(dir),
	}
}

// Fingerprint records the input digest that produced a generated file.
type Fingerprint struct {
	Output    string    `json:"output"`
	Digest    string    `json:"digest"`
	Timestamp time.Time `json:"timestamp"`
}
