package domain

import "path/filepath"

const (
	// ManifestFileName is the name of the legacy manifest.
	ManifestFileName = "Pipfile"

	// LegacyLockFileName is the name of the reconstructed legacy lock artifact.
	LegacyLockFileName = "Pipfile.lock"

	// ProjectFileName is the name of the generated project manifest.
	ProjectFileName = "pyproject.toml"

	// ResolvedGraphFileName is the name of the resolution engine's lock file.
	ResolvedGraphFileName = "uv.lock"

	// SettingsFileName is the name of the optional per-project settings file.
	SettingsFileName = ".pipbridge.yaml"

	// EnvFileName is the name of the optional per-project dotenv file.
	EnvFileName = ".env"

	// StateDirName is the name of the internal state directory.
	StateDirName = ".pipbridge"

	// FingerprintFileName is the name of the fingerprint state file.
	FingerprintFileName = "fingerprints.json"

	// DefaultProjectVersion is the placeholder version of the generated project.
	DefaultProjectVersion = "0.0.0"

	// DefaultProjectName is used when no project name can be derived.
	DefaultProjectName = "project"

	// DefaultMaxDepth is how many parent directories are searched for a Pipfile.
	DefaultMaxDepth = 3

	// LockSpecVersion is the legacy lock format version written to _meta.
	LockSpecVersion = 6

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultStatePath returns the state directory below the given project directory.
func DefaultStatePath(projectDir string) string {
	return filepath.Join(projectDir, StateDirName)
}
