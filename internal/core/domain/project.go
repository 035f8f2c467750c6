package domain

// ProjectManifest is the pyproject.toml handed to the resolution engine.
// It is built fresh on every bridge call and never mutated afterwards.
type ProjectManifest struct {
	Name           string
	Version        string
	RequiresPython string

	// Dependencies are PEP 508 requirement strings from [packages].
	Dependencies []string

	// DevDependencies are PEP 508 requirement strings from [dev-packages].
	DevDependencies []string

	// Indexes are the package indexes in source order.
	Indexes []Index

	// Sources are per-package overrides keyed by package name.
	Sources *SortedMap[SourceOverride]
}

// Index is a [[tool.uv.index]] entry.
type Index struct {
	Name    string
	URL     string
	Default bool
}

// SourceOverride pins a package to a git repository, a local path, or a named index.
// Exactly one of Git, Path, or Index is set.
type SourceOverride struct {
	Git      string
	Rev      string
	Path     string
	Editable bool
	Index    string
}
