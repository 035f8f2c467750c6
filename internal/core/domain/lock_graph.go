package domain

// LockGraph is the resolved dependency graph produced by the resolution engine.
// It is read-only input: consumers copy what they need before traversing it.
type LockGraph struct {
	Packages []LockedPackage
}

// LockedPackage is one resolved node of the graph.
type LockedPackage struct {
	// Name is the normalized package name.
	Name string

	// Version is the resolved version, empty for nodes without a fixed version.
	Version string

	// Hashes are the distribution hashes in "sha256:<hex>" form, sdist first.
	Hashes []string

	// Dependencies are the unconditional dependency edges.
	Dependencies []LockEdge

	// Optional maps an extra name to the edges it activates.
	Optional map[string][]LockEdge

	// IndexURL is the registry the package was resolved from, empty for non-registry sources.
	IndexURL string

	// Virtual marks the node that stands for the consuming project itself.
	Virtual bool
}

// LockEdge is a dependency edge, optionally activating extras of the target.
type LockEdge struct {
	Name   string
	Extras []string
}
