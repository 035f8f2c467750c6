package domain

// DependencyTree is the resolved dependency tree of both manifest sections.
type DependencyTree struct {
	Default []TreeNode `json:"default"`
	Develop []TreeNode `json:"develop"`
}

// TreeNode is one package of a DependencyTree.
type TreeNode struct {
	Name    string `json:"name"`
	Version string `json:"version"`

	// Dependencies are sorted by name.
	Dependencies []TreeNode `json:"dependencies,omitempty"`

	// Cycle marks a package that already appears on the path from the root.
	// Its dependencies are not expanded again.
	Cycle bool `json:"cycle,omitempty"`
}
