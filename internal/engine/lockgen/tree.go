package lockgen

import (
	"slices"

	"go.trai.ch/pipbridge/internal/core/domain"
)

// BuildTree expands every manifest entry into its resolved dependency tree.
// Entries missing from graph appear with an empty version and no dependencies.
func BuildTree(graph *domain.LockGraph, m *domain.Manifest) *domain.DependencyTree {
	if graph == nil {
		graph = &domain.LockGraph{}
	}
	if m == nil {
		m = domain.NewManifest()
	}

	b := &treeBuilder{
		adj:      BuildAdjacency(graph),
		nodes:    firstNodes(graph),
		visiting: make(map[string]bool),
	}
	return &domain.DependencyTree{
		Default: b.section(m.Packages),
		Develop: b.section(m.DevPackages),
	}
}

type treeBuilder struct {
	adj      *Adjacency
	nodes    map[string]*domain.LockedPackage
	visiting map[string]bool
}

func (b *treeBuilder) section(section *domain.SortedMap[domain.PackageSpec]) []domain.TreeNode {
	out := make([]domain.TreeNode, 0, section.Len())
	for key, spec := range section.All() {
		name := domain.NormalizeName(key)
		keys := []string{name}
		for _, extra := range domain.SpecExtras(spec) {
			keys = append(keys, featureKey(name, extra))
		}
		out = append(out, b.node(name, keys))
	}
	return out
}

// node builds the subtree of name, following the edges of every key in keys.
func (b *treeBuilder) node(name string, keys []string) domain.TreeNode {
	n := domain.TreeNode{Name: name}
	if pkg, ok := b.nodes[name]; ok {
		n.Version = pkg.Version
	}
	if b.visiting[name] {
		n.Cycle = true
		return n
	}
	b.visiting[name] = true
	defer delete(b.visiting, name)

	children := make(map[string][]string)
	for _, key := range keys {
		next, _ := b.adj.edges.Get(key)
		for _, dep := range next {
			base := baseName(dep)
			if base == name {
				continue
			}
			children[base] = append(children[base], dep)
		}
	}

	names := make([]string, 0, len(children))
	for dep := range children {
		names = append(names, dep)
	}
	slices.Sort(names)

	for _, dep := range names {
		n.Dependencies = append(n.Dependencies, b.node(dep, slices.Compact(slices.Sorted(slices.Values(children[dep])))))
	}
	return n
}
