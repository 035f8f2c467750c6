package lockgen

import (
	"slices"
	"strings"

	"go.trai.ch/pipbridge/internal/core/domain"
)

// Adjacency is a locally owned copy of the dependency edges of a resolved graph.
// Keys are normalized names plus "name[extra]" feature keys for optional dependency groups.
type Adjacency struct {
	edges *domain.SortedMap[[]string]
}

// BuildAdjacency copies the edges of every non-virtual, version-bearing node of graph.
// When several nodes share a name their edges are unioned.
func BuildAdjacency(graph *domain.LockGraph) *Adjacency {
	a := &Adjacency{edges: domain.NewSortedMap[[]string]()}
	if graph == nil {
		return a
	}

	for i := range graph.Packages {
		pkg := &graph.Packages[i]
		if pkg.Virtual || pkg.Version == "" {
			continue
		}
		name := domain.NormalizeName(pkg.Name)
		a.add(name, edgeTargets(pkg.Dependencies)...)

		for extra, deps := range pkg.Optional {
			feature := featureKey(name, extra)
			a.add(feature, name)
			a.add(feature, edgeTargets(deps)...)
		}
	}
	return a
}

func (a *Adjacency) add(key string, targets ...string) {
	existing, _ := a.edges.Get(key)
	for _, t := range targets {
		if !slices.Contains(existing, t) {
			existing = append(existing, t)
		}
	}
	a.edges.Set(key, existing)
}

func edgeTargets(edges []domain.LockEdge) []string {
	targets := make([]string, 0, len(edges))
	for _, e := range edges {
		name := domain.NormalizeName(e.Name)
		targets = append(targets, name)
		for _, extra := range e.Extras {
			targets = append(targets, featureKey(name, extra))
		}
	}
	return targets
}

func featureKey(name, extra string) string {
	return name + "[" + domain.NormalizeName(extra) + "]"
}

// baseName strips a feature suffix from key.
func baseName(key string) string {
	if i := strings.IndexByte(key, '['); i >= 0 {
		return key[:i]
	}
	return key
}

// Reachable returns every key reachable from roots in breadth-first order.
// Each key is visited at most once, so cycles terminate.
func (a *Adjacency) Reachable(roots []string) []string {
	visited := make(map[string]struct{}, len(roots))
	order := make([]string, 0, len(roots))
	queue := slices.Clone(roots)

	for len(queue) > 0 {
		key := queue[0]
		queue = queue[1:]
		if _, seen := visited[key]; seen {
			continue
		}
		visited[key] = struct{}{}
		order = append(order, key)

		next, _ := a.edges.Get(key)
		for _, dep := range next {
			if _, seen := visited[dep]; !seen {
				queue = append(queue, dep)
			}
		}
	}
	return order
}

// Direct returns the sorted package names that name depends on unconditionally.
func (a *Adjacency) Direct(name string) []string {
	next, _ := a.edges.Get(domain.NormalizeName(name))
	return baseNames(next)
}

// Roots returns the traversal roots for one manifest section: every normalized
// package name plus a feature key per requested extra.
func Roots(section *domain.SortedMap[domain.PackageSpec]) []string {
	roots := make([]string, 0, section.Len())
	for key, spec := range section.All() {
		name := domain.NormalizeName(key)
		roots = append(roots, name)
		for _, extra := range domain.SpecExtras(spec) {
			roots = append(roots, featureKey(name, extra))
		}
	}
	return roots
}

// Categorize splits the reachable packages into the default and develop sets.
// A name reachable from both sections belongs to default only.
func Categorize(a *Adjacency, m *domain.Manifest) ([]string, []string) {
	defaults := baseNames(a.Reachable(Roots(m.Packages)))

	var develop []string
	for _, name := range baseNames(a.Reachable(Roots(m.DevPackages))) {
		if _, found := slices.BinarySearch(defaults, name); !found {
			develop = append(develop, name)
		}
	}
	return defaults, develop
}

func baseNames(keys []string) []string {
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, baseName(k))
	}
	slices.Sort(names)
	return slices.Compact(names)
}
