// Package lockgen reconstructs Pipfile.lock from the resolver's dependency graph.
package lockgen

import (
	"slices"
	"strings"

	"go.trai.ch/pipbridge/internal/core/domain"
)

// Generate builds the legacy lock artifact for m from graph.
// A nil graph means nothing has been resolved yet; Generate then returns (nil, nil).
func Generate(graph *domain.LockGraph, m *domain.Manifest) (*domain.LegacyLock, error) {
	if graph == nil {
		return nil, nil
	}
	if m == nil {
		m = domain.NewManifest()
	}

	hash, err := ContentHash(m)
	if err != nil {
		return nil, err
	}

	nodes := firstNodes(graph)
	defaults, develop := Categorize(BuildAdjacency(graph), m)

	lock := &domain.LegacyLock{
		Meta: domain.LockMeta{
			Hash:        domain.LockHash{SHA256: hash},
			PipfileSpec: domain.LockSpecVersion,
			Requires:    requiresJSON(m.Requires),
			Sources:     lockSources(m.Sources),
		},
		Default: entries(defaults, nodes, m.Sources),
		Develop: entries(develop, nodes, m.Sources),
	}
	return lock, nil
}

// firstNodes maps each normalized name to the first matching node of graph.
func firstNodes(graph *domain.LockGraph) map[string]*domain.LockedPackage {
	nodes := make(map[string]*domain.LockedPackage, len(graph.Packages))
	for i := range graph.Packages {
		pkg := &graph.Packages[i]
		if pkg.Virtual || pkg.Version == "" {
			continue
		}
		name := domain.NormalizeName(pkg.Name)
		if _, ok := nodes[name]; !ok {
			nodes[name] = pkg
		}
	}
	return nodes
}

func entries(names []string, nodes map[string]*domain.LockedPackage, sources []domain.Source) map[string]domain.LockedEntry {
	out := make(map[string]domain.LockedEntry, len(names))
	for _, name := range names {
		pkg, ok := nodes[name]
		if !ok {
			continue
		}
		hashes := slices.Clone(pkg.Hashes)
		if hashes == nil {
			hashes = []string{}
		}
		out[name] = domain.LockedEntry{
			Hashes:  hashes,
			Index:   MatchSource(pkg.IndexURL, sources),
			Version: "==" + pkg.Version,
		}
	}
	return out
}

// MatchSource returns the name of the first source whose URL is a prefix of indexURL
// or has indexURL as a prefix. It returns "" when nothing matches.
func MatchSource(indexURL string, sources []domain.Source) string {
	if indexURL == "" {
		return ""
	}
	for _, s := range sources {
		if s.URL == "" {
			continue
		}
		if strings.HasPrefix(indexURL, s.URL) || strings.HasPrefix(s.URL, indexURL) {
			return s.Name
		}
	}
	return ""
}

func lockSources(sources []domain.Source) []domain.LockSource {
	out := make([]domain.LockSource, 0, len(sources))
	for _, s := range sources {
		out = append(out, domain.LockSource{Name: s.Name, URL: s.URL, VerifySSL: s.VerifySSL})
	}
	return out
}
