// Package uvlock reads the resolver's uv.lock into the domain graph model.
package uvlock

import (
	"errors"
	"os"

	"github.com/BurntSushi/toml"
	"go.trai.ch/pipbridge/internal/core/domain"
	"go.trai.ch/pipbridge/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.GraphReader = (*Reader)(nil)

type lockFile struct {
	Version  int          `toml:"version"`
	Packages []packageDTO `toml:"package"`
}

type packageDTO struct {
	Name                 string                     `toml:"name"`
	Version              string                     `toml:"version"`
	Source               sourceDTO                  `toml:"source"`
	Dependencies         []dependencyDTO            `toml:"dependencies"`
	OptionalDependencies map[string][]dependencyDTO `toml:"optional-dependencies"`
	Sdist                *artifactDTO               `toml:"sdist"`
	Wheels               []artifactDTO              `toml:"wheels"`
}

type sourceDTO struct {
	Registry  string `toml:"registry"`
	Virtual   string `toml:"virtual"`
	Editable  string `toml:"editable"`
	Directory string `toml:"directory"`
	Git       string `toml:"git"`
	Path      string `toml:"path"`
	URL       string `toml:"url"`
}

type dependencyDTO struct {
	Name   string   `toml:"name"`
	Extra  []string `toml:"extra"`
	Marker string   `toml:"marker"`
}

type artifactDTO struct {
	Hash string `toml:"hash"`
}

// Reader implements ports.GraphReader for uv.lock files.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read decodes the uv.lock at path. A missing file is not an error: it returns nil, nil.
func (r *Reader) Read(path string) (*domain.LockGraph, error) {
	//nolint:gosec // Path is derived from the located workspace
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLockGraphRead.Error()), "path", path)
	}

	graph, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return graph, nil
}

// Parse decodes uv.lock content.
func Parse(data []byte) (*domain.LockGraph, error) {
	var lf lockFile
	if _, err := toml.Decode(string(data), &lf); err != nil {
		return nil, zerr.Wrap(err, domain.ErrLockGraphParse.Error())
	}

	graph := &domain.LockGraph{Packages: make([]domain.LockedPackage, 0, len(lf.Packages))}
	for i, p := range lf.Packages {
		if p.Name == "" {
			return nil, zerr.With(zerr.Wrap(zerr.New("package without a name"), domain.ErrLockGraphParse.Error()), "index", i)
		}
		graph.Packages = append(graph.Packages, convertPackage(p))
	}
	return graph, nil
}

func convertPackage(p packageDTO) domain.LockedPackage {
	pkg := domain.LockedPackage{
		Name:         domain.NormalizeName(p.Name),
		Version:      p.Version,
		Hashes:       hashes(p),
		Dependencies: edges(p.Dependencies),
		IndexURL:     p.Source.Registry,
		Virtual:      p.Source.Virtual != "",
	}

	if len(p.OptionalDependencies) > 0 {
		pkg.Optional = make(map[string][]domain.LockEdge, len(p.OptionalDependencies))
		for extra, deps := range p.OptionalDependencies {
			pkg.Optional[extra] = edges(deps)
		}
	}
	return pkg
}

// hashes lists the sdist hash first, then the wheel hashes in file order.
func hashes(p packageDTO) []string {
	out := make([]string, 0, len(p.Wheels)+1)
	if p.Sdist != nil && p.Sdist.Hash != "" {
		out = append(out, p.Sdist.Hash)
	}
	for _, w := range p.Wheels {
		if w.Hash != "" {
			out = append(out, w.Hash)
		}
	}
	return out
}

func edges(deps []dependencyDTO) []domain.LockEdge {
	out := make([]domain.LockEdge, 0, len(deps))
	for _, d := range deps {
		out = append(out, domain.LockEdge{Name: d.Name, Extras: d.Extra})
	}
	return out
}
