package bridge

import (
	"bytes"

	"github.com/BurntSushi/toml"
	"go.trai.ch/pipbridge/internal/core/domain"
	"go.trai.ch/zerr"
)

type pyproject struct {
	Project          project           `toml:"project"`
	DependencyGroups *dependencyGroups `toml:"dependency-groups,omitempty"`
	Tool             *tool             `toml:"tool,omitempty"`
}

type project struct {
	Name           string   `toml:"name"`
	Version        string   `toml:"version"`
	RequiresPython string   `toml:"requires-python,omitempty"`
	Dependencies   []string `toml:"dependencies"`
}

type dependencyGroups struct {
	Dev []string `toml:"dev"`
}

type tool struct {
	UV uvTool `toml:"uv"`
}

type uvTool struct {
	Index   []uvIndex           `toml:"index,omitempty"`
	Sources map[string]uvSource `toml:"sources,omitempty"`
}

type uvIndex struct {
	Name    string `toml:"name"`
	URL     string `toml:"url"`
	Default bool   `toml:"default,omitempty"`
}

type uvSource struct {
	Git      string `toml:"git,omitempty"`
	Rev      string `toml:"rev,omitempty"`
	Path     string `toml:"path,omitempty"`
	Editable bool   `toml:"editable,omitempty"`
	Index    string `toml:"index,omitempty"`
}

// Encode renders p as pyproject.toml text.
// The document is built completely in memory; nothing is returned on failure.
func Encode(p *domain.ProjectManifest) ([]byte, error) {
	if p == nil {
		return nil, zerr.Wrap(zerr.New("nil project manifest"), domain.ErrProjectEncode.Error())
	}

	doc := pyproject{
		Project: project{
			Name:           p.Name,
			Version:        p.Version,
			RequiresPython: p.RequiresPython,
			Dependencies:   nonNil(p.Dependencies),
		},
	}

	if len(p.DevDependencies) > 0 {
		doc.DependencyGroups = &dependencyGroups{Dev: p.DevDependencies}
	}

	if len(p.Indexes) > 0 || p.Sources.Len() > 0 {
		uv := uvTool{}
		for _, idx := range p.Indexes {
			uv.Index = append(uv.Index, uvIndex(idx))
		}
		if p.Sources.Len() > 0 {
			uv.Sources = make(map[string]uvSource, p.Sources.Len())
			for name, o := range p.Sources.All() {
				uv.Sources[name] = uvSource(o)
			}
		}
		doc.Tool = &tool{UV: uv}
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.Indent = ""
	if err := enc.Encode(doc); err != nil {
		return nil, zerr.Wrap(err, domain.ErrProjectEncode.Error())
	}
	return buf.Bytes(), nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
