// Package pipfile reads and writes the Pipfile manifest format.
package pipfile

import (
	"fmt"
	"maps"
	"slices"

	"github.com/BurntSushi/toml"
	"go.trai.ch/pipbridge/internal/core/domain"
	"go.trai.ch/zerr"
)

type manifestDTO struct {
	Source      []sourceDTO               `toml:"source"`
	Packages    map[string]toml.Primitive `toml:"packages"`
	DevPackages map[string]toml.Primitive `toml:"dev-packages"`
	Requires    *requiresDTO              `toml:"requires"`
	Scripts     map[string]string         `toml:"scripts"`
	Pipenv      *settingsDTO              `toml:"pipenv"`
}

type sourceDTO struct {
	Name      *string `toml:"name"`
	URL       *string `toml:"url"`
	VerifySSL *bool   `toml:"verify_ssl"`
}

type detailDTO struct {
	Version     string   `toml:"version"`
	Extras      []string `toml:"extras"`
	Markers     string   `toml:"markers"`
	SysPlatform string   `toml:"sys_platform"`
	Git         string   `toml:"git"`
	Ref         string   `toml:"ref"`
	Path        string   `toml:"path"`
	Editable    bool     `toml:"editable"`
	Index       string   `toml:"index"`
}

type requiresDTO struct {
	PythonVersion     string `toml:"python_version"`
	PythonFullVersion string `toml:"python_full_version"`
}

type settingsDTO struct {
	AllowPrereleases bool `toml:"allow_prereleases"`
}

// Parse decodes Pipfile text into a Manifest.
// No partial model is returned on failure.
func Parse(data []byte) (*domain.Manifest, error) {
	m, _, err := decode(data)
	return m, err
}

// decode parses the manifest and also reports keys that were present but not understood.
func decode(data []byte) (*domain.Manifest, []string, error) {
	var dto manifestDTO
	md, err := toml.Decode(string(data), &dto)
	if err != nil {
		return nil, nil, zerr.Wrap(err, domain.ErrManifestParse.Error())
	}

	m := domain.NewManifest()

	for i, src := range dto.Source {
		source, err := convertSource(src)
		if err != nil {
			return nil, nil, zerr.With(err, "source", i)
		}
		m.Sources = append(m.Sources, source)
	}

	if err := decodePackages(&md, dto.Packages, m.Packages, domain.SectionDefault); err != nil {
		return nil, nil, err
	}
	if err := decodePackages(&md, dto.DevPackages, m.DevPackages, domain.SectionDevelop); err != nil {
		return nil, nil, err
	}

	if dto.Requires != nil {
		m.Requires = &domain.Requires{
			PythonVersion:     dto.Requires.PythonVersion,
			PythonFullVersion: dto.Requires.PythonFullVersion,
		}
	}

	for name, cmd := range dto.Scripts {
		m.Scripts.Set(name, cmd)
	}

	if dto.Pipenv != nil {
		m.Settings = &domain.Settings{AllowPrereleases: dto.Pipenv.AllowPrereleases}
	}

	return m, unknownKeys(md.Undecoded()), nil
}

// unknownKeys reports each undecoded key once, omitting keys nested below an already reported one.
func unknownKeys(undecoded []toml.Key) []string {
	reported := make(map[string]struct{}, len(undecoded))
	unknown := make([]string, 0, len(undecoded))
outer:
	for _, key := range undecoded {
		for i := 1; i < len(key); i++ {
			if _, ok := reported[key[:i].String()]; ok {
				continue outer
			}
		}
		name := key.String()
		reported[name] = struct{}{}
		unknown = append(unknown, name)
	}
	return unknown
}

func convertSource(src sourceDTO) (domain.Source, error) {
	if src.Name == nil {
		return domain.Source{}, zerr.With(zerr.Wrap(zerr.New("missing required field"), domain.ErrManifestParse.Error()), "field", "name")
	}
	if src.URL == nil {
		return domain.Source{}, zerr.With(zerr.Wrap(zerr.New("missing required field"), domain.ErrManifestParse.Error()), "field", "url")
	}
	verify := true
	if src.VerifySSL != nil {
		verify = *src.VerifySSL
	}
	return domain.Source{Name: *src.Name, URL: *src.URL, VerifySSL: verify}, nil
}

func decodePackages(
	md *toml.MetaData,
	raw map[string]toml.Primitive,
	dst *domain.SortedMap[domain.PackageSpec],
	section domain.PackageSection,
) error {
	seen := make(map[string]string, len(raw))
	for _, name := range slices.Sorted(maps.Keys(raw)) {
		prim := raw[name]
		normalized := domain.NormalizeName(name)
		if other, ok := seen[normalized]; ok {
			err := zerr.Wrap(domain.ErrDuplicatePackage, domain.ErrManifestParse.Error())
			err = zerr.With(err, "section", section.String())
			err = zerr.With(err, "package", name)
			return zerr.With(err, "conflicts_with", other)
		}
		seen[normalized] = name

		spec, err := decodeSpec(md, prim)
		if err != nil {
			err = zerr.With(err, "section", section.String())
			return zerr.With(err, "package", name)
		}
		dst.Set(name, spec)
	}
	return nil
}

// decodeSpec tries the plain version string first and falls back to the inline table form.
func decodeSpec(md *toml.MetaData, prim toml.Primitive) (domain.PackageSpec, error) {
	var version string
	if err := md.PrimitiveDecode(prim, &version); err == nil {
		return domain.SimpleSpec{Version: version}, nil
	}

	var detail detailDTO
	if err := md.PrimitiveDecode(prim, &detail); err != nil {
		return nil, zerr.Wrap(
			fmt.Errorf("expected a version string or a table: %w", err),
			domain.ErrManifestParse.Error(),
		)
	}

	return domain.DetailedSpec{
		Version:     detail.Version,
		Extras:      detail.Extras,
		Markers:     detail.Markers,
		SysPlatform: detail.SysPlatform,
		Git:         detail.Git,
		Ref:         detail.Ref,
		Path:        detail.Path,
		Editable:    detail.Editable,
		Index:       detail.Index,
	}, nil
}
