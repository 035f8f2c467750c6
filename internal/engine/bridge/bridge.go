// Package bridge translates a Pipfile manifest into the pyproject.toml consumed by the resolver.
package bridge

import (
	"strings"

	"go.trai.ch/pipbridge/internal/core/domain"
	"go.trai.ch/zerr"
)

// platformKey is the marker variable that the sys_platform shorthand expands to.
const platformKey = "sys_platform"

// ToProjectManifest builds a fresh ProjectManifest from m.
// Sources are listed in declaration order and the first one becomes the default index.
func ToProjectManifest(m *domain.Manifest, projectName string) (*domain.ProjectManifest, error) {
	if strings.TrimSpace(projectName) == "" {
		return nil, zerr.With(domain.ErrInvalidProjectName, "field", "name")
	}
	if m == nil {
		m = domain.NewManifest()
	}

	p := &domain.ProjectManifest{
		Name:            projectName,
		Version:         domain.DefaultProjectVersion,
		RequiresPython:  requiresPython(m.Requires),
		Dependencies:    make([]string, 0, m.Packages.Len()),
		DevDependencies: make([]string, 0, m.DevPackages.Len()),
		Indexes:         make([]domain.Index, 0, len(m.Sources)),
		Sources:         domain.NewSortedMap[domain.SourceOverride](),
	}

	for i, src := range m.Sources {
		p.Indexes = append(p.Indexes, domain.Index{
			Name:    src.Name,
			URL:     src.URL,
			Default: i == 0,
		})
	}

	p.Dependencies = convertSection(m.Packages, p.Sources)
	p.DevDependencies = convertSection(m.DevPackages, p.Sources)

	return p, nil
}

func requiresPython(r *domain.Requires) string {
	switch {
	case r == nil:
		return ""
	case r.PythonVersion != "":
		return ">=" + r.PythonVersion
	case r.PythonFullVersion != "":
		return "==" + r.PythonFullVersion
	default:
		return ""
	}
}

func convertSection(section *domain.SortedMap[domain.PackageSpec], overrides *domain.SortedMap[domain.SourceOverride]) []string {
	reqs := make([]string, 0, section.Len())
	for name, spec := range section.All() {
		req, override, ok := convertPackage(name, spec)
		reqs = append(reqs, req)
		if ok {
			overrides.Set(name, override)
		}
	}
	return reqs
}

func convertPackage(name string, spec domain.PackageSpec) (string, domain.SourceOverride, bool) {
	switch s := spec.(type) {
	case domain.SimpleSpec:
		return FormatRequirement(name, s.Version), domain.SourceOverride{}, false
	case domain.DetailedSpec:
		override, ok := sourceOverride(s)
		return detailedRequirement(name, s), override, ok
	default:
		return name, domain.SourceOverride{}, false
	}
}

// FormatRequirement joins a name and a version constraint, dropping the wildcard.
func FormatRequirement(name, version string) string {
	if version == "" || version == domain.Wildcard {
		return name
	}
	return name + version
}

func detailedRequirement(name string, s domain.DetailedSpec) string {
	var b strings.Builder
	b.WriteString(name)

	if len(s.Extras) > 0 {
		b.WriteByte('[')
		b.WriteString(strings.Join(s.Extras, ","))
		b.WriteByte(']')
	}

	if s.Git == "" && s.Path == "" && s.Version != domain.Wildcard {
		b.WriteString(s.Version)
	}

	if marker := markerClause(s); marker != "" {
		b.WriteString("; ")
		b.WriteString(marker)
	}

	return b.String()
}

func markerClause(s domain.DetailedSpec) string {
	parts := make([]string, 0, 2)
	if s.Markers != "" {
		parts = append(parts, s.Markers)
	}
	if s.SysPlatform != "" {
		parts = append(parts, platformKey+" "+s.SysPlatform)
	}
	return strings.Join(parts, " and ")
}

// sourceOverride picks git over path over index.
func sourceOverride(s domain.DetailedSpec) (domain.SourceOverride, bool) {
	switch {
	case s.Git != "":
		return domain.SourceOverride{Git: s.Git, Rev: s.Ref}, true
	case s.Path != "":
		return domain.SourceOverride{Path: s.Path, Editable: s.Editable}, true
	case s.Index != "":
		return domain.SourceOverride{Index: s.Index}, true
	default:
		return domain.SourceOverride{}, false
	}
}
