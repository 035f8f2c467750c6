package app

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/pipbridge/internal/core/domain"
	"go.trai.ch/pipbridge/internal/engine/bridge"
	"go.trai.ch/zerr"
)

// AddOptions configuration for the Add method.
type AddOptions struct {
	// Packages are requirement strings such as "requests>=2" or "uvicorn[standard]".
	Packages []string

	// Editable are local paths added as editable packages named after their directory.
	Editable []string

	// Requirements is a requirements.txt file whose entries are added.
	Requirements string

	// Dev selects [dev-packages] instead of [packages].
	Dev bool

	// Index pins every added registry package to the named source.
	Index string
}

type packageEntry struct {
	name string
	spec domain.PackageSpec
}

// Add records packages in the target's Pipfile and refreshes pyproject.toml.
func (a *App) Add(ctx context.Context, target Target, opts AddOptions) (err error) {
	_, span := a.tracer.Start(ctx, "add")
	defer func() {
		span.RecordError(err)
		span.End()
	}()

	if len(opts.Packages) == 0 && len(opts.Editable) == 0 && opts.Requirements == "" {
		return domain.ErrNoPackagesSpecified
	}

	entries, err := collectEntries(opts)
	if err != nil {
		return err
	}

	ws, m, err := a.open(target)
	if err != nil {
		return err
	}

	if opts.Index != "" && !slices.ContainsFunc(m.Sources, func(s domain.Source) bool { return s.Name == opts.Index }) {
		a.logger.Warn(fmt.Sprintf("index %q is not declared in [[source]]", opts.Index))
	}

	section := domain.SectionDefault
	if opts.Dev {
		section = domain.SectionDevelop
	}
	packages := m.Section(section)
	for _, e := range entries {
		spec := e.spec
		if opts.Index != "" {
			spec = withIndex(spec, opts.Index)
		}
		setPackage(packages, e.name, spec)
		a.logger.Info(fmt.Sprintf("added %s to [%s]", e.name, section))
	}
	span.SetAttribute("packages", len(entries))

	if err := a.manifests.Save(ws.ManifestPath, m); err != nil {
		return err
	}
	return a.writeProject(ws, m, false)
}

func collectEntries(opts AddOptions) ([]packageEntry, error) {
	entries := make([]packageEntry, 0, len(opts.Packages)+len(opts.Editable))

	for _, pkg := range opts.Packages {
		name, spec, ok := bridge.ParseRequirementLine(pkg)
		if !ok {
			return nil, zerr.With(domain.ErrInvalidPackageSpec, "package", pkg)
		}
		entries = append(entries, packageEntry{name: name, spec: spec})
	}

	for _, path := range opts.Editable {
		name := filepath.Base(filepath.Clean(path))
		if name == "." || name == ".." || name == string(filepath.Separator) {
			return nil, zerr.With(domain.ErrInvalidPackageSpec, "package", path)
		}
		entries = append(entries, packageEntry{
			name: name,
			spec: domain.DetailedSpec{Path: path, Editable: true},
		})
	}

	if opts.Requirements != "" {
		fromFile, err := readRequirements(opts.Requirements)
		if err != nil {
			return nil, err
		}
		entries = append(entries, fromFile...)
	}

	return entries, nil
}

// readRequirements parses a requirements.txt file. Comments and option lines are skipped.
func readRequirements(path string) ([]packageEntry, error) {
	//nolint:gosec // Path is supplied by the user on the command line
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRequirementsRead.Error()), "path", path)
	}

	var entries []packageEntry
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		if name, spec, ok := bridge.ParseRequirementLine(scanner.Text()); ok {
			entries = append(entries, packageEntry{name: name, spec: spec})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRequirementsRead.Error()), "path", path)
	}
	return entries, nil
}

// withIndex pins spec to index. Git and path entries are not served by an index and stay as they are.
func withIndex(spec domain.PackageSpec, index string) domain.PackageSpec {
	switch s := spec.(type) {
	case domain.SimpleSpec:
		return domain.DetailedSpec{Version: s.Version, Index: index}
	case domain.DetailedSpec:
		if s.Git == "" && s.Path == "" {
			s.Index = index
		}
		return s
	default:
		return spec
	}
}

// setPackage stores spec under name, replacing any key that normalizes to the same name.
func setPackage(packages *domain.SortedMap[domain.PackageSpec], name string, spec domain.PackageSpec) {
	removePackage(packages, name)
	packages.Set(name, spec)
}

// removePackage deletes every key of packages that normalizes to name.
func removePackage(packages *domain.SortedMap[domain.PackageSpec], name string) bool {
	want := domain.NormalizeName(name)
	removed := false
	for _, key := range packages.Keys() {
		if domain.NormalizeName(key) == want {
			packages.Delete(key)
			removed = true
		}
	}
	return removed
}

// RemoveOptions configuration for the Remove method.
type RemoveOptions struct {
	// Packages are the names to remove. Version constraints and extras are ignored.
	Packages []string

	// Dev limits removal to [dev-packages]. Otherwise both sections are searched.
	Dev bool

	// All clears both package sections.
	All bool

	// AllDev clears [dev-packages].
	AllDev bool
}

// Remove deletes packages from the target's Pipfile and refreshes pyproject.toml.
// Names that are not present produce a warning.
func (a *App) Remove(ctx context.Context, target Target, opts RemoveOptions) (err error) {
	_, span := a.tracer.Start(ctx, "remove")
	defer func() {
		span.RecordError(err)
		span.End()
	}()

	if len(opts.Packages) == 0 && !opts.All && !opts.AllDev {
		return domain.ErrNoPackagesSpecified
	}

	ws, m, err := a.open(target)
	if err != nil {
		return err
	}

	switch {
	case opts.All:
		m.Packages.Clear()
		m.DevPackages.Clear()
		a.logger.Info("removed all packages")
	case opts.AllDev:
		m.DevPackages.Clear()
		a.logger.Info("removed all dev packages")
	}

	sections := []domain.PackageSection{domain.SectionDefault, domain.SectionDevelop}
	if opts.Dev {
		sections = []domain.PackageSection{domain.SectionDevelop}
	}

	for _, pkg := range opts.Packages {
		name := packageName(pkg)
		var removedFrom []string
		for _, s := range sections {
			if removePackage(m.Section(s), name) {
				removedFrom = append(removedFrom, "["+s.String()+"]")
			}
		}
		if len(removedFrom) == 0 {
			a.logger.Warn(fmt.Sprintf("%s is not in the Pipfile", name))
			continue
		}
		a.logger.Info(fmt.Sprintf("removed %s from %s", name, strings.Join(removedFrom, ", ")))
	}

	if err := a.manifests.Save(ws.ManifestPath, m); err != nil {
		return err
	}
	return a.writeProject(ws, m, false)
}

// packageName strips extras and version constraints from a requirement string.
func packageName(requirement string) string {
	name, _ := bridge.SplitNameVersion(requirement)
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	return strings.TrimSpace(name)
}
