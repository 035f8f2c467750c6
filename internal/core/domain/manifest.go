// Package domain contains the core models shared by the manifest, bridge, and lock components.
package domain

// Manifest is the typed form of a Pipfile.
type Manifest struct {
	// Sources are the package indexes in declaration order.
	Sources []Source

	// Packages are the production dependencies from [packages].
	Packages *SortedMap[PackageSpec]

	// DevPackages are the development dependencies from [dev-packages].
	DevPackages *SortedMap[PackageSpec]

	// Requires holds the [requires] section, nil when the section is absent.
	Requires *Requires

	// Scripts maps script names to shell command strings.
	Scripts *SortedMap[string]

	// Settings holds the [pipenv] section, nil when the section is absent.
	Settings *Settings
}

// NewManifest returns a Manifest with empty collections.
func NewManifest() *Manifest {
	return &Manifest{
		Packages:    NewSortedMap[PackageSpec](),
		DevPackages: NewSortedMap[PackageSpec](),
		Scripts:     NewSortedMap[string](),
	}
}

// Source is a [[source]] entry.
type Source struct {
	Name      string
	URL       string
	VerifySSL bool
}

// Requires is the [requires] section.
type Requires struct {
	PythonVersion     string
	PythonFullVersion string
}

// Settings is the [pipenv] section.
type Settings struct {
	AllowPrereleases bool
}

// PackageSpec is either a SimpleSpec or a DetailedSpec.
type PackageSpec interface {
	isPackageSpec()
}

// SimpleSpec is a bare version constraint such as "*" or ">=1.0".
type SimpleSpec struct {
	Version string
}

func (SimpleSpec) isPackageSpec() {}

// DetailedSpec is an inline-table package entry. Empty strings mean the field is absent.
type DetailedSpec struct {
	Version     string
	Extras      []string
	Markers     string
	SysPlatform string
	Git         string
	Ref         string
	Path        string
	Editable    bool
	Index       string
}

func (DetailedSpec) isPackageSpec() {}

// Wildcard is the version constraint that accepts any version.
const Wildcard = "*"

// PackageSection selects one of the two package maps of a Manifest.
type PackageSection int

const (
	// SectionDefault is [packages].
	SectionDefault PackageSection = iota
	// SectionDevelop is [dev-packages].
	SectionDevelop
)

// String returns the TOML section name.
func (s PackageSection) String() string {
	if s == SectionDevelop {
		return "dev-packages"
	}
	return "packages"
}

// Section returns the package map for s.
func (m *Manifest) Section(s PackageSection) *SortedMap[PackageSpec] {
	if s == SectionDevelop {
		return m.DevPackages
	}
	return m.Packages
}

// SpecExtras returns the extras requested by spec, if any.
func SpecExtras(spec PackageSpec) []string {
	if d, ok := spec.(DetailedSpec); ok {
		return d.Extras
	}
	return nil
}
