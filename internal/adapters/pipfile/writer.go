package pipfile

import (
	"fmt"
	"strings"

	"go.trai.ch/pipbridge/internal/core/domain"
	"go.trai.ch/zerr"
)

// Render serializes the manifest in the canonical section order:
// [[source]], [packages], [dev-packages], [requires], [scripts], [pipenv].
func Render(m *domain.Manifest) (string, error) {
	if m == nil {
		return "", zerr.Wrap(zerr.New("manifest is nil"), domain.ErrManifestSerialize.Error())
	}

	var b strings.Builder
	b.Grow(512)

	for _, src := range m.Sources {
		b.WriteString("[[source]]\n")
		fmt.Fprintf(&b, "url = %s\n", quote(src.URL))
		fmt.Fprintf(&b, "verify_ssl = %t\n", src.VerifySSL)
		fmt.Fprintf(&b, "name = %s\n\n", quote(src.Name))
	}

	for _, section := range []domain.PackageSection{domain.SectionDefault, domain.SectionDevelop} {
		fmt.Fprintf(&b, "[%s]\n", section)
		if err := writePackages(&b, m.Section(section)); err != nil {
			return "", zerr.With(err, "section", section.String())
		}
		b.WriteString("\n")
	}

	if m.Requires != nil {
		b.WriteString("[requires]\n")
		if m.Requires.PythonVersion != "" {
			fmt.Fprintf(&b, "python_version = %s\n", quote(m.Requires.PythonVersion))
		}
		if m.Requires.PythonFullVersion != "" {
			fmt.Fprintf(&b, "python_full_version = %s\n", quote(m.Requires.PythonFullVersion))
		}
		b.WriteString("\n")
	}

	if m.Scripts.Len() > 0 {
		b.WriteString("[scripts]\n")
		for name, cmd := range m.Scripts.All() {
			fmt.Fprintf(&b, "%s = %s\n", key(name), quote(cmd))
		}
		b.WriteString("\n")
	}

	if m.Settings != nil {
		b.WriteString("[pipenv]\n")
		if m.Settings.AllowPrereleases {
			b.WriteString("allow_prereleases = true\n")
		}
		b.WriteString("\n")
	}

	return b.String(), nil
}

func writePackages(b *strings.Builder, packages *domain.SortedMap[domain.PackageSpec]) error {
	for name, spec := range packages.All() {
		switch s := spec.(type) {
		case domain.SimpleSpec:
			fmt.Fprintf(b, "%s = %s\n", key(name), quote(s.Version))
		case domain.DetailedSpec:
			fmt.Fprintf(b, "%s = {%s}\n", key(name), strings.Join(detailFields(s), ", "))
		default:
			return zerr.With(
				zerr.Wrap(fmt.Errorf("unsupported package spec %T", spec), domain.ErrManifestSerialize.Error()),
				"package", name,
			)
		}
	}
	return nil
}

// detailFields returns the inline table fields in their fixed order.
func detailFields(d domain.DetailedSpec) []string {
	fields := make([]string, 0, 9)
	if d.Version != "" {
		fields = append(fields, "version = "+quote(d.Version))
	}
	if len(d.Extras) > 0 {
		extras := make([]string, len(d.Extras))
		for i, e := range d.Extras {
			extras[i] = quote(e)
		}
		fields = append(fields, "extras = ["+strings.Join(extras, ", ")+"]")
	}
	if d.Git != "" {
		fields = append(fields, "git = "+quote(d.Git))
	}
	if d.Ref != "" {
		fields = append(fields, "ref = "+quote(d.Ref))
	}
	if d.Path != "" {
		fields = append(fields, "path = "+quote(d.Path))
	}
	if d.Editable {
		fields = append(fields, "editable = true")
	}
	if d.Index != "" {
		fields = append(fields, "index = "+quote(d.Index))
	}
	if d.Markers != "" {
		fields = append(fields, "markers = "+quote(d.Markers))
	}
	if d.SysPlatform != "" {
		fields = append(fields, "sys_platform = "+quote(d.SysPlatform))
	}
	return fields
}

// key returns name as a bare key when possible, quoted otherwise.
func key(name string) string {
	if name == "" {
		return `""`
	}
	for _, r := range name {
		if !isBareKeyRune(r) {
			return quote(name)
		}
	}
	return name
}

func isBareKeyRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_'
}

// quote renders s as a TOML basic string.
func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\f':
			b.WriteString(`\f`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if r < 0x20 || r == 0x7f {
				b.WriteString(`\u` + fmt.Sprintf("%04X", r))
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
