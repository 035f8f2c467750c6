package lockgen

import (
	"bytes"
	_ "crypto/sha256" // registers the hash behind digest.SHA256
	"encoding/json"

	"github.com/opencontainers/go-digest"
	"go.trai.ch/pipbridge/internal/core/domain"
	"go.trai.ch/zerr"
)

// ContentHash returns the hex sha256 of the canonical JSON form of m.
// The document holds requires, sources, and both package sections with sorted keys
// and no insignificant whitespace, so the digest depends on manifest content only.
func ContentHash(m *domain.Manifest) (string, error) {
	if m == nil {
		m = domain.NewManifest()
	}

	doc := map[string]any{
		"_meta": map[string]any{
			"requires": requiresJSON(m.Requires),
			"sources":  sourcesJSON(m.Sources),
		},
		"default": packagesJSON(m.Packages),
		"develop": packagesJSON(m.DevPackages),
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return "", zerr.Wrap(err, domain.ErrHashComputation.Error())
	}

	canonical := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
	return digest.SHA256.FromBytes(canonical).Encoded(), nil
}

func requiresJSON(r *domain.Requires) map[string]string {
	out := map[string]string{}
	if r == nil {
		return out
	}
	if r.PythonVersion != "" {
		out["python_version"] = r.PythonVersion
	}
	if r.PythonFullVersion != "" {
		out["python_full_version"] = r.PythonFullVersion
	}
	return out
}

func sourcesJSON(sources []domain.Source) []map[string]any {
	out := make([]map[string]any, 0, len(sources))
	for _, s := range sources {
		out = append(out, map[string]any{
			"name":       s.Name,
			"url":        s.URL,
			"verify_ssl": s.VerifySSL,
		})
	}
	return out
}

func packagesJSON(section *domain.SortedMap[domain.PackageSpec]) map[string]any {
	out := make(map[string]any, section.Len())
	for name, spec := range section.All() {
		switch s := spec.(type) {
		case domain.SimpleSpec:
			out[name] = s.Version
		case domain.DetailedSpec:
			out[name] = detailJSON(s)
		default:
			out[name] = nil
		}
	}
	return out
}

// detailJSON serializes every field of s; absent strings become null.
func detailJSON(s domain.DetailedSpec) map[string]any {
	extras := s.Extras
	if extras == nil {
		extras = []string{}
	}
	return map[string]any{
		"version":      optional(s.Version),
		"extras":       extras,
		"markers":      optional(s.Markers),
		"sys_platform": optional(s.SysPlatform),
		"git":          optional(s.Git),
		"ref":          optional(s.Ref),
		"path":         optional(s.Path),
		"editable":     s.Editable,
		"index":        optional(s.Index),
	}
}

func optional(v string) any {
	if v == "" {
		return nil
	}
	return v
}
