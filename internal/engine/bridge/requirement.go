package bridge

import (
	"strings"

	"go.trai.ch/pipbridge/internal/core/domain"
)

// constraintOperators are the characters that can open a version constraint.
const constraintOperators = "><=!~"

// SplitNameVersion splits spec at the first constraint operator.
// Brackets are not operators, so an extras suffix stays with the name:
// "requests[security]>=2.0" yields ("requests[security]", ">=2.0").
func SplitNameVersion(spec string) (string, string) {
	if i := strings.IndexAny(spec, constraintOperators); i >= 0 {
		return spec[:i], spec[i:]
	}
	return spec, ""
}

// ParseRequirementLine turns one requirements.txt style line into a manifest entry.
// Blank lines, comments, and option lines such as "-r" or "--hash" report ok=false.
// Trailing continuations and inline options ("six==1.0 --hash=...") are dropped.
// Direct references map to git or path entries; other URLs report ok=false.
func ParseRequirementLine(line string) (string, domain.PackageSpec, bool) {
	line = strings.TrimSpace(line)
	if i := strings.Index(line, " #"); i >= 0 {
		line = strings.TrimSpace(line[:i])
	}
	line = strings.TrimSpace(strings.TrimSuffix(line, `\`))
	if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
		return "", nil, false
	}
	line = cutOptions(line)

	var markers string
	if head, tail, found := strings.Cut(line, ";"); found {
		line = strings.TrimSpace(head)
		markers = strings.TrimSpace(tail)
	}

	if head, url, found := strings.Cut(line, "@"); found {
		name, extras, ok := parseName(head)
		if !ok {
			return "", nil, false
		}
		spec, ok := directReference(strings.TrimSpace(url))
		if !ok {
			return "", nil, false
		}
		spec.Extras = extras
		spec.Markers = markers
		return name, spec, true
	}

	namePart, version := SplitNameVersion(line)
	version = strings.ReplaceAll(version, " ", "")
	if !isVersionSpecifier(version) {
		return "", nil, false
	}

	name, extras, ok := parseName(namePart)
	if !ok {
		return "", nil, false
	}
	if version == "" {
		version = domain.Wildcard
	}

	if len(extras) == 0 && markers == "" {
		return name, domain.SimpleSpec{Version: version}, true
	}
	return name, domain.DetailedSpec{
		Version: version,
		Extras:  extras,
		Markers: markers,
	}, true
}

// cutOptions drops everything from the first whitespace-delimited token starting with "-".
func cutOptions(line string) string {
	for i := 1; i < len(line); i++ {
		if line[i] == '-' && (line[i-1] == ' ' || line[i-1] == '\t') {
			return strings.TrimSpace(line[:i])
		}
	}
	return line
}

// parseName splits "name[extra1, extra2]" and validates the name.
func parseName(s string) (string, []string, bool) {
	s = strings.TrimSpace(s)
	var extras []string
	if open := strings.IndexByte(s, '['); open >= 0 {
		closing := strings.IndexByte(s, ']')
		if closing < open || strings.TrimSpace(s[closing+1:]) != "" {
			return "", nil, false
		}
		for extra := range strings.SplitSeq(s[open+1:closing], ",") {
			if extra = strings.TrimSpace(extra); extra != "" {
				extras = append(extras, extra)
			}
		}
		s = strings.TrimSpace(s[:open])
	}
	if s == "" || strings.ContainsFunc(s, func(r rune) bool { return !isNameRune(r) }) {
		return "", nil, false
	}
	return s, extras, true
}

// directReference maps the URL of "name @ url" to a git or path entry.
func directReference(url string) (domain.DetailedSpec, bool) {
	if i := strings.IndexByte(url, '#'); i >= 0 {
		url = url[:i]
	}
	switch {
	case strings.HasPrefix(url, "git+"):
		repo := strings.TrimPrefix(url, "git+")
		var ref string
		if at := strings.LastIndexByte(repo, '@'); at > strings.LastIndexByte(repo, '/') {
			repo, ref = repo[:at], repo[at+1:]
		}
		if repo == "" {
			return domain.DetailedSpec{}, false
		}
		return domain.DetailedSpec{Git: repo, Ref: ref}, true
	case strings.HasPrefix(url, "file:"):
		path := strings.TrimPrefix(strings.TrimPrefix(url, "file://"), "file:")
		if path == "" {
			return domain.DetailedSpec{}, false
		}
		return domain.DetailedSpec{Path: path}, true
	default:
		return domain.DetailedSpec{}, false
	}
}

func isNameRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' ||
		r == '.' || r == '_' || r == '-'
}

// isVersionSpecifier reports whether v holds only PEP 440 specifier characters.
func isVersionSpecifier(v string) bool {
	return !strings.ContainsFunc(v, func(r rune) bool {
		return !isNameRune(r) && !strings.ContainsRune(constraintOperators+",*+", r)
	})
}
