package domain

import "strings"

// NormalizeName canonicalizes a package name the way the resolution engine does:
// lowercase, with every run of '-', '_' and '.' collapsed to a single '-'.
func NormalizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	inSep := false
	for _, r := range strings.TrimSpace(name) {
		switch {
		case r == '-' || r == '_' || r == '.':
			if !inSep {
				b.WriteByte('-')
			}
			inSep = true
			continue
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteRune(r)
		}
		inSep = false
	}
	return b.String()
}
