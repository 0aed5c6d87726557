// Package slug derives URL slugs from product names.
package slug

import "strings"

// FromName lowercases the name, collapses every run of non-alphanumerics
// into a single dash and trims dashes from the ends. A name with nothing
// usable falls back to "product" so the route still resolves.
func FromName(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
		default:
			dash = true
		}
	}

	if b.Len() == 0 {
		return "product"
	}
	return b.String()
}
