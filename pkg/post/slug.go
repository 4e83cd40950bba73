package post

import (
	"strings"
	"unicode"
)

// Slugify derives a URL-safe identifier from a title.
//
// The title is lower-cased and trimmed; every rune that is not an ASCII
// word character, whitespace or a hyphen is dropped; each run of
// whitespace, underscores and hyphens collapses into one hyphen; leading
// and trailing hyphens are removed. The result only contains [a-z0-9-].
func Slugify(title string) string {
	title = strings.TrimSpace(strings.ToLower(title))

	var b strings.Builder
	sep := false
	for _, r := range title {
		switch {
		case ('a' <= r && r <= 'z') || ('0' <= r && r <= '9'):
			if sep && b.Len() > 0 {
				b.WriteByte('-')
			}
			sep = false
			b.WriteRune(r)
		case r == '_' || r == '-' || unicode.IsSpace(r):
			sep = true
		}
	}
	return b.String()
}
