// Package slug derives URL slugs from post titles.
package slug

import "strings"

// Make lowercases the title and collapses every run of non-alphanumeric
// characters into a single hyphen. An empty result falls back to "post".
func Make(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteRune('-')
				lastHyphen = true
			}
		}
	}

	out := strings.TrimSuffix(b.String(), "-")
	if out == "" {
		return "post"
	}
	return out
}
