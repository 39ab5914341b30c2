// Package slug derives URL-safe identifiers from post titles.
package slug

import (
	"regexp"
	"strings"
)

var (
	invalidChars = regexp.MustCompile(`[^\w\s-]`)
	separators   = regexp.MustCompile(`[\s_-]+`)
	edgeHyphens  = regexp.MustCompile(`^-+|-+$`)
)

// Make converts a title into a lowercase, hyphen-separated slug. It never
// fails; an empty or fully-stripped title yields an empty string.
// Uniqueness is the repository's concern, not this function's.
func Make(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = invalidChars.ReplaceAllString(s, "")
	s = separators.ReplaceAllString(s, "-")
	s = edgeHyphens.ReplaceAllString(s, "")
	return s
}
