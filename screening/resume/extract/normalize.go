package extract

import (
	"regexp"
	"strings"
)

var (
	nonTokenRe   = regexp.MustCompile(`[^a-z0-9+#.\s]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Normalize lowercases text, replaces characters outside the token alphabet
// with spaces and collapses runs of whitespace. "+", "#" and "." survive so
// terms like c++, c# and next.js stay intact.
func Normalize(text string) string {
	t := strings.ToLower(text)
	t = nonTokenRe.ReplaceAllString(t, " ")
	t = whitespaceRe.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}
