package extract

import (
	"sort"
	"strings"
)

// Skills returns every vocabulary term present in text as a whole word,
// deduplicated and sorted. Matching is case-insensitive.
func Skills(text string) []string {
	lower := strings.ToLower(text)
	seen := make(map[string]struct{})
	for i, term := range TechWords {
		if _, ok := seen[term]; ok {
			continue
		}
		if skillPatterns[i].MatchString(lower) {
			seen[term] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for term := range seen {
		out = append(out, term)
	}
	sort.Strings(out)
	return out
}
