package extract

import "strings"

// SplitSections segments resume text into the canonical sections plus an
// "other" bucket. Every line belongs to exactly one section: accumulation
// starts under "contact" and switches whenever a header line is detected,
// with the header line opening the new section. When a section header
// appears twice, the later occurrence wins.
func SplitSections(text string) map[string]string {
	sections := make(map[string]string, len(sectionOrder)+1)
	for _, name := range sectionOrder {
		sections[name] = ""
	}
	sections["other"] = ""

	current := "contact"
	var content []string
	for _, line := range strings.Split(text, "\n") {
		detected := ""
		for _, name := range sectionOrder {
			if isSectionHeader(line, name) {
				detected = name
				break
			}
		}
		if detected != "" {
			sections[current] = strings.TrimSpace(strings.Join(content, "\n"))
			current = detected
			content = []string{line}
		} else {
			content = append(content, line)
		}
	}
	sections[current] = strings.TrimSpace(strings.Join(content, "\n"))
	return sections
}

// isSectionHeader reports whether line opens the named section. Header lines
// either carry a colon or end in "s", and must contain one of the section's
// keywords.
func isSectionHeader(line, section string) bool {
	lower := strings.ToLower(strings.TrimSpace(line))
	if !strings.Contains(line, ":") && !strings.HasSuffix(lower, "s") {
		return false
	}
	for _, kw := range sectionKeywords[section] {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
