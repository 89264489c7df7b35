package extract

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	emailRe = regexp.MustCompile(`[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+`)
	phoneRe = regexp.MustCompile(`(?:\+\d{1,3}[\s.-]?)?(?:\d{2,4}[\s.-]?)?\d{3}[\s.-]?\d{3,4}[\s.-]?\d{3,4}|\+\d{1,3}\s?\d{6,14}`)
)

// nameSkipWords mark lines that are never name candidates.
var nameSkipWords = []string{"summary", "objective", "about", "phone", "email", "linkedin", "github"}

// Email returns the first email address found in text, or "".
func Email(text string) string {
	return emailRe.FindString(text)
}

// Phone returns the first phone number found in text, or "".
func Phone(text string) string {
	return phoneRe.FindString(text)
}

// Name scans the first fifteen non-blank lines for a candidate name: short,
// mostly alphabetic, not contact info. Two adjacent short candidates are
// joined, which recovers names that PDF extraction split across lines.
// Returns "" when nothing plausible is found.
func Name(text string) string {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if t := strings.TrimSpace(l); t != "" {
			lines = append(lines, t)
		}
	}
	if len(lines) == 0 {
		return ""
	}
	if len(lines) > 15 {
		lines = lines[:15]
	}

	var candidates []string
	for _, line := range lines {
		if strings.Contains(line, "@") || strings.Contains(line, "http") ||
			(strings.Contains(line, "+") && utf8.RuneCountInString(line) < 5) {
			continue
		}
		if utf8.RuneCountInString(line) > 100 {
			continue
		}
		if isUpper(line) && containsDigit(line) {
			continue
		}
		lower := strings.ToLower(line)
		if containsAny(lower, nameSkipWords) {
			continue
		}
		words := strings.Fields(line)
		if len(words) < 1 || len(words) > 5 {
			continue
		}
		alpha := 0
		total := 0
		for _, r := range line {
			total++
			if unicode.IsLetter(r) || unicode.IsSpace(r) || r == '-' || r == '\'' {
				alpha++
			}
		}
		if float64(alpha)/float64(total) > 0.7 {
			candidates = append(candidates, line)
		}
	}

	if len(candidates) == 0 {
		return ""
	}
	if len(candidates) >= 2 {
		first, second := candidates[0], candidates[1]
		if len(strings.Fields(first)) <= 3 && len(strings.Fields(second)) <= 3 {
			combined := strings.TrimSpace(first + " " + second)
			if len(strings.Fields(combined)) <= 5 {
				return titleCase(combined)
			}
		}
	}
	return titleCase(candidates[0])
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// isUpper reports whether s has at least one cased rune and no lowercase ones.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

// titleCase uppercases the first letter of every word and lowercases the
// rest, treating any non-letter as a word boundary.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
