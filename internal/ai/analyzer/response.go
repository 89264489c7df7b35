package analyzer

import (
	"strconv"
	"strings"
	"unicode"
)

// Analysis is the structured form of the model's assessment.
type Analysis struct {
	CompatibilityScore float64  `json:"compatibility_score"`
	MatchedSkills      []string `json:"matched_skills"`
	MissingSkills      []string `json:"missing_skills"`
	Strengths          []string `json:"strengths"`
	Gaps               []string `json:"gaps"`
	Recommendations    []string `json:"recommendations"`
	OverallAssessment  string   `json:"overall_assessment"`
	RawResponse        string   `json:"raw_response"`
}

// parseResponse turns the model's sectioned plain text into an Analysis.
// Sections are split on blank lines and recognized by their header keyword;
// anything unparseable keeps its default.
func parseResponse(response string) *Analysis {
	result := &Analysis{
		CompatibilityScore: 5.0,
		MatchedSkills:      []string{},
		MissingSkills:      []string{},
		Strengths:          []string{},
		Gaps:               []string{},
		Recommendations:    []string{},
		OverallAssessment:  "Analysis complete.",
		RawResponse:        response,
	}

	for _, section := range strings.Split(response, "\n\n") {
		lower := strings.ToLower(section)
		switch {
		case strings.Contains(lower, "compatibility_score"):
			for _, word := range strings.Fields(section) {
				score, err := strconv.ParseFloat(word, 64)
				if err == nil && score >= 0 && score <= 10 {
					result.CompatibilityScore = score
					break
				}
			}
		case strings.Contains(lower, "matched_skills"):
			result.MatchedSkills = listItems(section)
		case strings.Contains(lower, "missing_skills"):
			result.MissingSkills = listItems(section)
		case strings.Contains(lower, "strengths"):
			result.Strengths = listItems(section)
		case strings.Contains(lower, "gaps"):
			result.Gaps = listItems(section)
		case strings.Contains(lower, "recommendations"):
			result.Recommendations = listItems(section)
		case strings.Contains(lower, "overall_assessment"):
			if text := textAfterHeader(section); text != "" {
				result.OverallAssessment = text
			}
		}
	}

	return result
}

// listItems extracts dash, bullet or numbered items from section text,
// skipping header-looking lines.
func listItems(text string) []string {
	items := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.Contains(line, ":") || strings.Contains(line, "=") {
			continue
		}
		switch {
		case strings.HasPrefix(line, "-"):
			line = strings.TrimSpace(line[1:])
		case strings.HasPrefix(line, "•"):
			line = strings.TrimSpace(strings.TrimPrefix(line, "•"))
		case startsWithDigit(line) && strings.Contains(firstN(line, 3), "."):
			parts := strings.SplitN(line, ".", 2)
			line = strings.TrimSpace(parts[1])
		}
		if line != "" {
			items = append(items, line)
		}
	}
	return items
}

// textAfterHeader returns the collapsed text following the first
// header-looking line of the section.
func textAfterHeader(text string) string {
	var content []string
	skipHeader := true
	for _, line := range strings.Split(text, "\n") {
		if skipHeader {
			if strings.Contains(line, ":") || strings.Contains(line, "=") {
				skipHeader = false
			}
			continue
		}
		if t := strings.TrimSpace(line); t != "" {
			content = append(content, t)
		}
	}
	return strings.Join(content, " ")
}

func startsWithDigit(s string) bool {
	for _, r := range s {
		return unicode.IsDigit(r)
	}
	return false
}

func firstN(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
