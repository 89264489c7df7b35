package extract

import (
	"sort"
	"strings"
	"unicode"
)

// Project is a project entry detected in resume text.
type Project struct {
	Name         string   `json:"name"`
	Technologies []string `json:"technologies"`
}

// Projects scans text line by line for project entries. A line opens an
// entry when it carries a project marker ("project:" or a bullet) or when
// it mentions one of the common languages and does not read like a date
// line. The entry name is the line with technology terms and markers
// stripped out, truncated to 150 characters; entries keep at most ten
// technologies and the result at most ten projects.
func Projects(text string) []Project {
	var projects []Project
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		lower := strings.ToLower(line)

		hinted := strings.Contains(lower, "project:") || strings.Contains(lower, "• ")
		if !hinted {
			if line == "" || firstRuneIsDigit(line) || len([]rune(line)) <= 5 {
				continue
			}
			common := false
			for _, tech := range TechWords[:10] {
				if strings.Contains(lower, tech) {
					common = true
					break
				}
			}
			if !common {
				continue
			}
		}

		var techs []string
		for _, tech := range TechWords {
			if strings.Contains(lower, tech) {
				techs = append(techs, tech)
			}
		}

		name := line
		for _, tech := range techs {
			name = strings.TrimSpace(strings.ReplaceAll(strings.ToLower(name), tech, ""))
		}
		name = strings.ReplaceAll(name, "•", "")
		name = strings.ReplaceAll(name, "project:", "")
		name = strings.TrimSpace(name)
		name = strings.TrimSpace(strings.SplitN(name, "(", 2)[0])

		if len([]rune(name)) > 3 {
			projects = append(projects, Project{
				Name:         truncateRunes(name, 150),
				Technologies: sortedUnique(techs, 10),
			})
		}
	}
	if len(projects) > 10 {
		projects = projects[:10]
	}
	return projects
}

func firstRuneIsDigit(s string) bool {
	for _, r := range s {
		return unicode.IsDigit(r)
	}
	return false
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func sortedUnique(items []string, limit int) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it]; ok {
			continue
		}
		seen[it] = struct{}{}
		out = append(out, it)
	}
	sort.Strings(out)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
