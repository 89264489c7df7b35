package extract

import "strings"

// achievementMarkers are the leading characters stripped from a matched
// achievement line.
const achievementMarkers = "•-0123456789. "

// Achievements collects bullet or numbered lines from text. Markers are
// stripped, short remnants dropped, entries truncated to 200 characters and
// the result capped at ten.
func Achievements(text string) []string {
	var achievements []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		bullet := strings.HasPrefix(line, "•") || strings.HasPrefix(line, "-")
		numbered := firstRuneIsDigit(line) && strings.Contains(truncateRunes(line, 3), ".")
		if !bullet && !numbered {
			continue
		}
		entry := strings.TrimSpace(strings.TrimLeft(line, achievementMarkers))
		if len([]rune(entry)) > 10 {
			achievements = append(achievements, truncateRunes(entry, 200))
		}
	}
	if len(achievements) > 10 {
		achievements = achievements[:10]
	}
	return achievements
}
