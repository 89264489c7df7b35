package extract

import (
	"regexp"
	"strings"
)

var urlRe = regexp.MustCompile(`https?://\S+`)

// ProfileLink is a labeled URL found in resume text.
type ProfileLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Profiles returns every URL in text paired with its classified label.
func Profiles(text string) []ProfileLink {
	var profiles []ProfileLink
	for _, url := range urlRe.FindAllString(text, -1) {
		profiles = append(profiles, ProfileLink{Label: LabelURL(url), URL: url})
	}
	return profiles
}

// LabelURL classifies a URL by the first known host fragment it contains,
// falling back to "Website".
func LabelURL(url string) string {
	u := strings.ToLower(url)
	for _, pl := range profileLabels {
		if strings.Contains(u, pl.key) {
			return pl.label
		}
	}
	return "Website"
}
