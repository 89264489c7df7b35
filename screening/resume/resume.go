package resume

import (
	"time"

	"github.com/resumatch/resumatch/pkg/kernel"
	"github.com/resumatch/resumatch/screening/resume/extract"
)

// NameNotExtracted is the sentinel name for resumes where no candidate name
// was found.
const NameNotExtracted = "NOT EXTRACTED"

// OnlineProfile is a labeled link found in a resume.
type OnlineProfile struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Project is a project entry extracted from a resume.
type Project struct {
	Name         string   `json:"name"`
	Technologies []string `json:"technologies"`
}

// Resume is the structured view of a parsed resume document.
type Resume struct {
	Name              string          `json:"name"`
	Email             string          `json:"email"`
	Phone             string          `json:"phone"`
	OnlineProfiles    []OnlineProfile `json:"online_profiles"`
	ExperienceSummary *string         `json:"experience_summary,omitempty"`
	Projects          []Project       `json:"projects"`
	Skills            []string        `json:"skills"`
	Achievements      []string        `json:"achievements,omitempty"`
}

// HasProfileURL reports whether a profile with the exact URL is already
// attached.
func (r *Resume) HasProfileURL(url string) bool {
	for _, p := range r.OnlineProfiles {
		if p.URL == url {
			return true
		}
	}
	return false
}

// AddProfile appends a profile, classifying the URL, unless the same URL is
// already present.
func (r *Resume) AddProfile(url string) {
	if r.HasProfileURL(url) {
		return
	}
	r.OnlineProfiles = append(r.OnlineProfiles, OnlineProfile{
		Label: extract.LabelURL(url),
		URL:   url,
	})
}

// ReportJob is the queued payload for writing an extraction report.
type ReportJob struct {
	ID        kernel.ReportID `json:"id"`
	FileName  string          `json:"file_name"`
	RawText   string          `json:"raw_text"`
	Resume    Resume          `json:"resume"`
	CreatedAt time.Time       `json:"created_at"`
}
