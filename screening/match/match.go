package match

import (
	"strings"

	"github.com/resumatch/resumatch/pkg/errx"
)

// JobDescription is the job posting a resume is scored against.
type JobDescription struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Validate checks the job description is complete enough to score against.
func (jd JobDescription) Validate() *errx.Error {
	if strings.TrimSpace(jd.Title) == "" {
		return ErrMissingJobTitle()
	}
	if strings.TrimSpace(jd.Description) == "" {
		return ErrMissingJobDescription()
	}
	return nil
}

// Suggestions proposes edits to bring a resume closer to a job description.
// Remove stays empty until irrelevant-content pruning is smarter than the
// plain set difference already reported in IrrelevantContent.
type Suggestions struct {
	Add    []string `json:"add"`
	Remove []string `json:"remove"`
}

// AnalysisResult is the outcome of scoring a resume against a job
// description.
type AnalysisResult struct {
	CompatibilityScore float64     `json:"compatibility_score"`
	MatchedSkills      []string    `json:"matched_skills"`
	MissingSkills      []string    `json:"missing_skills"`
	IrrelevantContent  []string    `json:"irrelevant_content"`
	Suggestions        Suggestions `json:"suggestions"`
}
