package matchsrv

import (
	"math"
	"sort"
	"strings"

	"github.com/resumatch/resumatch/screening/match"
	"github.com/resumatch/resumatch/screening/resume/extract"
)

// Service scores resume skills against job descriptions. It is stateless.
type Service struct{}

func New() *Service {
	return &Service{}
}

// JobSkills extracts the technical skill terms mentioned in a job
// description, title included. The text is normalized first, so punctuation
// outside the token alphabet becomes a term separator.
func (s *Service) JobSkills(jd match.JobDescription) []string {
	return extract.Skills(extract.Normalize(jd.Title + "\n" + jd.Description))
}

// Analyze scores resumeSkills against the job description. The score is
// 10 * |matched| / |jd skills|, rounded to two decimals, with an empty job
// vocabulary scoring zero. Matched and missing are lowercase and sorted;
// irrelevant content keeps the resume's original skill spelling.
func (s *Service) Analyze(resumeSkills []string, jd match.JobDescription) (match.AnalysisResult, error) {
	if err := jd.Validate(); err != nil {
		return match.AnalysisResult{}, err
	}

	jdSkills := s.JobSkills(jd)
	score, matched, missing := compatibility(resumeSkills, jdSkills)

	jdSet := make(map[string]struct{}, len(jdSkills))
	for _, sk := range jdSkills {
		jdSet[sk] = struct{}{}
	}
	irrelevant := make([]string, 0, len(resumeSkills))
	for _, sk := range resumeSkills {
		if _, ok := jdSet[sk]; !ok {
			irrelevant = append(irrelevant, sk)
		}
	}

	return match.AnalysisResult{
		CompatibilityScore: score,
		MatchedSkills:      matched,
		MissingSkills:      missing,
		IrrelevantContent:  irrelevant,
		Suggestions: match.Suggestions{
			Add:    missing,
			Remove: []string{},
		},
	}, nil
}

func compatibility(resumeSkills, jdSkills []string) (float64, []string, []string) {
	rs := lowerSet(resumeSkills)
	js := lowerSet(jdSkills)

	matched := make([]string, 0, len(js))
	missing := make([]string, 0, len(js))
	for sk := range js {
		if _, ok := rs[sk]; ok {
			matched = append(matched, sk)
		} else {
			missing = append(missing, sk)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)

	denom := len(js)
	if denom < 1 {
		denom = 1
	}
	score := round2(10.0 * float64(len(matched)) / float64(denom))
	return score, matched, missing
}

func lowerSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, it := range items {
		set[strings.ToLower(it)] = struct{}{}
	}
	return set
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
