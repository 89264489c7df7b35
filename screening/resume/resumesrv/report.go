package resumesrv

import (
	"fmt"
	"strings"

	"github.com/resumatch/resumatch/screening/resume"
	"github.com/resumatch/resumatch/screening/resume/extract"
)

const (
	reportRule    = 100
	reportTimeFmt = "20060102_150405"
)

// ReportPath returns the storage path for a report job, unique per job.
func ReportPath(job resume.ReportJob) string {
	id := job.ID.String()
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("reports/extracted_%s_%s.txt", job.CreatedAt.Format(reportTimeFmt), id)
}

// RenderReport produces the extraction report written per parsed resume:
// the raw text, the classified sections and the structured output.
func RenderReport(job resume.ReportJob) []byte {
	var b strings.Builder
	heavy := strings.Repeat("=", reportRule)
	light := strings.Repeat("-", reportRule)

	fmt.Fprintf(&b, "%s\nRESUME EXTRACTION & CLASSIFICATION REPORT - %s\n%s\n\n",
		heavy, job.CreatedAt.Format("2006-01-02T15:04:05"), heavy)
	fmt.Fprintf(&b, "SOURCE FILE: %s\n\n", job.FileName)

	fmt.Fprintf(&b, "FULL RAW TEXT:\n%s\n%s\n\n", light, job.RawText)

	fmt.Fprintf(&b, "%s\nCLASSIFIED SECTIONS:\n%s\n\n", heavy, heavy)
	sections := extract.SplitSections(job.RawText)
	for _, sec := range []struct{ key, title string }{
		{"contact", "CONTACT INFORMATION"},
		{"summary", "SUMMARY / OBJECTIVE"},
		{"education", "EDUCATION"},
		{"experience", "EXPERIENCE / WORK"},
		{"projects", "PROJECTS / PORTFOLIO"},
		{"skills", "SKILLS / TECHNOLOGIES"},
		{"achievements", "ACHIEVEMENTS / CERTIFICATIONS"},
	} {
		if content := strings.TrimSpace(sections[sec.key]); content != "" {
			fmt.Fprintf(&b, "%s:\n%s\n%s\n\n", sec.title, light, content)
		}
	}

	fmt.Fprintf(&b, "%s\nSTRUCTURED EXTRACTION:\n%s\n\n", heavy, heavy)

	res := job.Resume
	fmt.Fprintf(&b, "NAME: %s\n", orNotExtracted(res.Name))
	fmt.Fprintf(&b, "EMAIL: %s\n", orNotExtracted(res.Email))
	fmt.Fprintf(&b, "PHONE: %s\n\n", orNotExtracted(res.Phone))

	summary := ""
	if res.ExperienceSummary != nil {
		summary = *res.ExperienceSummary
	}
	fmt.Fprintf(&b, "EXPERIENCE SUMMARY:\n%s\n\n", orNotExtracted(summary))

	fmt.Fprintf(&b, "SKILLS (%d detected):\n", len(res.Skills))
	if len(res.Skills) == 0 {
		b.WriteString("  (No skills extracted)\n")
	}
	for _, skill := range res.Skills {
		fmt.Fprintf(&b, "  - %s\n", skill)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "ONLINE PROFILES (%d found):\n", len(res.OnlineProfiles))
	if len(res.OnlineProfiles) == 0 {
		b.WriteString("  (No profiles found)\n")
	}
	for _, p := range res.OnlineProfiles {
		fmt.Fprintf(&b, "  - %s: %s\n", p.Label, p.URL)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "PROJECTS (%d detected):\n", len(res.Projects))
	if len(res.Projects) == 0 {
		b.WriteString("  (No projects extracted)\n")
	}
	for i, proj := range res.Projects {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, proj.Name)
		if len(proj.Technologies) > 0 {
			fmt.Fprintf(&b, "     Technologies: %s\n", strings.Join(proj.Technologies, ", "))
		}
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "ACHIEVEMENTS (%d detected):\n", len(res.Achievements))
	if len(res.Achievements) == 0 {
		b.WriteString("  (No achievements extracted)\n")
	}
	for _, a := range res.Achievements {
		fmt.Fprintf(&b, "  - %s\n", a)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "%s\nEND OF REPORT\n%s\n", heavy, heavy)
	return []byte(b.String())
}

func orNotExtracted(s string) string {
	if s == "" {
		return resume.NameNotExtracted
	}
	return s
}
