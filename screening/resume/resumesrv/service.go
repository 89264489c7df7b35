package resumesrv

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/resumatch/resumatch/internal/docparse"
	"github.com/resumatch/resumatch/pkg/kernel"
	"github.com/resumatch/resumatch/pkg/logx"
	"github.com/resumatch/resumatch/screening/resume"
	"github.com/resumatch/resumatch/screening/resume/extract"
)

// Service turns uploaded resume documents into structured resumes.
type Service struct {
	reportQueue resume.ReportQueue // nil disables report persistence
}

func NewService(reportQueue resume.ReportQueue) *Service {
	return &Service{reportQueue: reportQueue}
}

// Extract parses the uploaded file, assembles the structured resume and
// queues an extraction report. Report queueing is best effort and never
// fails the request.
func (s *Service) Extract(ctx context.Context, data []byte, filename string) (resume.Resume, error) {
	doc, err := docparse.Parse(data, filename)
	if err != nil {
		return resume.Resume{}, resume.ErrParseFailed(err)
	}
	if strings.TrimSpace(doc.Text) == "" {
		return resume.Resume{}, resume.ErrEmptyDocument()
	}

	res := Assemble(doc.Text)
	for _, link := range doc.Links {
		if link.URL != "" {
			res.AddProfile(link.URL)
		}
	}

	s.queueReport(ctx, filename, doc.Text, res)
	return res, nil
}

// Assemble builds a structured resume from plain resume text. Contact
// fields, profiles and skills are extracted from the whole text; projects
// and achievements only from their detected sections, so a resume without
// those headers yields none.
func Assemble(text string) resume.Resume {
	name := extract.Name(text)
	if name == "" {
		name = resume.NameNotExtracted
	}

	sections := extract.SplitSections(text)

	summary := sections["summary"]
	if summary == "" {
		var long []string
		for _, l := range strings.Split(text, "\n") {
			if t := strings.TrimSpace(l); len([]rune(t)) > 20 {
				long = append(long, t)
			}
		}
		if len(long) > 2 {
			summary = truncateRunes(long[1], 300)
		}
	}
	var experienceSummary *string
	if summary != "" {
		experienceSummary = &summary
	}

	profiles := []resume.OnlineProfile{}
	for _, p := range extract.Profiles(text) {
		profiles = append(profiles, resume.OnlineProfile{Label: p.Label, URL: p.URL})
	}

	projects := []resume.Project{}
	for _, p := range extract.Projects(sections["projects"]) {
		projects = append(projects, resume.Project{Name: p.Name, Technologies: p.Technologies})
	}

	return resume.Resume{
		Name:              name,
		Email:             extract.Email(text),
		Phone:             extract.Phone(text),
		OnlineProfiles:    profiles,
		ExperienceSummary: experienceSummary,
		Projects:          projects,
		Skills:            extract.Skills(text),
		Achievements:      extract.Achievements(sections["achievements"]),
	}
}

func (s *Service) queueReport(ctx context.Context, filename, text string, res resume.Resume) {
	if s.reportQueue == nil {
		return
	}
	job := resume.ReportJob{
		ID:        kernel.NewReportID(uuid.New().String()),
		FileName:  filename,
		RawText:   text,
		Resume:    res,
		CreatedAt: time.Now(),
	}
	if err := s.reportQueue.Enqueue(ctx, job); err != nil {
		logx.Warnf("Failed to queue extraction report %s: %v", job.ID, err)
	}
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
