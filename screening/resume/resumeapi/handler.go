package resumeapi

import (
	"io"
	"mime/multipart"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"github.com/resumatch/resumatch/internal/ai/analyzer"
	"github.com/resumatch/resumatch/internal/docparse"
	"github.com/resumatch/resumatch/screening/match"
	"github.com/resumatch/resumatch/screening/match/matchsrv"
	"github.com/resumatch/resumatch/screening/resume"
	"github.com/resumatch/resumatch/screening/resume/resumesrv"
)

// 10MB upload limit
const maxUploadSize = int64(10 * 1024 * 1024)

type ResumeHandlers struct {
	extract  *resumesrv.Service
	matchSvc *matchsrv.Service
	analyzer *analyzer.Analyzer // nil when no API key is configured
}

func NewResumeHandlers(extractSvc *resumesrv.Service, matchSvc *matchsrv.Service, aiAnalyzer *analyzer.Analyzer) *ResumeHandlers {
	return &ResumeHandlers{
		extract:  extractSvc,
		matchSvc: matchSvc,
		analyzer: aiAnalyzer,
	}
}

func (h *ResumeHandlers) RegisterRoutes(app *fiber.App) {
	resumes := app.Group("/api/v1/resumes")

	resumes.Post("/extract", h.ExtractResume) // Parse file into structured resume
	resumes.Post("/analyze", h.AnalyzeResume) // Parse file and score against a JD
}

// ExtractResume parses an uploaded resume file into a structured resume
// POST /api/v1/resumes/extract
func (h *ResumeHandlers) ExtractResume(c *fiber.Ctx) error {
	data, filename, err := h.readUpload(c)
	if err != nil {
		return err
	}

	res, err := h.extract.Extract(c.Context(), data, filename)
	if err != nil {
		return err
	}

	return c.JSON(res)
}

// AnalyzeResume parses an uploaded resume and scores it against the job
// description given in the form fields
// POST /api/v1/resumes/analyze
func (h *ResumeHandlers) AnalyzeResume(c *fiber.Ctx) error {
	data, filename, err := h.readUpload(c)
	if err != nil {
		return err
	}

	jd := match.JobDescription{
		Title:       c.FormValue("job_title"),
		Description: c.FormValue("job_description"),
	}
	// Reject an incomplete job description before extraction runs, so the
	// request leaves no diagnostic report behind.
	if err := jd.Validate(); err != nil {
		return err
	}

	res, err := h.extract.Extract(c.Context(), data, filename)
	if err != nil {
		return err
	}

	result, err := h.matchSvc.Analyze(res.Skills, jd)
	if err != nil {
		return err
	}

	response := fiber.Map{
		"resume":          res,
		"job_description": jd,
		"analysis":        result,
	}

	if h.analyzer != nil {
		aiResult, err := h.analyzer.Analyze(c.Context(), res, jd)
		if err != nil {
			response["ai_analysis_error"] = err.Error()
		} else {
			response["ai_analysis"] = aiResult
		}
	}

	return c.JSON(response)
}

// readUpload pulls the "file" part out of the multipart form and validates
// size and type before reading it into memory.
func (h *ResumeHandlers) readUpload(c *fiber.Ctx) ([]byte, string, error) {
	file, err := c.FormFile("file")
	if err != nil {
		return nil, "", resume.ErrMissingFile()
	}

	if file.Size > maxUploadSize {
		return nil, "", resume.ErrFileTooLarge().
			WithDetail("max_size", "10MB").
			WithDetail("size", file.Size)
	}

	if docparse.SupportedExtension(file.Filename) == "" {
		return nil, "", resume.ErrUnsupportedFileType().
			WithDetail("supported_types", []string{"pdf", "docx", "txt"}).
			WithDetail("file_extension", filepath.Ext(file.Filename))
	}

	data, err := readAll(file)
	if err != nil {
		return nil, "", resume.ErrParseFailed(err)
	}
	return data, file.Filename, nil
}

func readAll(file *multipart.FileHeader) ([]byte, error) {
	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
