package matchapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/resumatch/resumatch/screening/match"
	"github.com/resumatch/resumatch/screening/match/matchsrv"
	"github.com/resumatch/resumatch/screening/resume"
)

type AnalysisHandlers struct {
	service *matchsrv.Service
}

func NewAnalysisHandlers(service *matchsrv.Service) *AnalysisHandlers {
	return &AnalysisHandlers{service: service}
}

func (h *AnalysisHandlers) RegisterRoutes(app *fiber.App) {
	app.Post("/api/v1/analysis", h.Analyze)
}

type analyzeRequest struct {
	Resume         resume.Resume        `json:"resume"`
	JobDescription match.JobDescription `json:"job_description"`
}

// Analyze scores an already extracted resume against a job description
// POST /api/v1/analysis
func (h *AnalysisHandlers) Analyze(c *fiber.Ctx) error {
	var req analyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return match.ErrInvalidRequest().WithDetail("cause", err.Error())
	}

	result, err := h.service.Analyze(req.Resume.Skills, req.JobDescription)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"resume":          req.Resume,
		"job_description": req.JobDescription,
		"analysis":        result,
	})
}
