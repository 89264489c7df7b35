package matchapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumatch/resumatch/pkg/errx"
	"github.com/resumatch/resumatch/screening/match/matchsrv"
)

func newTestApp() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*errx.Error); ok {
				return c.Status(e.HTTPStatus).JSON(e.ToHTTPResponse())
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	NewAnalysisHandlers(matchsrv.New()).RegisterRoutes(app)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAnalyzeEndpoint(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, "/api/v1/analysis", fiber.Map{
		"resume": fiber.Map{
			"name":   "Jane Doe",
			"skills": []string{"python", "sql", "aws"},
		},
		"job_description": fiber.Map{
			"title":       "Data Engineer",
			"description": "Needs python, docker and sql.",
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Analysis struct {
			CompatibilityScore float64  `json:"compatibility_score"`
			MatchedSkills      []string `json:"matched_skills"`
			MissingSkills      []string `json:"missing_skills"`
			IrrelevantContent  []string `json:"irrelevant_content"`
		} `json:"analysis"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, 6.67, body.Analysis.CompatibilityScore)
	assert.Equal(t, []string{"python", "sql"}, body.Analysis.MatchedSkills)
	assert.Equal(t, []string{"docker"}, body.Analysis.MissingSkills)
	assert.Equal(t, []string{"aws"}, body.Analysis.IrrelevantContent)
}

func TestAnalyzeEndpointMissingTitle(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, "/api/v1/analysis", fiber.Map{
		"resume":          fiber.Map{"skills": []string{"python"}},
		"job_description": fiber.Map{"description": "text"},
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "MATCH_MISSING_JOB_TITLE", body["code"])
}

func TestAnalyzeEndpointBadBody(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analysis", bytes.NewReader([]byte("{broken")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
