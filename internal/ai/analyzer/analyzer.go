package analyzer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/resumatch/resumatch/screening/match"
	"github.com/resumatch/resumatch/screening/resume"
)

// Analyzer generates compatibility analyses with a chat completion model.
type Analyzer struct {
	client *openai.Client
	model  string
}

// NewAnalyzer creates an analyzer. baseURL may be empty to use the
// provider's default endpoint.
func NewAnalyzer(apiKey, baseURL, model string) *Analyzer {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	client := openai.NewClient(opts...)

	return &Analyzer{
		client: &client,
		model:  model,
	}
}

// Analyze asks the model for a structured compatibility assessment of the
// resume against the job description.
func (a *Analyzer) Analyze(ctx context.Context, res resume.Resume, jd match.JobDescription) (*Analysis, error) {
	prompt := buildPrompt(res, jd)

	completion, err := a.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Model:       openai.ChatModel(a.model),
		Temperature: openai.Float(0.7),
		MaxTokens:   openai.Int(2000),
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion error: %w", err)
	}

	if len(completion.Choices) == 0 {
		return nil, errors.New("no response from model")
	}

	return parseResponse(completion.Choices[0].Message.Content), nil
}

func buildPrompt(res resume.Resume, jd match.JobDescription) string {
	experience := "Not specified"
	if res.ExperienceSummary != nil && *res.ExperienceSummary != "" {
		experience = *res.ExperienceSummary
	}

	projects := "None mentioned"
	if len(res.Projects) > 0 {
		names := make([]string, len(res.Projects))
		for i, p := range res.Projects {
			names[i] = p.Name
		}
		projects = strings.Join(names, ", ")
	}

	profiles := make([]string, len(res.OnlineProfiles))
	for i, p := range res.OnlineProfiles {
		profiles[i] = fmt.Sprintf("%s: %s", p.Label, p.URL)
	}

	summary := fmt.Sprintf(`Name: %s
Email: %s
Phone: %s
Skills: %s
Experience: %s
Projects: %s
Online Profiles: %s`,
		res.Name, res.Email, res.Phone,
		strings.Join(res.Skills, ", "),
		experience, projects,
		strings.Join(profiles, ", "))

	return fmt.Sprintf(`Analyze this resume against the job description and provide:

RESUME:
%s

JOB DESCRIPTION:
Title: %s
Description: %s

Please provide your analysis in this EXACT format (use these exact section headers):

COMPATIBILITY_SCORE: (a number 0-10)

MATCHED_SKILLS:
(list each skill on a new line with a dash)

MISSING_SKILLS:
(list each skill on a new line with a dash)

STRENGTHS:
(bullet points of what the candidate has going for them)

GAPS:
(bullet points of what's missing)

RECOMMENDATIONS:
(specific, actionable advice for the candidate)

OVERALL_ASSESSMENT:
(2-3 sentences summarizing fit for this role)

Be concise but detailed. Focus on technical fit.`, summary, jd.Title, jd.Description)
}
