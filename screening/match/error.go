package match

import (
	"net/http"

	"github.com/resumatch/resumatch/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("MATCH")

// Error codes
var (
	CodeMissingJobTitle       = ErrRegistry.Register("MISSING_JOB_TITLE", errx.TypeValidation, http.StatusBadRequest, "Job title is required")
	CodeMissingJobDescription = ErrRegistry.Register("MISSING_JOB_DESCRIPTION", errx.TypeValidation, http.StatusBadRequest, "Job description is required")
	CodeInvalidRequest        = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid analysis request")
	CodeAnalysisFailed        = ErrRegistry.Register("ANALYSIS_FAILED", errx.TypeExternal, http.StatusBadGateway, "AI analysis failed")
)

// Helper functions
func ErrMissingJobTitle() *errx.Error {
	return ErrRegistry.New(CodeMissingJobTitle)
}

func ErrMissingJobDescription() *errx.Error {
	return ErrRegistry.New(CodeMissingJobDescription)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}

func ErrAnalysisFailed(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeAnalysisFailed, cause)
}
