package resume

import (
	"net/http"

	"github.com/resumatch/resumatch/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("RESUME")

// Error codes
var (
	CodeMissingFile         = ErrRegistry.Register("MISSING_FILE", errx.TypeValidation, http.StatusBadRequest, "Resume file is required")
	CodeFileTooLarge        = ErrRegistry.Register("FILE_TOO_LARGE", errx.TypeValidation, http.StatusBadRequest, "Resume file exceeds the size limit")
	CodeUnsupportedFileType = ErrRegistry.Register("UNSUPPORTED_FILE_TYPE", errx.TypeValidation, http.StatusBadRequest, "Unsupported resume file type")
	CodeParseFailed         = ErrRegistry.Register("PARSE_FAILED", errx.TypeInternal, http.StatusUnprocessableEntity, "Failed to parse resume document")
	CodeEmptyDocument       = ErrRegistry.Register("EMPTY_DOCUMENT", errx.TypeValidation, http.StatusUnprocessableEntity, "Resume document contains no text")
)

// Helper functions
func ErrMissingFile() *errx.Error {
	return ErrRegistry.New(CodeMissingFile)
}

func ErrFileTooLarge() *errx.Error {
	return ErrRegistry.New(CodeFileTooLarge)
}

func ErrUnsupportedFileType() *errx.Error {
	return ErrRegistry.New(CodeUnsupportedFileType)
}

func ErrParseFailed(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeParseFailed, cause)
}

func ErrEmptyDocument() *errx.Error {
	return ErrRegistry.New(CodeEmptyDocument)
}
