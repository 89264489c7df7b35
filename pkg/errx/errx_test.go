package errx

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryNew(t *testing.T) {
	reg := NewRegistry("TEST")
	code := reg.Register("NOT_FOUND", TypeNotFound, http.StatusNotFound, "Thing not found")

	err := reg.New(code)
	require.NotNil(t, err)
	assert.Equal(t, "TEST_NOT_FOUND", err.Code)
	assert.Equal(t, TypeNotFound, err.Type)
	assert.Equal(t, http.StatusNotFound, err.HTTPStatus)
	assert.Equal(t, "Thing not found", err.Message)
}

func TestNewWithCause(t *testing.T) {
	reg := NewRegistry("TEST")
	code := reg.Register("INTERNAL", TypeInternal, http.StatusInternalServerError, "Boom")

	cause := errors.New("disk on fire")
	err := reg.NewWithCause(code, cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestErrorIsMatchesSameCode(t *testing.T) {
	reg := NewRegistry("TEST")
	code := reg.Register("DUP", TypeConflict, http.StatusConflict, "Duplicate")
	other := reg.Register("OTHER", TypeConflict, http.StatusConflict, "Other")

	assert.ErrorIs(t, reg.New(code), reg.New(code))
	assert.NotErrorIs(t, reg.New(code), reg.New(other))
}

func TestWithDetails(t *testing.T) {
	reg := NewRegistry("TEST")
	code := reg.Register("BAD", TypeValidation, http.StatusBadRequest, "Bad input")

	err := reg.New(code).
		WithDetail("field", "email").
		WithDetails(map[string]any{"length": 3})

	assert.Equal(t, "email", err.Details["field"])
	assert.Equal(t, 3, err.Details["length"])

	resp := err.ToHTTPResponse()
	assert.Equal(t, "TEST_BAD", resp["code"])
	assert.NotNil(t, resp["details"])
}
