package errx

import "fmt"

// ErrorType categorizes errors for clients and for HTTP mapping
type ErrorType string

const (
	TypeValidation    ErrorType = "VALIDATION"
	TypeNotFound      ErrorType = "NOT_FOUND"
	TypeConflict      ErrorType = "CONFLICT"
	TypeAuthorization ErrorType = "AUTHORIZATION"
	TypeBusiness      ErrorType = "BUSINESS"
	TypeExternal      ErrorType = "EXTERNAL"
	TypeInternal      ErrorType = "INTERNAL"
)

// Code identifies a registered error definition within a registry
type Code string

type definition struct {
	errType    ErrorType
	httpStatus int
	message    string
}

// Registry holds error definitions for a single domain, keyed by code
// and prefixed with the domain name (e.g. "RESUME_PARSE_FAILED").
type Registry struct {
	prefix string
	defs   map[Code]definition
}

// NewRegistry creates an error registry for a domain
func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix: prefix,
		defs:   make(map[Code]definition),
	}
}

// Register adds an error definition and returns its code
func (r *Registry) Register(code string, errType ErrorType, httpStatus int, message string) Code {
	c := Code(code)
	r.defs[c] = definition{
		errType:    errType,
		httpStatus: httpStatus,
		message:    message,
	}
	return c
}

// New creates an error from a registered code
func (r *Registry) New(code Code) *Error {
	return r.build(code, nil)
}

// NewWithCause creates an error from a registered code wrapping an underlying cause
func (r *Registry) NewWithCause(code Code, cause error) *Error {
	return r.build(code, cause)
}

func (r *Registry) build(code Code, cause error) *Error {
	def, ok := r.defs[code]
	if !ok {
		def = definition{errType: TypeInternal, httpStatus: 500, message: "Unknown error"}
	}
	return &Error{
		Type:       def.errType,
		Code:       fmt.Sprintf("%s_%s", r.prefix, code),
		Message:    def.message,
		HTTPStatus: def.httpStatus,
		Cause:      cause,
	}
}

// Error is a structured application error
type Error struct {
	Type       ErrorType      `json:"type"`
	Code       string         `json:"code"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
	Cause      error          `json:"-"`
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches errors carrying the same registered code, so errors.Is works
// across separately constructed instances.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// WithDetail attaches a single detail key/value and returns the error
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithDetails attaches multiple details and returns the error
func (e *Error) WithDetails(details map[string]any) *Error {
	for k, v := range details {
		e.WithDetail(k, v)
	}
	return e
}

// ToHTTPResponse returns the JSON-serializable body for HTTP error responses
func (e *Error) ToHTTPResponse() map[string]any {
	resp := map[string]any{
		"error":   e.Message,
		"type":    e.Type,
		"code":    e.Code,
		"message": e.Message,
	}
	if len(e.Details) > 0 {
		resp["details"] = e.Details
	}
	return resp
}
