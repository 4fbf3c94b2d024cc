package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeValidation     = "VALIDATION_ERROR"
	CodeConflict       = "CONFLICT"
	CodeNotFound       = "NOT_FOUND"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeInternal       = "INTERNAL_ERROR"
	CodeRateLimited    = "RATE_LIMITED"
	CodeRequestTimeout = "REQUEST_TIMEOUT"
)

// FieldError describes one offending input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type APIError struct {
	Code       string       `json:"code"`
	Message    string       `json:"message"`
	Errors     []FieldError `json:"errors,omitempty"`
	HTTPStatus int          `json:"-"`
	cause      error
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}

	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.cause
}

// WithErrors returns a copy of e carrying the given field errors.
func (e *APIError) WithErrors(fieldErrors ...FieldError) *APIError {
	clone := *e
	clone.Errors = append(append([]FieldError(nil), e.Errors...), fieldErrors...)
	return &clone
}

// Wrap returns a copy of e that keeps cause for logging. The cause is never serialized.
func (e *APIError) Wrap(cause error) *APIError {
	clone := *e
	clone.cause = cause
	return &clone
}

func New(code string, message string, status int) *APIError {
	return &APIError{Code: code, Message: message, HTTPStatus: status}
}

func Validation(message string) *APIError {
	return New(CodeValidation, message, http.StatusBadRequest)
}

func Conflict(message string) *APIError {
	return New(CodeConflict, message, http.StatusConflict)
}

func NotFound(message string) *APIError {
	return New(CodeNotFound, message, http.StatusNotFound)
}

func Unauthorized(message string) *APIError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func Internal(message string) *APIError {
	return New(CodeInternal, message, http.StatusInternalServerError)
}

// As extracts the first *APIError in err's chain.
func As(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsCode reports whether err carries an *APIError with the given code.
func IsCode(err error, code string) bool {
	apiErr, ok := As(err)
	return ok && apiErr.Code == code
}
