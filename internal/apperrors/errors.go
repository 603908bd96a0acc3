package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// AppError carries an HTTP-ish status code and a safe message alongside the underlying cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError wraps err with a status code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError returns an AppError that matches ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewDuplicateError returns an AppError that matches ErrDuplicate.
func NewDuplicateError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message, Err: ErrDuplicate}
}

// FieldViolation is a single failed rule on a request field.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every rule a request violated, in reporting order.
type ValidationError struct {
	Violations []FieldViolation
}

// NewValidationError builds a ValidationError with a single violation that is not tied to a field.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Violations: []FieldViolation{{Message: message}}}
}

// Add appends a violation.
func (e *ValidationError) Add(field, message string) {
	e.Violations = append(e.Violations, FieldViolation{Field: field, Message: message})
}

// HasViolations reports whether at least one rule failed.
func (e *ValidationError) HasViolations() bool {
	return len(e.Violations) > 0
}

// Messages returns the violation messages in order.
func (e *ValidationError) Messages() []string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Message
	}
	return msgs
}

// Fields maps each offending field to its messages, joined with "; " when a field
// violated more than one rule. Violations without a field are left out.
func (e *ValidationError) Fields() map[string]string {
	fields := make(map[string]string)
	for _, v := range e.Violations {
		if v.Field == "" {
			continue
		}
		if existing, ok := fields[v.Field]; ok {
			fields[v.Field] = existing + "; " + v.Message
			continue
		}
		fields[v.Field] = v.Message
	}
	return fields
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 1 && e.Violations[0].Field == "" {
		return e.Violations[0].Message
	}
	return "Validation failed: " + strings.Join(e.Messages(), ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// StatusCode maps an error to the HTTP status the API layer should answer with.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	}
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code != 0 {
		return appErr.Code
	}
	return http.StatusInternalServerError
}
