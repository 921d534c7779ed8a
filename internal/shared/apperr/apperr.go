package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeValidation  = "VALIDATION_ERROR"
	CodeNotFound    = "NOT_FOUND"
	CodePersistence = "PERSISTENCE_ERROR"
)

// AppError is the error type every service returns for expected failures.
// Cause is for server-side logging only and is never rendered to users.
type AppError struct {
	Code       string       `json:"code"`
	Message    string       `json:"message"`
	HTTPStatus int          `json:"-"`
	Cause      error        `json:"-"`
	Details    []FieldError `json:"details,omitempty"`
}

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Cause }

// Field returns the message recorded for field, or "".
func (e *AppError) Field(field string) string {
	for _, d := range e.Details {
		if d.Field == field {
			return d.Message
		}
	}
	return ""
}

// FieldMap returns the details keyed by field name, for form re-rendering.
func (e *AppError) FieldMap() map[string]string {
	out := make(map[string]string, len(e.Details))
	for _, d := range e.Details {
		if _, ok := out[d.Field]; !ok {
			out[d.Field] = d.Message
		}
	}
	return out
}

// Validation creates a 400 error for malformed or missing input.
func Validation(msg string, details ...FieldError) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
		Details:    details,
	}
}

// NotFound creates a 404 error for an entity id that does not exist.
//
//	apperr.NotFound("Venue", 7) // "Venue 7 not found"
func NotFound(entity string, id any) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s %v not found", entity, id),
		HTTPStatus: http.StatusNotFound,
	}
}

// Persistence creates a 500 error for a failed transaction. msg is shown to
// users and should name the entity and the attempted action.
func Persistence(msg string, cause error) *AppError {
	return &AppError{
		Code:       CodePersistence,
		Message:    msg,
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// As extracts the *AppError from err's chain, or nil.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

func IsValidation(err error) bool  { return hasCode(err, CodeValidation) }
func IsNotFound(err error) bool    { return hasCode(err, CodeNotFound) }
func IsPersistence(err error) bool { return hasCode(err, CodePersistence) }

func hasCode(err error, code string) bool {
	ae := As(err)
	return ae != nil && ae.Code == code
}

// StatusOf maps err to an HTTP status, defaulting to 500.
func StatusOf(err error) int {
	if ae := As(err); ae != nil && ae.HTTPStatus != 0 {
		return ae.HTTPStatus
	}
	return http.StatusInternalServerError
}
