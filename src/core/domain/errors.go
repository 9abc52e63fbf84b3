package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels. Handlers map each to one HTTP status.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
	ErrUnavailable  = errors.New("service unavailable")
)

// DomainError attaches a message, and optionally the offending field, to
// one of the sentinels above.
type DomainError struct {
	Base    error
	Message string
	Field   string
}

func (e *DomainError) Error() string {
	switch {
	case e.Field != "":
		return fmt.Sprintf("%s: %s (field: %s)", e.Base, e.Message, e.Field)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", e.Base, e.Message)
	}
	return e.Base.Error()
}

func (e *DomainError) Unwrap() error { return e.Base }

// NewNotFoundError names the missing resource, e.g. "venue".
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{Base: ErrNotFound, Message: resource}
}

func NewValidationError(field, message string) *DomainError {
	return &DomainError{Base: ErrInvalidInput, Message: message, Field: field}
}

func NewConflictError(message string) *DomainError {
	return &DomainError{Base: ErrConflict, Message: message}
}

func NewForbiddenError(message string) *DomainError {
	return &DomainError{Base: ErrForbidden, Message: message}
}

func NewUnauthorizedError(message string) *DomainError {
	return &DomainError{Base: ErrUnauthorized, Message: message}
}

// NewUnavailableError marks a dependency that is not configured or not reachable.
func NewUnavailableError(message string) *DomainError {
	return &DomainError{Base: ErrUnavailable, Message: message}
}

func IsNotFound(err error) bool        { return errors.Is(err, ErrNotFound) }
func IsValidationError(err error) bool { return errors.Is(err, ErrInvalidInput) }
func IsConflict(err error) bool        { return errors.Is(err, ErrConflict) }
func IsForbidden(err error) bool       { return errors.Is(err, ErrForbidden) }
func IsUnauthorized(err error) bool    { return errors.Is(err, ErrUnauthorized) }
func IsUnavailable(err error) bool     { return errors.Is(err, ErrUnavailable) }

// FieldViolation describes one field that failed its rule.
type FieldViolation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationErrors collects every violation found in a single payload.
// It unwraps to ErrInvalidInput so IsValidationError matches it.
type ValidationErrors struct {
	Violations []FieldViolation
}

func (e *ValidationErrors) Error() string {
	if len(e.Violations) == 0 {
		return ErrInvalidInput.Error()
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidInput, strings.Join(parts, "; "))
}

func (e *ValidationErrors) Unwrap() error { return ErrInvalidInput }

// Add appends a violation.
func (e *ValidationErrors) Add(field, rule, message string) {
	e.Violations = append(e.Violations, FieldViolation{Field: field, Rule: rule, Message: message})
}

// Has reports whether a violation was recorded for field.
func (e *ValidationErrors) Has(field string) bool {
	for _, v := range e.Violations {
		if v.Field == field {
			return true
		}
	}
	return false
}

// OrNil returns e if it holds violations, nil otherwise.
func (e *ValidationErrors) OrNil() error {
	if e == nil || len(e.Violations) == 0 {
		return nil
	}
	return e
}

