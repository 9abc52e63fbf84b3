// Package response writes the API's JSON envelopes: {"data": ...} for
// single resources, a paginated envelope for lists, and {"error": ...}
// for failures.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shootfed/src/core/domain"
)

// Machine-readable error codes carried in ErrorDetail.Code.
const (
	CodeBadRequest  = "BAD_REQUEST"
	CodeValidation  = "VALIDATION_ERROR"
	CodeNotFound    = "NOT_FOUND"
	CodeConflict    = "CONFLICT"
	CodeForbidden   = "FORBIDDEN"
	CodeAuth        = "UNAUTHORIZED"
	CodeInternal    = "INTERNAL_ERROR"
	CodeUnavailable = "SERVICE_UNAVAILABLE"
)

// Success wraps a single resource.
type Success struct {
	Data any `json:"data"`
}

// Error wraps a failure.
type Error struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail describes a failure. Field is set for single-field errors,
// Fields when a payload failed several rules at once.
type ErrorDetail struct {
	Code      string                  `json:"code"`
	Message   string                  `json:"message"`
	Field     string                  `json:"field,omitempty"`
	Fields    []domain.FieldViolation `json:"fields,omitempty"`
	RequestID string                  `json:"request_id,omitempty"`
}

// Paginated is the list envelope.
type Paginated struct {
	Data       any   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int   `json:"total_pages"`
}

// PageOf sends a 200 paginated response, shaping each item with toResponse.
func PageOf[T, R any](c *gin.Context, page domain.Page[T], toResponse func(*T) R) {
	items := make([]R, len(page.Items))
	for i := range page.Items {
		items[i] = toResponse(&page.Items[i])
	}
	c.JSON(http.StatusOK, Paginated{
		Data:       items,
		Total:      page.Total,
		Page:       page.Page,
		PerPage:    page.Limit,
		TotalPages: page.TotalPages(),
	})
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Success{Data: data})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Success{Data: data})
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func fail(c *gin.Context, status int, detail ErrorDetail) {
	c.JSON(status, Error{Error: detail})
}

func BadRequest(c *gin.Context, message, requestID string) {
	fail(c, http.StatusBadRequest, ErrorDetail{Code: CodeBadRequest, Message: message, RequestID: requestID})
}

// ValidationError reports a single offending field.
func ValidationError(c *gin.Context, field, message, requestID string) {
	fail(c, http.StatusBadRequest, ErrorDetail{Code: CodeValidation, Message: message, Field: field, RequestID: requestID})
}

// Violations reports every field that failed its rule.
func Violations(c *gin.Context, verr *domain.ValidationErrors, requestID string) {
	fail(c, http.StatusBadRequest, ErrorDetail{
		Code:      CodeValidation,
		Message:   "request validation failed",
		Fields:    verr.Violations,
		RequestID: requestID,
	})
}

func NotFound(c *gin.Context, message, requestID string) {
	fail(c, http.StatusNotFound, ErrorDetail{Code: CodeNotFound, Message: message, RequestID: requestID})
}

func Forbidden(c *gin.Context, message, requestID string) {
	fail(c, http.StatusForbidden, ErrorDetail{Code: CodeForbidden, Message: message, RequestID: requestID})
}

func Unauthorized(c *gin.Context, message, requestID string) {
	fail(c, http.StatusUnauthorized, ErrorDetail{Code: CodeAuth, Message: message, RequestID: requestID})
}

// InternalError never echoes the cause; it is logged by the caller.
func InternalError(c *gin.Context, requestID string) {
	fail(c, http.StatusInternalServerError, ErrorDetail{
		Code:      CodeInternal,
		Message:   "An unexpected error occurred",
		RequestID: requestID,
	})
}

// domainStatus maps each domain sentinel to its status and code.
var domainStatus = []struct {
	base   error
	status int
	code   string
}{
	{domain.ErrNotFound, http.StatusNotFound, CodeNotFound},
	{domain.ErrConflict, http.StatusConflict, CodeConflict},
	{domain.ErrForbidden, http.StatusForbidden, CodeForbidden},
	{domain.ErrUnauthorized, http.StatusUnauthorized, CodeAuth},
	{domain.ErrUnavailable, http.StatusServiceUnavailable, CodeUnavailable},
}

// FromDomainError writes the response matching err's domain sentinel.
// Unknown errors become a 500.
func FromDomainError(c *gin.Context, err error, requestID string) {
	if domain.IsValidationError(err) {
		var verr *domain.ValidationErrors
		var derr *domain.DomainError
		switch {
		case errors.As(err, &verr):
			Violations(c, verr, requestID)
		case errors.As(err, &derr):
			ValidationError(c, derr.Field, derr.Message, requestID)
		default:
			BadRequest(c, err.Error(), requestID)
		}
		return
	}

	for _, m := range domainStatus {
		if errors.Is(err, m.base) {
			fail(c, m.status, ErrorDetail{Code: m.code, Message: err.Error(), RequestID: requestID})
			return
		}
	}
	InternalError(c, requestID)
}
