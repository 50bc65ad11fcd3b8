package handler

import (
	"errors"
	"net/http"

	"github.com/dafibh/loanboard/loanboard-backend/internal/domain"
	"github.com/labstack/echo/v4"
)

// ProblemDetails represents an RFC 7807 Problem Details response
type ProblemDetails struct {
	Type     string            `json:"type"`
	Title    string            `json:"title"`
	Status   int               `json:"status"`
	Detail   string            `json:"detail,omitempty"`
	Instance string            `json:"instance,omitempty"`
	Errors   []ValidationError `json:"errors,omitempty"`
}

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error types
const (
	ErrorTypeValidation = "https://loanboard.app/errors/validation"
	ErrorTypeNotFound   = "https://loanboard.app/errors/not-found"
	ErrorTypeBadGateway = "https://loanboard.app/errors/backend-unavailable"
	ErrorTypeInternal   = "https://loanboard.app/errors/internal"
)

// NewValidationError creates a validation error response
func NewValidationError(c echo.Context, detail string, errors []ValidationError) error {
	return c.JSON(http.StatusBadRequest, ProblemDetails{
		Type:     ErrorTypeValidation,
		Title:    "Validation Error",
		Status:   http.StatusBadRequest,
		Detail:   detail,
		Instance: c.Request().URL.Path,
		Errors:   errors,
	})
}

// NewNotFoundError creates a not found error response
func NewNotFoundError(c echo.Context, detail string) error {
	return c.JSON(http.StatusNotFound, ProblemDetails{
		Type:     ErrorTypeNotFound,
		Title:    "Not Found",
		Status:   http.StatusNotFound,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// NewBadGatewayError reports that the loan backend could not serve the request
func NewBadGatewayError(c echo.Context, detail string) error {
	return c.JSON(http.StatusBadGateway, ProblemDetails{
		Type:     ErrorTypeBadGateway,
		Title:    "Bad Gateway",
		Status:   http.StatusBadGateway,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// NewInternalError creates an internal error response
func NewInternalError(c echo.Context, detail string) error {
	return c.JSON(http.StatusInternalServerError, ProblemDetails{
		Type:     ErrorTypeInternal,
		Title:    "Internal Server Error",
		Status:   http.StatusInternalServerError,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// fieldErrors flattens domain validation errors for the response body
func fieldErrors(err error) []ValidationError {
	var verrs domain.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]ValidationError, len(verrs))
	for i, fe := range verrs {
		out[i] = ValidationError{Field: fe.Field, Message: fe.Err.Error()}
	}
	return out
}

// respondError maps a service error to its problem response.
// notFound and failed are the user-facing details.
func respondError(c echo.Context, err error, notFound, failed string) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return NewValidationError(c, "Validation failed", fieldErrors(err))
	case errors.Is(err, domain.ErrNotFound):
		return NewNotFoundError(c, notFound)
	case errors.Is(err, domain.ErrBackendUnavailable):
		return NewBadGatewayError(c, failed)
	default:
		return NewInternalError(c, failed)
	}
}
