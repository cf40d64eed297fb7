// Package response defines the JSON envelope every endpoint answers with.
package response

import (
	"net/http"

	deliverycontext "beanwatch/internal/delivery/context"
	domainerrors "beanwatch/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message,omitempty"`
	Data    any       `json:"data,omitempty"`
	Meta    *MetaInfo `json:"meta,omitempty"`
}

// ErrorResponse defines the structure for error responses. Errors carries
// per-field validation messages on 422s; ErrorInfo carries the machine code.
type ErrorResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
	Error   *ErrorInfo        `json:"error,omitempty"`
	Meta    *MetaInfo         `json:"meta,omitempty"`
}

// ErrorInfo contains the machine-readable error code, e.g. "VALIDATION_FAILED".
type ErrorInfo struct {
	Code string `json:"code"`
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, message string, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Success: true,
		Message: message,
		Data:    data,
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, fields map[string]string) error {
	// Field details are only meaningful on validation failures; never leak
	// anything extra on auth or server errors.
	if statusCode >= 500 || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		fields = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Message: message,
		Errors:  fields,
		Error: &ErrorInfo{
			Code: errorCode,
		},
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

// Forbidden returns a 403 error
func Forbidden(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, nil)
}

// NotFound returns a 404 error
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, nil)
}

// BindingError returns a 400 response for malformed request bodies.
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError converts domain errors to their HTTP responses; anything
// unrecognized is passed on to the centralized error handler.
func HandleAppError(c echo.Context, err error) error {
	var validationErr *domainerrors.ValidationError
	if errors.As(err, &validationErr) {
		return Error(c, validationErr.HTTPCode(), validationErr.ErrorCode(), validationErr.Message(), validationErr.Fields())
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), nil)
	}

	return errors.WithStack(err)
}
