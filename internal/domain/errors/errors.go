// Package errors defines the application error taxonomy. Every error that
// can cross the use-case boundary implements AppError so the delivery layer
// can map it to an HTTP status and envelope without inspecting strings.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	// Duplicate email surfaces as a validation failure (422), matching the
	// register/provision contract, not as a 409 conflict.
	ErrEmailTaken = NewBaseError(
		http.StatusUnprocessableEntity,
		"EMAIL_TAKEN",
		"The email has already been taken.",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"Failed to create user",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnprocessableEntity,
		"INVALID_CREDENTIALS",
		"The provided credentials are incorrect.",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Missing or invalid token",
		"",
	)

	ErrTokenNotFound = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_NOT_FOUND",
		"Token has been revoked or expired",
		"",
	)

	// Stock-related errors. A non-owner, non-admin lookup resolves to this
	// error so the outcome is indistinguishable from a missing record.
	ErrStockNotFound = NewBaseError(
		http.StatusNotFound,
		"STOCK_NOT_FOUND",
		"Stock not found",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusUnprocessableEntity,
		"VALIDATION_FAILED",
		"Validation failed",
		"",
	)

	ErrRoleUnknown = NewBaseError(
		http.StatusUnprocessableEntity,
		"ROLE_UNKNOWN",
		"The role must be Admin or Farmer",
		"",
	)

	// General errors
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Forbidden",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// ValidationError carries per-field messages for a 422 response on top of a
// base catalog error. It unwraps to its base so errors.Is still matches the
// class (ErrValidationFailed, ErrEmailTaken, ErrInvalidCredentials, ...).
type ValidationError struct {
	base   *BaseError
	fields map[string]string
}

// NewValidationError creates a generic validation failure with field-level messages.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{base: ErrValidationFailed, fields: fields}
}

// NewFieldError attaches field-level messages to a specific catalog error.
func NewFieldError(base *BaseError, fields map[string]string) *ValidationError {
	return &ValidationError{base: base, fields: fields}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.base.Message()
}

// Unwrap lets errors.Is match the base catalog error.
func (e *ValidationError) Unwrap() error {
	return e.base
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return e.base.HTTPCode()
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return e.base.ErrorCode()
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return e.base.Message()
}

// Details returns detailed error information
func (e *ValidationError) Details() string {
	return ""
}

// Fields returns the per-field validation messages.
func (e *ValidationError) Fields() map[string]string {
	return e.fields
}

// DatabaseExecuteError represents a database execution error, implementing
// the AppError interface. The underlying detail is logged, never returned
// verbatim to callers.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
