package errors

import (
	"net/http"

	"onduty/internal/errors"
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

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	ErrFacilityNotFound = NewBaseError(
		http.StatusNotFound,
		"FACILITY_NOT_FOUND",
		"facility not found",
		"",
	)

	ErrInvalidCategory = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CATEGORY",
		"category must be pharmacy or hospital",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"request validation failed",
		"",
	)

	ErrStoreUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"STORE_UNAVAILABLE",
		"facility store unavailable",
		"",
	)

	ErrRegistryUnavailable = NewBaseError(
		http.StatusBadGateway,
		"REGISTRY_UNAVAILABLE",
		"facility registry unavailable",
		"",
	)

	ErrGeocodeUnavailable = NewBaseError(
		http.StatusBadGateway,
		"GEOCODE_UNAVAILABLE",
		"geocoding service unavailable",
		"",
	)

	ErrIngestFailed = NewBaseError(
		http.StatusInternalServerError,
		"INGEST_FAILED",
		"registry ingestion failed",
		"",
	)
)

// NewDatabaseExecuteError creates a database error with the underlying cause
// attached as details.
func NewDatabaseExecuteError(cause error, message string) *BaseError {
	return NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_ERROR",
		message,
		cause.Error(),
	)
}
