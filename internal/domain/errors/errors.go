// Package errors defines the application error taxonomy. Every condition a
// caller can act on gets a distinct error with an HTTP status and a stable
// business code; only genuinely unexpected failures surface as 500s.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError is the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure implementing AppError.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying detailed error information.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessage returns a copy carrying a different user-facing message. Used
// when the message is computed at runtime, e.g. the validator's reason.
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

var (
	// Region / location validation errors.
	ErrRegionNotConfigured = NewBaseError(
		http.StatusNotFound,
		"REGION_NOT_CONFIGURED",
		"no active service region is configured",
		"",
	)

	ErrRegionNotFound = NewBaseError(
		http.StatusNotFound,
		"REGION_NOT_FOUND",
		"service region not found",
		"",
	)

	ErrLocationOutsideCoverage = NewBaseError(
		http.StatusBadRequest,
		"LOCATION_OUTSIDE_COVERAGE",
		"the location is outside the coverage area of the active service region",
		"",
	)

	ErrRegionServiceUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"REGION_SERVICE_UNAVAILABLE",
		"service region data is temporarily unavailable",
		"",
	)

	// Business errors.
	ErrBusinessNotFound = NewBaseError(
		http.StatusNotFound,
		"BUSINESS_NOT_FOUND",
		"business not found",
		"",
	)

	ErrBusinessAlreadyExists = NewBaseError(
		http.StatusConflict,
		"BUSINESS_ALREADY_EXISTS",
		"this account already has a registered business",
		"",
	)

	ErrBusinessCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"BUSINESS_CREATION_FAILED",
		"failed to create business",
		"",
	)

	// Catalog errors.
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"product not found",
		"",
	)

	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"CATEGORY_NOT_FOUND",
		"category not found",
		"",
	)

	ErrCategoryInUse = NewBaseError(
		http.StatusConflict,
		"CATEGORY_IN_USE",
		"category still has products assigned",
		"",
	)

	// Client / courier errors.
	ErrClientNotFound = NewBaseError(
		http.StatusNotFound,
		"CLIENT_NOT_FOUND",
		"client not found",
		"",
	)

	ErrCourierNotFound = NewBaseError(
		http.StatusNotFound,
		"COURIER_NOT_FOUND",
		"courier not found",
		"",
	)

	// API key errors.
	ErrAPIKeyMissing = NewBaseError(
		http.StatusUnauthorized,
		"API_KEY_MISSING",
		"API key not provided; use the X-API-Key header or Authorization: Bearer <key>",
		"",
	)

	ErrAPIKeyInvalid = NewBaseError(
		http.StatusUnauthorized,
		"API_KEY_INVALID",
		"API key is invalid, expired, or revoked",
		"",
	)

	ErrApplicationNotFound = NewBaseError(
		http.StatusNotFound,
		"APPLICATION_NOT_FOUND",
		"API application not found",
		"",
	)

	// Auth errors. The auth provider reports failures as messages, so the
	// usecase maps the known ones onto these.
	ErrEmailAlreadyRegistered = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_REGISTERED",
		"this email is already registered",
		"",
	)

	ErrSignUpFailed = NewBaseError(
		http.StatusBadRequest,
		"SIGNUP_FAILED",
		"could not register the user",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid email or password",
		"",
	)

	ErrEmailNotConfirmed = NewBaseError(
		http.StatusUnauthorized,
		"EMAIL_NOT_CONFIRMED",
		"verify your email before signing in",
		"",
	)

	ErrInvalidRefreshToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_REFRESH_TOKEN",
		"refresh token is invalid or expired",
		"",
	)

	ErrPasswordResetFailed = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_RESET_FAILED",
		"could not request a password reset",
		"",
	)

	ErrPasswordUpdateFailed = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_UPDATE_FAILED",
		"could not update the password",
		"",
	)

	// Validation-related errors.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// Transaction-related errors.
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

	// General errors.
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"authentication required",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"permission denied",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)
)

// DatabaseExecuteError represents an unexpected database failure,
// implementing the AppError interface with a 503 so callers can tell
// connectivity problems apart from business-rule rejections.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error.
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusServiceUnavailable
}

func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

func (e *DatabaseExecuteError) Details() string {
	return e.details
}
