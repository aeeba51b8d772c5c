package errors

import (
	"net/http"

	"seely/internal/errors"
)

// AppError is an error the HTTP layer can render without inspecting its cause.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string // stable machine-readable code, e.g. "TOKEN_EXPIRED"
	Message() string   // safe to show to end users
	Details() string   // optional context, only rendered for 4xx responses
}

// BaseError is an AppError value. Two BaseErrors match under errors.Is when their codes match.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

var _ AppError = (*BaseError)(nil)

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{httpCode: httpCode, errorCode: errorCode, message: message, details: details}
}

func (e *BaseError) Error() string     { return e.message }
func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// Is matches any BaseError carrying the same error code, so copies made by WithDetails still match.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && e.errorCode == t.errorCode
}

// WrapMessage wraps e with an internal message and a stack. The message is logged, never rendered.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// WithDetails returns a copy of e carrying client-visible details.
func (e *BaseError) WithDetails(details string) *BaseError {
	clone := *e
	clone.details = details

	return &clone
}

// Predefined error types
var (
	// Authentication-related errors
	ErrAuthenticationFailed = NewBaseError(
		http.StatusUnauthorized,
		"AUTHENTICATION_FAILED",
		"Invalid username or password",
		"",
	)

	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Authentication required",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Invalid token",
		"",
	)

	ErrTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"Token has expired",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Failed to process password",
		"",
	)

	// Federation-related errors
	ErrStateMismatch = NewBaseError(
		http.StatusBadRequest,
		"STATE_MISMATCH",
		"Invalid login state, please start the login again",
		"",
	)

	ErrUpstream = NewBaseError(
		http.StatusBadGateway,
		"UPSTREAM_ERROR",
		"Identity provider is unavailable",
		"",
	)

	ErrFederationDisabled = NewBaseError(
		http.StatusNotFound,
		"FEDERATION_DISABLED",
		"Federated login is not configured",
		"",
	)

	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

// DatabaseExecuteError is a driver failure rendered as a generic 500. The driver error stays reachable
// through Unwrap for logging and matching.
type DatabaseExecuteError struct {
	err       error
	operation string
}

// NewDatabaseExecuteError wraps a driver error with the failed operation.
func NewDatabaseExecuteError(err error, operation string) AppError {
	return &DatabaseExecuteError{err: err, operation: operation}
}

func (e *DatabaseExecuteError) Error() string {
	return e.operation + ": database execution failed: " + e.err.Error()
}

func (e *DatabaseExecuteError) Unwrap() error     { return e.err }
func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "Database execution failed" }
func (e *DatabaseExecuteError) Details() string   { return e.operation }
