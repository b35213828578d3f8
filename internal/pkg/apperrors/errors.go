package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrThesisNotFound   = errors.New("thesis not found")
	ErrGroupNotFound    = errors.New("group not found")

	// Session errors
	ErrTokenExpired     = errors.New("token expired")
	ErrTokenInvalid     = errors.New("invalid token")
	ErrSessionNotFound  = errors.New("session not found")
	ErrNotAuthenticated = errors.New("not authenticated")

	// Request errors
	ErrBadRequest    = errors.New("bad request")
	ErrInvalidFormat = errors.New("invalid token format")
)

// Navigation errors
var (
	ErrInvalidPage      = errors.New("invalid page")
	ErrInvalidRole      = errors.New("invalid role")
	ErrInvalidAction    = errors.New("invalid action")
	ErrMissingSelection = errors.New("missing selection")
)

// Authorization errors
var (
	ErrUnauthorizedAction = errors.New("unauthorized action")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewForbiddenError creates a new custom error for a denied action with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrUnauthorizedAction,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}
