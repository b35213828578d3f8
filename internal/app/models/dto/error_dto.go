package dto

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrorCode represents standardized error codes
type ErrorCode string

// Standard error codes for the application
const (
	// Session errors
	ErrorCodeInvalidToken    ErrorCode = "AUTH_005"
	ErrorCodeExpiredToken    ErrorCode = "AUTH_006"
	ErrorCodeSessionNotFound ErrorCode = "AUTH_007"
	ErrorCodeUnauthorized    ErrorCode = "AUTH_008"
	ErrorCodeForbidden       ErrorCode = "AUTH_009"

	// Navigation errors
	ErrorCodeInvalidPage      ErrorCode = "NAV_001"
	ErrorCodeMissingSelection ErrorCode = "NAV_002"
	ErrorCodeInvalidRole      ErrorCode = "NAV_003"
	ErrorCodeInvalidAction    ErrorCode = "NAV_004"

	// Resource errors
	ErrorCodeResourceNotFound ErrorCode = "RES_001"

	// Validation errors
	ErrorCodeValidationFailed ErrorCode = "VAL_001"
	ErrorCodeInvalidRequest   ErrorCode = "VAL_002"

	// Server errors
	ErrorCodeInternalServer ErrorCode = "SRV_001"
)

// ErrorSeverity represents the severity level of an error
type ErrorSeverity string

// ErrorSeverityError is the severity carried by every API error
const ErrorSeverityError ErrorSeverity = "ERROR"

// ErrorDetail represents detailed error information
type ErrorDetail struct {
	Code     ErrorCode     `json:"code" example:"NAV_001"`
	Message  string        `json:"message" example:"Unknown page"`
	Field    string        `json:"field,omitempty" example:"page"`
	Severity ErrorSeverity `json:"severity" example:"ERROR"`
	Details  interface{}   `json:"details,omitempty"`
}

// NewErrorDetail creates a new error detail
func NewErrorDetail(code ErrorCode, message string) *ErrorDetail {
	return &ErrorDetail{
		Code:     code,
		Message:  message,
		Severity: ErrorSeverityError,
	}
}

// WithField adds a field name to the error detail
func (e *ErrorDetail) WithField(field string) *ErrorDetail {
	e.Field = field
	return e
}

// WithDetails adds additional details to the error
func (e *ErrorDetail) WithDetails(details interface{}) *ErrorDetail {
	e.Details = details
	return e
}

// HandleValidationError turns a binding error into an ErrorDetail. Failures
// of the page and role rules keep their navigation error codes.
func HandleValidationError(err error) *ErrorDetail {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return NewErrorDetail(ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
	}

	first := verrs[0]
	code := ErrorCodeValidationFailed
	message := "Validation failed"
	switch first.Tag() {
	case "page":
		code, message = ErrorCodeInvalidPage, "Unknown page"
	case "role":
		code, message = ErrorCodeInvalidRole, "Unknown role"
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, formatValidationError(fe))
	}
	return NewErrorDetail(code, message).WithField(first.Field()).WithDetails(fields)
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "page":
		return fmt.Sprintf("%s %q is not a known page", e.Field(), e.Value())
	case "role":
		return fmt.Sprintf("%s %q is not a known role", e.Field(), e.Value())
	case "max":
		return e.Field() + " must be at most " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
