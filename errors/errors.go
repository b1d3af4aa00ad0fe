package errors

import (
	"fmt"
	"net/http"
)

// Detail keys attached to authorization failures.
const (
	DetailGrantKey = "grant_key"
	DetailField    = "field"
	DetailTarget   = "target"
	DetailMatch    = "match"
	DetailValue    = "value"
	DetailMinimum  = "minimum"
	DetailMaximum  = "maximum"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// HTTPStatus is the recommended HTTP status code for this error.
	HTTPStatus int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Retryable:  IsRetryableCode(code),
	}
}

// --- Authorization Failure Constructors ---

// AccessDenied creates a new AppError for a path check that failed against a
// grant. grantKey is the failing path; target and match identify the grant's
// provenance.
func AccessDenied(grantKey, target string, match any) *AppError {
	return &AppError{
		Code: ErrCodeAccessDenied, Message: fmt.Sprintf("Access to %q is not granted.", grantKey),
		HTTPStatus: http.StatusForbidden, Retryable: false,
		Details: map[string]any{DetailGrantKey: grantKey, DetailTarget: target, DetailMatch: match},
	}
}

// FieldNotGranted creates a new AppError for an object field that is not
// covered by the mask it was checked against.
func FieldNotGranted(field, target string, match any) *AppError {
	return &AppError{
		Code: ErrCodeAccessDenied, Message: fmt.Sprintf("Field %q is not covered by the grant.", field),
		HTTPStatus: http.StatusForbidden, Retryable: false,
		Details: map[string]any{DetailField: field, DetailTarget: target, DetailMatch: match},
	}
}

// GrantMissing creates a new AppError for a numeric check against a field
// that carries no numeric-range grant.
func GrantMissing(grantKey, target string, match any) *AppError {
	return &AppError{
		Code: ErrCodeGrantMissing, Message: fmt.Sprintf("No numeric grant exists for %q.", grantKey),
		HTTPStatus: http.StatusForbidden, Retryable: false,
		Details: map[string]any{DetailGrantKey: grantKey, DetailTarget: target, DetailMatch: match},
	}
}

// NumberBelowMinimum creates a new AppError for a value under the granted minimum.
func NumberBelowMinimum(grantKey string, value, minimum float64, target string, match any) *AppError {
	return &AppError{
		Code: ErrCodeNumberBelowMinimum, Message: fmt.Sprintf("Value %v for %q is below the granted minimum %v.", value, grantKey, minimum),
		HTTPStatus: http.StatusForbidden, Retryable: false,
		Details: map[string]any{
			DetailGrantKey: grantKey, DetailValue: value, DetailMinimum: minimum,
			DetailTarget: target, DetailMatch: match,
		},
	}
}

// NumberAboveMaximum creates a new AppError for a value over the granted maximum.
func NumberAboveMaximum(grantKey string, value, maximum float64, target string, match any) *AppError {
	return &AppError{
		Code: ErrCodeNumberAboveMaximum, Message: fmt.Sprintf("Value %v for %q is above the granted maximum %v.", value, grantKey, maximum),
		HTTPStatus: http.StatusForbidden, Retryable: false,
		Details: map[string]any{
			DetailGrantKey: grantKey, DetailValue: value, DetailMaximum: maximum,
			DetailTarget: target, DetailMatch: match,
		},
	}
}

// --- Caller Error Constructors ---

// InvalidArgument creates a new AppError for a misuse of the checking API.
func InvalidArgument(reason string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("Invalid argument: %s", reason),
		HTTPStatus: http.StatusBadRequest, Retryable: false,
	}
}

// Validation creates a new AppError for validation errors.
func Validation(message string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidArgument, Message: message,
		HTTPStatus: http.StatusBadRequest, Retryable: false,
	}
}

// InvalidConfig creates a new AppError for permission configuration that
// could not be loaded or failed validation.
func InvalidConfig(reason string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidConfig, Message: fmt.Sprintf("Invalid permission configuration: %s", reason),
		HTTPStatus: http.StatusInternalServerError, Retryable: false,
	}
}

// Internal creates a new AppError wrapping an unexpected internal error.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "An internal error occurred.",
		HTTPStatus: http.StatusInternalServerError, Retryable: false,
		Cause: cause,
	}
}
