package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Authorization failures
const (
	// ErrCodeAccessDenied indicates a path or field check failed against a
	// well-formed grant.
	ErrCodeAccessDenied ErrorCode = "ACCESS_DENIED"
	// ErrCodeGrantMissing indicates a numeric check was attempted against a
	// field with no numeric-range grant.
	ErrCodeGrantMissing ErrorCode = "GRANT_MISSING"
	// ErrCodeNumberBelowMinimum indicates a numeric value fell below the
	// granted minimum.
	ErrCodeNumberBelowMinimum ErrorCode = "NUMBER_BELOW_MINIMUM"
	// ErrCodeNumberAboveMaximum indicates a numeric value exceeded the
	// granted maximum.
	ErrCodeNumberAboveMaximum ErrorCode = "NUMBER_ABOVE_MAXIMUM"
)

// Caller errors
const (
	// ErrCodeInvalidArgument indicates the checking API was misused by the
	// caller. This is a programming error, not an authorization failure.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrCodeInvalidConfig indicates permission configuration could not be
	// loaded or failed validation.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
)

// Internal errors
const (
	// ErrCodeInternal indicates an internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// IsRetryableCode returns true if the error code indicates a retryable error.
// Every check is a pure, deterministic computation, so no authorization
// failure is ever transient.
func IsRetryableCode(code ErrorCode) bool {
	return false
}
