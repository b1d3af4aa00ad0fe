// Package errors provides unified error handling for the grant algebra.
// It implements structured error types with error codes, HTTP status mapping,
// and the diagnostic context (grant key, target, match, value, bounds) that
// authorization failures must carry to produce actionable messages.
package errors
