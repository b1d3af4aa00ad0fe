// Package grant implements a field-level authorization algebra.
//
// A Mask is a recursive allow/deny structure describing, for every reachable
// field path of a target object, whether access is allowed. A Grant binds a
// mask to the target type and matching context it was derived for and exposes
// path, field, and numeric-range checks over it.
//
// Multiple grants on the same target compose with Combine, which produces the
// union of their authorizations: a path is allowed by the combined mask iff
// it is allowed by any input mask.
//
// Usage:
//
//	g := grant.FromRaw(map[string]any{
//	    "name":  true,
//	    "email": false,
//	}, "user", "owner")
//
//	g.HasPath("name")       // true
//	g.CheckPath("email")    // *errors.AppError (ACCESS_DENIED)
//
// All operations are pure tree walks over immutable-by-convention masks, so
// concurrent checks against the same Grant are safe.
package grant
