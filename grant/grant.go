package grant

import (
	"math"

	"github.com/kbukum/grantkit/errors"
)

// Grant binds an authorization mask to the target type and matching context
// it was derived for. Target and match are provenance only: they are never
// consulted by the authorization logic, only attached to denial diagnostics.
//
// A Grant is read-only for the duration of an authorization decision.
// Concurrent checks against the same Grant are safe.
type Grant struct {
	mask   *Mask
	target string
	match  any
}

// New creates a Grant over an already-parsed mask.
func New(mask *Mask, target string, match any) *Grant {
	if mask == nil {
		mask = Deny()
	}
	return &Grant{mask: mask, target: target, match: match}
}

// FromRaw creates a Grant from a raw mask value (see ParseMask).
func FromRaw(raw any, target string, match any) *Grant {
	return New(ParseMask(raw), target, match)
}

// Target returns the resource type this grant was derived for.
func (g *Grant) Target() string { return g.target }

// Match returns the matching context that produced this grant.
func (g *Grant) Match() any { return g.match }

// Mask returns the grant's mask.
func (g *Grant) Mask() *Mask { return g.mask }

// Get returns the raw mask value at path. Callers use this when they need
// the mask data itself rather than a boolean decision.
func (g *Grant) Get(path string) *Mask {
	return g.mask.At(path)
}

// HasPath reports whether the path resolves to full access. A field map at
// the requested path denies scalar access; only an exact Allow grants it.
func (g *Grant) HasPath(path string) bool {
	return g.mask.At(path).IsAllow()
}

// HasPaths reports whether every path resolves to full access under the
// given prefix. It short-circuits on the first failing path.
func (g *Grant) HasPaths(prefix string, paths []string) bool {
	for _, path := range paths {
		if !g.HasPath(JoinPath(prefix, path)) {
			return false
		}
	}
	return true
}

// HasFlags reports whether every path with a true flag resolves to full
// access under the given prefix. False-flagged paths are not checked.
func (g *Grant) HasFlags(prefix string, flags map[string]bool) bool {
	for path, required := range flags {
		if required && !g.HasPath(JoinPath(prefix, path)) {
			return false
		}
	}
	return true
}

// CheckPath returns nil when the path resolves to full access, and an
// ACCESS_DENIED error carrying the failing path and the grant's provenance
// otherwise.
func (g *Grant) CheckPath(path string) error {
	if g.HasPath(path) {
		return nil
	}
	return errors.AccessDenied(path, g.target, g.match)
}

// CheckPaths checks every path under the given prefix, returning the denial
// for the first failing path.
func (g *Grant) CheckPaths(prefix string, paths []string) error {
	for _, path := range paths {
		if err := g.CheckPath(JoinPath(prefix, path)); err != nil {
			return err
		}
	}
	return nil
}

// CheckFlags checks every true-flagged path under the given prefix,
// returning the denial for the first failing path.
func (g *Grant) CheckFlags(prefix string, flags map[string]bool) error {
	for path, required := range flags {
		if !required {
			continue
		}
		if err := g.CheckPath(JoinPath(prefix, path)); err != nil {
			return err
		}
	}
	return nil
}

// Min returns the minimum value authorized by the numeric grant at path.
// Allow yields an unbounded minimum. ok is false when no numeric grant
// exists at the path; callers must check it before treating the field as
// numeric-authorized.
func (g *Grant) Min(path string) (min float64, ok bool) {
	lo, _, ok := g.mask.At(path).Bounds()
	return lo, ok
}

// Max returns the maximum value authorized by the numeric grant at path.
func (g *Grant) Max(path string) (max float64, ok bool) {
	_, hi, ok := g.mask.At(path).Bounds()
	return hi, ok
}

// CheckNumber returns nil when value falls within the numeric range granted
// at path. A missing numeric grant, a value below the minimum, and a value
// above the maximum each yield a distinct failure. A NaN value is a caller
// error.
func (g *Grant) CheckNumber(path string, value float64) error {
	if math.IsNaN(value) {
		return errors.InvalidArgument("value to check must be a number")
	}
	min, max, ok := g.mask.At(path).Bounds()
	if !ok {
		return errors.GrantMissing(path, g.target, g.match)
	}
	if value < min {
		return errors.NumberBelowMinimum(path, value, min, g.target, g.match)
	}
	if value > max {
		return errors.NumberAboveMaximum(path, value, max, g.target, g.match)
	}
	return nil
}

// Subgrant derives a Grant from the mask at path, inheriting the parent's
// target and match. The sub-grant's mask is a fresh value sharing no state
// with the parent.
func (g *Grant) Subgrant(path string) *Grant {
	return New(g.mask.At(path).Clone(), g.target, g.match)
}

// SubgrantPaths derives a Grant from the union of the masks at the given
// paths: the result authorizes anything authorized through any of them.
func (g *Grant) SubgrantPaths(paths ...string) *Grant {
	masks := make([]*Mask, len(paths))
	for i, path := range paths {
		masks[i] = g.mask.At(path)
	}
	return New(Combine(masks...), g.target, g.match)
}
