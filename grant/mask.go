package grant

import (
	"math"
)

// WildcardKey is the raw-mask field name whose child applies to any field
// without an explicit entry.
const WildcardKey = "_"

// rangeMarkerKey marks a raw map as a numeric-range leaf.
const rangeMarkerKey = "grantNumber"

type maskKind int

const (
	kindDeny maskKind = iota
	kindAllow
	kindFields
	kindRange
)

// Mask is a recursive authorization structure. A mask node is one of:
//
//   - Allow: full access to this subtree
//   - Deny: no access
//   - FieldMap: per-field child masks plus an optional wildcard child
//   - NumericRange: authorizes numeric values within [min, max]
//
// Masks are immutable by convention: no operation in this package mutates a
// mask after construction, and Combine deep-copies rather than aliasing its
// inputs. A nil *Mask behaves as Deny.
type Mask struct {
	kind     maskKind
	entries  map[string]*Mask
	wildcard *Mask
	min, max float64
}

// Allow returns a mask granting full access.
func Allow() *Mask { return &Mask{kind: kindAllow} }

// Deny returns a mask granting nothing.
func Deny() *Mask { return &Mask{kind: kindDeny} }

// Fields returns a field-map mask. Deny-valued entries are kept as explicit
// denials (they shadow the wildcard). A field map with no entries and no
// wildcard normalizes to Deny.
func Fields(entries map[string]*Mask, wildcard *Mask) *Mask {
	kept := make(map[string]*Mask, len(entries))
	for name, child := range entries {
		if child == nil {
			child = Deny()
		}
		kept[name] = child
	}
	if wildcard != nil && wildcard.kind == kindDeny {
		wildcard = nil
	}
	if len(kept) == 0 && wildcard == nil {
		return Deny()
	}
	return &Mask{kind: kindFields, entries: kept, wildcard: wildcard}
}

// Range returns a numeric-range mask authorizing values in [min, max].
// Use math.Inf for an unbounded end.
func Range(min, max float64) *Mask {
	return &Mask{kind: kindRange, min: min, max: max}
}

// IsAllow reports whether the mask grants full access at this node.
func (m *Mask) IsAllow() bool { return m != nil && m.kind == kindAllow }

// IsDeny reports whether the mask grants nothing at this node.
func (m *Mask) IsDeny() bool { return m == nil || m.kind == kindDeny }

// IsFields reports whether the mask is a field map.
func (m *Mask) IsFields() bool { return m != nil && m.kind == kindFields }

// IsRange reports whether the mask is a numeric-range leaf.
func (m *Mask) IsRange() bool { return m != nil && m.kind == kindRange }

// Field returns the child mask for an explicit field name, or nil.
func (m *Mask) Field(name string) *Mask {
	if !m.IsFields() {
		return nil
	}
	return m.entries[name]
}

// Wildcard returns the field map's wildcard child, or nil.
func (m *Mask) Wildcard() *Mask {
	if !m.IsFields() {
		return nil
	}
	return m.wildcard
}

// Bounds returns the numeric range authorized at this node. Allow yields an
// unbounded range. ok is false when the node carries no numeric grant.
func (m *Mask) Bounds() (min, max float64, ok bool) {
	switch {
	case m.IsAllow():
		return math.Inf(-1), math.Inf(1), true
	case m.IsRange():
		return m.min, m.max, true
	}
	return 0, 0, false
}

// Clone returns a deep copy of the mask.
func (m *Mask) Clone() *Mask {
	switch {
	case m == nil:
		return Deny()
	case m.kind == kindFields:
		entries := make(map[string]*Mask, len(m.entries))
		for name, child := range m.entries {
			entries[name] = child.Clone()
		}
		var wildcard *Mask
		if m.wildcard != nil {
			wildcard = m.wildcard.Clone()
		}
		return &Mask{kind: kindFields, entries: entries, wildcard: wildcard}
	}
	clone := *m
	return &clone
}

// ParseMask normalizes a raw mask value into a Mask. Raw values come from
// permission configuration and may be booleans, nested maps (with the "_"
// wildcard key and {grantNumber: true, min, max} range leaves), arrays
// (normalized to a wildcard-only field map covering every element uniformly),
// or plain numbers (shorthand for min = max = value). Any other shape parses
// as Deny.
func ParseMask(raw any) *Mask {
	switch v := raw.(type) {
	case nil:
		return Deny()
	case bool:
		if v {
			return Allow()
		}
		return Deny()
	case *Mask:
		return v.Clone()
	case map[string]any:
		return parseMap(v)
	case []any:
		if len(v) == 0 {
			return Deny()
		}
		return Fields(nil, ParseMask(v[0]))
	default:
		if f, ok := toFloat(raw); ok {
			return Range(f, f)
		}
		return Deny()
	}
}

func parseMap(raw map[string]any) *Mask {
	if isRawRange(raw) {
		return Range(parseBound(raw["min"], math.Inf(-1)), parseBound(raw["max"], math.Inf(1)))
	}
	entries := make(map[string]*Mask, len(raw))
	var wildcard *Mask
	for name, child := range raw {
		if name == WildcardKey {
			wildcard = ParseMask(child)
			continue
		}
		entries[name] = ParseMask(child)
	}
	return Fields(entries, wildcard)
}

func isRawRange(raw map[string]any) bool {
	marker, ok := raw[rangeMarkerKey].(bool)
	return ok && marker
}

// parseBound reads a range bound; true means unbounded in that direction.
func parseBound(raw any, unbounded float64) float64 {
	if b, ok := raw.(bool); ok && b {
		return unbounded
	}
	if f, ok := toFloat(raw); ok {
		return f
	}
	return unbounded
}

// NormalizeNumbers recursively rewrites plain numeric leaves of a raw grant
// value into numeric-range leaves with min = max = value. The shorthand
// "authorize exactly this number" thereby becomes explicit before any
// combination or checking. Non-numeric, non-structured values pass through
// unchanged. The input is not mutated.
func NormalizeNumbers(raw any) any {
	switch v := raw.(type) {
	case map[string]any:
		if isRawRange(v) {
			return v
		}
		normalized := make(map[string]any, len(v))
		for name, child := range v {
			normalized[name] = NormalizeNumbers(child)
		}
		return normalized
	case []any:
		normalized := make([]any, len(v))
		for i, child := range v {
			normalized[i] = NormalizeNumbers(child)
		}
		return normalized
	default:
		if f, ok := toFloat(raw); ok {
			return map[string]any{rangeMarkerKey: true, "min": f, "max": f}
		}
		return raw
	}
}

// NormalizeGrant applies NormalizeNumbers to a raw grant object.
func NormalizeGrant(raw map[string]any) map[string]any {
	if raw == nil {
		return nil
	}
	return NormalizeNumbers(raw).(map[string]any)
}

func toFloat(raw any) (float64, bool) {
	switch n := raw.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
