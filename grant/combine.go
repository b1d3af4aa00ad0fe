package grant

import "math"

// Combine produces the union of the authorization granted by any input mask:
// a path resolves to Allow under the combined mask iff it resolves to Allow
// under at least one input, and numeric ranges widen to cover every input
// range. Inputs are reduced pairwise left to right starting from Deny.
//
// Combine never mutates or aliases its inputs; the result is freshly
// allocated structure.
func Combine(masks ...*Mask) *Mask {
	result := Deny()
	for _, m := range masks {
		result = addMask(result, m)
	}
	return result
}

// CombineRaw parses each raw mask value and combines the results.
func CombineRaw(raws ...any) *Mask {
	masks := make([]*Mask, len(raws))
	for i, raw := range raws {
		masks[i] = ParseMask(raw)
	}
	return Combine(masks...)
}

// addMask merges next into result, returning a fresh mask. Allow absorbs
// everything, Deny contributes nothing, two numeric ranges union their
// bounds, and a numeric range meeting a field map is an incompatible shape
// that merges to Deny. Field maps merge field by field with wildcard
// back-fill: a key covered implicitly by one side's wildcard and explicitly
// by the other must keep both entitlements in the union.
func addMask(result, next *Mask) *Mask {
	switch {
	case result.IsAllow() || next.IsAllow():
		return Allow()
	case next.IsDeny():
		return result.Clone()
	case result.IsDeny():
		return next.Clone()
	case result.IsRange() && next.IsRange():
		return Range(math.Min(result.min, next.min), math.Max(result.max, next.max))
	case result.IsRange() || next.IsRange():
		// Mismatched shapes cannot be merged; deny rather than guess.
		return Deny()
	}
	return mergeFields(result, next)
}

func mergeFields(result, next *Mask) *Mask {
	merged := make(map[string]*Mask, len(result.entries)+len(next.entries))
	for name, child := range result.entries {
		if other, ok := next.entries[name]; ok {
			merged[name] = addMask(child, other)
		} else if next.wildcard != nil {
			merged[name] = addMask(child, next.wildcard)
		} else {
			merged[name] = child.Clone()
		}
	}
	for name, child := range next.entries {
		if _, ok := result.entries[name]; ok {
			continue
		}
		if result.wildcard != nil {
			merged[name] = addMask(child, result.wildcard)
		} else {
			merged[name] = child.Clone()
		}
	}
	var wildcard *Mask
	if result.wildcard != nil || next.wildcard != nil {
		wildcard = addMask(orDeny(result.wildcard), orDeny(next.wildcard))
	}
	return Fields(merged, wildcard)
}

func orDeny(m *Mask) *Mask {
	if m == nil {
		return Deny()
	}
	return m
}
