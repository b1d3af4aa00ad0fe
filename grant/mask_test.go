package grant

import (
	"math"
	"testing"
)

func TestParseMask_Booleans(t *testing.T) {
	if !ParseMask(true).IsAllow() {
		t.Error("expected true to parse as Allow")
	}
	if !ParseMask(false).IsDeny() {
		t.Error("expected false to parse as Deny")
	}
	if !ParseMask(nil).IsDeny() {
		t.Error("expected nil to parse as Deny")
	}
}

func TestParseMask_FieldMap(t *testing.T) {
	m := ParseMask(map[string]any{
		"name":  true,
		"email": false,
		"_":     map[string]any{"inner": true},
	})
	if !m.IsFields() {
		t.Fatal("expected a field map")
	}
	if !m.Field("name").IsAllow() {
		t.Error("expected name to be Allow")
	}
	if !m.Field("email").IsDeny() {
		t.Error("expected email to be Deny")
	}
	if m.Wildcard() == nil || !m.Wildcard().IsFields() {
		t.Error("expected a structured wildcard child")
	}
}

func TestParseMask_EmptyMapIsDeny(t *testing.T) {
	if !ParseMask(map[string]any{}).IsDeny() {
		t.Error("expected empty map to normalize to Deny")
	}
}

func TestParseMask_RangeLeaf(t *testing.T) {
	m := ParseMask(map[string]any{"grantNumber": true, "min": 0, "max": 5})
	if !m.IsRange() {
		t.Fatal("expected a numeric-range leaf")
	}
	min, max, ok := m.Bounds()
	if !ok {
		t.Fatal("expected bounds")
	}
	if min != 0 || max != 5 {
		t.Errorf("expected [0, 5], got [%v, %v]", min, max)
	}
}

func TestParseMask_UnboundedRange(t *testing.T) {
	m := ParseMask(map[string]any{"grantNumber": true, "min": true, "max": true})
	min, max, ok := m.Bounds()
	if !ok {
		t.Fatal("expected bounds")
	}
	if !math.IsInf(min, -1) {
		t.Errorf("expected -Inf minimum, got %v", min)
	}
	if !math.IsInf(max, 1) {
		t.Errorf("expected +Inf maximum, got %v", max)
	}
}

func TestParseMask_MissingBoundsAreUnbounded(t *testing.T) {
	m := ParseMask(map[string]any{"grantNumber": true, "min": 3})
	min, max, _ := m.Bounds()
	if min != 3 {
		t.Errorf("expected minimum 3, got %v", min)
	}
	if !math.IsInf(max, 1) {
		t.Errorf("expected +Inf maximum, got %v", max)
	}
}

func TestParseMask_NumericShorthand(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want float64
	}{
		{"int", 7, 7},
		{"int64", int64(7), 7},
		{"float64", 7.5, 7.5},
		{"uint", uint(7), 7},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := ParseMask(tc.raw)
			min, max, ok := m.Bounds()
			if !ok {
				t.Fatal("expected a numeric-range leaf")
			}
			if min != tc.want || max != tc.want {
				t.Errorf("expected [%v, %v], got [%v, %v]", tc.want, tc.want, min, max)
			}
		})
	}
}

func TestParseMask_ArrayNormalizesToWildcard(t *testing.T) {
	m := ParseMask([]any{map[string]any{"hits": true}})
	if !m.IsFields() {
		t.Fatal("expected a field map")
	}
	if len(m.entries) != 0 {
		t.Errorf("expected no explicit entries, got %d", len(m.entries))
	}
	if !m.At("0.hits").IsAllow() {
		t.Error("expected any index to resolve through the wildcard")
	}
	if !m.At("42.hits").IsAllow() {
		t.Error("expected index authorization to be uniform")
	}
}

func TestParseMask_UnknownShapeIsDeny(t *testing.T) {
	if !ParseMask("a string").IsDeny() {
		t.Error("expected a string to parse as Deny")
	}
	if !ParseMask(struct{}{}).IsDeny() {
		t.Error("expected a struct to parse as Deny")
	}
}

func TestMaskAt_EmptyPath(t *testing.T) {
	m := ParseMask(map[string]any{"a": true})
	if m.At("") != m {
		t.Error("expected empty path to resolve to the mask itself")
	}
}

func TestMaskAt_AllowShortCircuits(t *testing.T) {
	m := ParseMask(map[string]any{"a": true})
	if !m.At("a.b.c.d").IsAllow() {
		t.Error("expected full access to imply access to all descendants")
	}
}

func TestMaskAt_WildcardFallback(t *testing.T) {
	m := ParseMask(map[string]any{
		"explicit": false,
		"_":        true,
	})
	if !m.At("anything").IsAllow() {
		t.Error("expected wildcard to cover unlisted keys")
	}
	if !m.At("explicit").IsDeny() {
		t.Error("expected explicit key to take precedence over wildcard")
	}
}

func TestMaskAt_DescendingIntoRangeDenies(t *testing.T) {
	m := ParseMask(map[string]any{"x": map[string]any{"grantNumber": true, "min": 0, "max": 5}})
	if !m.At("x").IsRange() {
		t.Error("expected x to resolve to the range leaf")
	}
	if !m.At("x.y").IsDeny() {
		t.Error("expected descent into a range leaf to deny")
	}
}

func TestMaskAt_MissingKeyDenies(t *testing.T) {
	m := ParseMask(map[string]any{"a": true})
	if !m.At("b").IsDeny() {
		t.Error("expected missing key with no wildcard to deny")
	}
}

func TestNormalizeNumbers_NumericLeaves(t *testing.T) {
	raw := map[string]any{
		"energy": 50,
		"nested": map[string]any{"level": 3.5},
		"name":   true,
		"note":   "text",
	}
	normalized := NormalizeGrant(raw)

	leaf, ok := normalized["energy"].(map[string]any)
	if !ok {
		t.Fatalf("expected energy to become a range leaf, got %T", normalized["energy"])
	}
	if leaf["grantNumber"] != true || leaf["min"] != float64(50) || leaf["max"] != float64(50) {
		t.Errorf("expected min=max=50 leaf, got %v", leaf)
	}

	nested := normalized["nested"].(map[string]any)
	inner := nested["level"].(map[string]any)
	if inner["min"] != 3.5 || inner["max"] != 3.5 {
		t.Errorf("expected nested leaf min=max=3.5, got %v", inner)
	}

	if normalized["name"] != true {
		t.Error("expected booleans to pass through unchanged")
	}
	if normalized["note"] != "text" {
		t.Error("expected non-numeric scalars to pass through unchanged")
	}
}

func TestNormalizeNumbers_ExistingRangeUntouched(t *testing.T) {
	raw := map[string]any{"x": map[string]any{"grantNumber": true, "min": 0, "max": 5}}
	normalized := NormalizeGrant(raw)
	leaf := normalized["x"].(map[string]any)
	if leaf["min"] != 0 || leaf["max"] != 5 {
		t.Errorf("expected existing range leaf untouched, got %v", leaf)
	}
}

func TestNormalizeNumbers_DoesNotMutateInput(t *testing.T) {
	raw := map[string]any{"energy": 50}
	NormalizeGrant(raw)
	if raw["energy"] != 50 {
		t.Errorf("expected input untouched, got %v", raw["energy"])
	}
}

func TestMaskClone_Independent(t *testing.T) {
	m := ParseMask(map[string]any{"a": map[string]any{"b": true}})
	clone := m.Clone()
	if clone == m {
		t.Fatal("expected a fresh value")
	}
	if !clone.At("a.b").IsAllow() {
		t.Error("expected clone to resolve identically")
	}
	// Mutating the clone's internals must not reach the original.
	clone.entries["a"] = Deny()
	if !m.At("a.b").IsAllow() {
		t.Error("expected original to be unaffected by clone mutation")
	}
}
