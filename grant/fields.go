package grant

import (
	"sort"

	"github.com/kbukum/grantkit/errors"
)

// CheckFields resolves the mask at path and verifies that every field
// present in obj, recursively, is permitted by it. The first offending field
// is named in the returned denial. A nil obj is a caller error.
func (g *Grant) CheckFields(path string, obj map[string]any) error {
	return g.CheckFieldsMask(g.mask.At(path), obj)
}

// CheckFieldsMask verifies obj directly against a mask value, for callers
// holding a mask rather than a path into the grant.
func (g *Grant) CheckFieldsMask(m *Mask, obj map[string]any) error {
	if obj == nil {
		return errors.InvalidArgument("object to check must be a non-nil map")
	}
	return g.checkFields(m, obj, "")
}

func (g *Grant) checkFields(m *Mask, obj map[string]any, prefix string) error {
	if m.IsAllow() {
		return nil
	}
	for _, name := range sortedKeys(obj) {
		path := JoinPath(prefix, name)
		child := m.Field(name)
		if child == nil {
			child = m.Wildcard()
		}
		if nested, ok := obj[name].(map[string]any); ok {
			if child.IsAllow() {
				continue
			}
			if !child.IsFields() {
				return errors.FieldNotGranted(path, g.target, g.match)
			}
			if err := g.checkFields(child, nested, path); err != nil {
				return err
			}
			continue
		}
		// Scalar access requires an exact Allow; a structured or numeric
		// mask at a scalar position is a deny.
		if !child.IsAllow() {
			return errors.FieldNotGranted(path, g.target, g.match)
		}
	}
	return nil
}

// sortedKeys keeps the "first offending field" deterministic.
func sortedKeys(obj map[string]any) []string {
	keys := make([]string, 0, len(obj))
	for name := range obj {
		keys = append(keys, name)
	}
	sort.Strings(keys)
	return keys
}
