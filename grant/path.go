package grant

import "strings"

// PathSeparator separates segments of a field path.
const PathSeparator = "."

// JoinPath joins a prefix and a key into a field path. An empty prefix
// yields the key unchanged.
func JoinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	if key == "" {
		return prefix
	}
	return prefix + PathSeparator + key
}

// At resolves the mask applicable at a dot-separated field path.
//
// Resolution walks one segment at a time: Allow short-circuits to Allow for
// any remaining path, Deny resolves to Deny, and a field map looks up the
// segment as an explicit key before falling back to its wildcard. An empty
// path resolves to the mask itself. A numeric-range leaf has no children, so
// descending into it resolves to Deny.
func (m *Mask) At(path string) *Mask {
	cur := m
	if path == "" {
		if cur == nil {
			return Deny()
		}
		return cur
	}
	for _, segment := range strings.Split(path, PathSeparator) {
		switch {
		case cur.IsAllow():
			return Allow()
		case !cur.IsFields():
			return Deny()
		}
		child, ok := cur.entries[segment]
		if !ok {
			child = cur.wildcard
		}
		if child == nil {
			return Deny()
		}
		cur = child
	}
	return cur
}
