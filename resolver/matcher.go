package resolver

import "strings"

// MatchTarget checks if a rule's target pattern matches a requested target.
// Patterns use a "type:qualifier" format with wildcards:
//
//   - "*" and "*:*"     match everything
//   - "structure:*"     matches "structure:spawn", "structure:tower", etc.
//   - "*:spawn"         matches "structure:spawn", "npc:spawn", etc.
//   - "structure:spawn" matches only "structure:spawn"
//
// A pattern without ":" matches a target without ":" as a plain string with
// wildcard support; mixed formats never match via segments.
func MatchTarget(pattern, target string) bool {
	if pattern == target || pattern == "*" || pattern == "*:*" {
		return true
	}

	patParts := strings.SplitN(pattern, ":", 2)
	targetParts := strings.SplitN(target, ":", 2)

	if len(patParts) != len(targetParts) {
		return matchSegment(pattern, target)
	}

	if len(patParts) == 1 {
		return matchSegment(pattern, target)
	}

	return matchSegment(patParts[0], targetParts[0]) && matchSegment(patParts[1], targetParts[1])
}

// MatchAnyTarget returns true if any of the patterns match the target.
func MatchAnyTarget(patterns []string, target string) bool {
	for _, p := range patterns {
		if MatchTarget(p, target) {
			return true
		}
	}
	return false
}

// matchSegment compares two strings where "*" matches anything.
func matchSegment(pattern, value string) bool {
	return pattern == "*" || pattern == value
}
