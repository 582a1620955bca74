// Package stringutil provides common string manipulation utilities.
package stringutil

import "strings"

// NormalizeID lowercases and trims an identifier for case-insensitive
// catalog lookups. Identifiers in the knowledge store are stored in this
// normalized form, so normalizing the caller's input is all that is needed
// for lookups to be case-insensitive.
func NormalizeID(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ContainsFold reports whether substr occurs within s, ignoring case.
//
// Example:
//
//	ContainsFold("Dr. John Smith", "smith") returns true
//	ContainsFold("Beginner", "ADVANCED") returns false
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// IsBlank reports whether s is empty or contains only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
