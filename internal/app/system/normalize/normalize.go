// Package normalize provides the canonical string normalization used when
// user input is stored or compared. Use these helpers instead of scattered
// strings.ToLower and strings.TrimSpace calls.
package normalize

import "strings"

// Email normalizes an email address by trimming whitespace and converting
// to lowercase.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Text normalizes free-form text by trimming surrounding whitespace.
func Text(s string) string {
	return strings.TrimSpace(s)
}

// Status normalizes a post status value by trimming whitespace and
// converting to lowercase, so "Published" matches the stored form.
func Status(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// QueryParam normalizes a query parameter by trimming whitespace.
func QueryParam(s string) string {
	return strings.TrimSpace(s)
}
