package util

import "strings"

// LastField returns the last whitespace-separated field of s, or "" if s
// has no fields.
func LastField(s string) string {
	f := strings.Fields(s)
	if len(f) == 0 {
		return ""
	}
	return f[len(f)-1]
}

// FieldsFrom returns the fields of s starting at index n, joined by single
// spaces. Returns "" when s has n or fewer fields.
func FieldsFrom(s string, n int) string {
	f := strings.Fields(s)
	if len(f) <= n {
		return ""
	}
	return strings.Join(f[n:], " ")
}

// ValueOrDash returns s, or "-" when s is empty. Used for table cells.
func ValueOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
