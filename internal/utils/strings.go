package utils

import "strings"

// NormalizeCity lowercases and trims a city name; catalog keys and the
// engine's visited set both use this form.
func NormalizeCity(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// TitleCity renders a normalized city name for display ("new york" -> "New York").
func TitleCity(s string) string {
	fields := strings.Fields(strings.TrimSpace(s))
	for i, f := range fields {
		fields[i] = strings.ToUpper(f[:1]) + f[1:]
	}
	return strings.Join(fields, " ")
}
