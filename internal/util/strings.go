// Package util provides shared utility functions used across the codebase.
package util

// Truncate shortens a string to maxLen runes, replacing the tail with an
// ellipsis when it does not fit. Widths are counted in runes, which is
// adequate for the column layouts the tracker renders.
func Truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-1]) + "…"
}
