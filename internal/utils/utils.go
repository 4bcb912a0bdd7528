// internal/utils/utils.go

// Package utils provides logging and small string helpers shared by the
// enrichment and export layers.
package utils

// Truncate shortens s to at most max runes, appending "..." when
// anything was cut. Multi-byte text is never split mid-rune.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
