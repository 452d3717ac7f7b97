package report

import (
	"fmt"
	"unicode/utf8"
)

// formatMoney renders a dollar amount with K/M suffixes at the
// thousand and million thresholds, matching what the red flags and
// detail strings display.
func formatMoney(n float64) string {
	switch {
	case n >= 1e6:
		return fmt.Sprintf("$%.1fM", n/1e6)
	case n >= 1e3:
		return fmt.Sprintf("$%.0fK", n/1e3)
	default:
		return fmt.Sprintf("$%.0f", n)
	}
}

// truncate shortens s to at most n bytes without splitting a rune.
// Descriptions in merged views are held to a fixed display width.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
