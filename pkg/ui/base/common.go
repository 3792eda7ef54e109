package base

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PadString pads a string to the specified display width with spaces
func PadString(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// TruncateString truncates a string to maxWidth bytes with ellipsis
func TruncateString(s string, maxWidth int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= maxWidth {
		return s
	}
	if maxWidth < 3 {
		return s[:maxWidth]
	}
	return s[:maxWidth-3] + "..."
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
