package utils

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// TruncateString truncates plain text to the given cell width, respecting
// wide runes.
func TruncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "")
}

// TruncateWithTail truncates plain text to width cells and marks the cut
// with an ellipsis.
func TruncateWithTail(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// PadRight pads plain text with spaces to exactly width cells, truncating
// if it is longer.
func PadRight(s string, width int) string {
	return runewidth.FillRight(TruncateString(s, width), width)
}

// CellWidth returns the display width of plain text.
func CellWidth(s string) int {
	return runewidth.StringWidth(s)
}
