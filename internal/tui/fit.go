package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// fit truncates s to width display cells, marking the cut with an ellipsis.
func fit(s string, width int) string {
	if width <= 0 {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// pad right-pads s with spaces to width display cells.
func pad(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
