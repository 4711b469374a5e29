package text

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Line is one display-ready line produced by a trimmer.
type Line struct {
	Content string // Fixed-width text, may carry ANSI codes
	Index   int    // Position within the lines produced for one input
}

// NewLines turns strings into Lines, numbering them in order.
func NewLines(contents ...string) []Line {
	lines := make([]Line, len(contents))
	for i, c := range contents {
		lines[i] = Line{Content: c, Index: i}
	}
	return lines
}

// Contents returns the text of each line.
func Contents(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Content
	}
	return out
}

// StripANSI removes ANSI escape codes from a string.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// VisibleLen returns the visible display width of a string (excluding ANSI codes).
func VisibleLen(s string) int {
	return runewidth.StringWidth(StripANSI(s))
}

// Pad right-pads s with spaces up to the given visible width.
// Strings already at or past the width are returned unchanged.
func Pad(s string, width int) string {
	n := width - VisibleLen(s)
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(" ", n)
}
