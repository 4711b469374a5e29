// Package trim provides trimming policies that turn text into fixed-width
// lines for a grid process.
package trim

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/drake/gridui/grid"
	"github.com/drake/gridui/text"
)

// Compile-time checks
var (
	_ grid.Trimmer[string, string] = Ignore{}
	_ grid.Trimmer[string, string] = Truncate{}
	_ grid.Trimmer[string, string] = Wrap{}
)

// Ignore passes input through as a single line, untouched.
// Text wider than the process is the caller's problem.
type Ignore struct{}

// Trim implements grid.Trimmer.
func (Ignore) Trim(input string, _ grid.Bounds, _ grid.Side) []text.Line {
	return []text.Line{{Content: input}}
}

// Back implements grid.Trimmer.
func (Ignore) Back(rest []text.Line, _ grid.Bounds, _ grid.Side) string {
	return strings.Join(text.Contents(rest), "\n")
}

// Truncate cuts input to the process width and pads it to fill the row.
type Truncate struct {
	Tail string // Appended when text is cut, e.g. "…"
}

// Trim implements grid.Trimmer.
func (t Truncate) Trim(input string, b grid.Bounds, _ grid.Side) []text.Line {
	w := b.Width()
	if w <= 0 {
		return []text.Line{{}}
	}
	line := ansi.Truncate(firstLine(input), w, t.Tail)
	return []text.Line{{Content: text.Pad(line, w)}}
}

// Back implements grid.Trimmer.
func (Truncate) Back(rest []text.Line, _ grid.Bounds, _ grid.Side) string {
	return strings.Join(unpadded(rest), "\n")
}

// Wrap word-wraps input to the process width, breaking words that are too
// long for a row. Embedded newlines start new rows.
type Wrap struct{}

// Trim implements grid.Trimmer.
func (Wrap) Trim(input string, b grid.Bounds, _ grid.Side) []text.Line {
	w := b.Width()
	if w <= 0 {
		return []text.Line{{}}
	}
	parts := strings.Split(ansi.Wrap(input, w, ""), "\n")
	lines := make([]text.Line, len(parts))
	for i, part := range parts {
		lines[i] = text.Line{Content: text.Pad(strings.TrimRight(part, " "), w), Index: i}
	}
	return lines
}

// Back implements grid.Trimmer. It returns the unplaced words re-joined into
// a single logical line.
func (Wrap) Back(rest []text.Line, _ grid.Bounds, _ grid.Side) string {
	return strings.Join(strings.Fields(strings.Join(text.Contents(rest), " ")), " ")
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func unpadded(lines []text.Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = strings.TrimRight(l.Content, " ")
	}
	return out
}
