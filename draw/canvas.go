package draw

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Compile-time check that Canvas implements Handler
var _ Handler = (*Canvas)(nil)

// wideTail marks the second cell of a double-width rune.
const wideTail rune = -1

// Canvas is an in-memory cell grid that actions are composed onto.
// Text is stored without ANSI codes; wide runes take two cells.
type Canvas struct {
	width, height int
	cells         [][]rune
	x, y          int
	positioned    bool
}

// NewCanvas creates a blank canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		width:  max(width, 0),
		height: max(height, 0),
	}
	c.cells = make([][]rune, c.height)
	for y := range c.cells {
		c.cells[y] = make([]rune, c.width)
	}
	c.Clear()
	return c
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Clear blanks every cell and forgets the cursor.
func (c *Canvas) Clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = ' '
		}
	}
	c.positioned = false
}

// Handle implements Handler.
// Moves outside the canvas fail with ErrOutOfBounds; text running past the
// right edge is clipped.
func (c *Canvas) Handle(a Action) error {
	switch a.Kind {
	case KindMoveTo:
		if a.X < 0 || a.Y < 0 || a.X > c.width || a.Y >= c.height {
			return fmt.Errorf("move to (%d,%d) on %dx%d canvas: %w", a.X, a.Y, c.width, c.height, ErrOutOfBounds)
		}
		c.x, c.y, c.positioned = a.X, a.Y, true
	case KindPrint:
		if !c.positioned {
			return ErrNoPosition
		}
		c.put(a.Text)
	}
	return nil
}

func (c *Canvas) put(s string) {
	row := c.cells[c.y]
	for _, r := range ansi.Strip(s) {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if c.x+w > c.width {
			c.x = c.width
			return
		}
		row[c.x] = r
		if w == 2 {
			row[c.x+1] = wideTail
		}
		c.x += w
	}
}

// Line returns the text of row y, or "" if y is outside the canvas.
func (c *Canvas) Line(y int) string {
	if y < 0 || y >= c.height {
		return ""
	}
	var b strings.Builder
	b.Grow(c.width)
	for _, r := range c.cells[y] {
		if r != wideTail {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// View returns all rows joined with newlines.
func (c *Canvas) View() string {
	lines := make([]string, c.height)
	for y := range lines {
		lines[y] = c.Line(y)
	}
	return strings.Join(lines, "\n")
}
