package draw

import (
	"io"

	"github.com/charmbracelet/x/ansi"
)

// Compile-time check that Terminal implements Handler
var _ Handler = (*Terminal)(nil)

// Terminal writes actions to an ANSI terminal stream.
// Coordinates are zero-based; the terminal's one-based CUP is applied on write.
type Terminal struct {
	w          io.Writer
	positioned bool
}

// NewTerminal creates a terminal sink writing to w.
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w}
}

// Handle implements Handler. Write errors are returned as-is.
func (t *Terminal) Handle(a Action) error {
	switch a.Kind {
	case KindMoveTo:
		if a.X < 0 || a.Y < 0 {
			return ErrOutOfBounds
		}
		if _, err := io.WriteString(t.w, ansi.CursorPosition(a.X+1, a.Y+1)); err != nil {
			return err
		}
		t.positioned = true
	case KindPrint:
		if !t.positioned {
			return ErrNoPosition
		}
		if _, err := io.WriteString(t.w, a.Text); err != nil {
			return err
		}
	}
	return nil
}
