package draw

import (
	"github.com/charmbracelet/x/ansi"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Compile-time checks that Screen implements both handler kinds
var (
	_ Handler     = (*Screen)(nil)
	_ SafeHandler = (*Screen)(nil)
)

// Screen draws actions onto a tcell screen.
// Cells outside the screen are dropped by tcell, so drawing never fails.
// Call Show on the underlying screen to flush.
type Screen struct {
	screen tcell.Screen
	style  tcell.Style
	x, y   int
}

// NewScreen wraps the provided screen, drawing with the default style.
func NewScreen(screen tcell.Screen) *Screen {
	return &Screen{screen: screen, style: tcell.StyleDefault}
}

// SetStyle sets the style used for subsequent prints.
func (s *Screen) SetStyle(style tcell.Style) {
	s.style = style
}

// Underlying exposes the wrapped tcell.Screen.
func (s *Screen) Underlying() tcell.Screen {
	return s.screen
}

// Handle implements Handler. It never fails.
func (s *Screen) Handle(a Action) error {
	s.SafeHandle(a)
	return nil
}

// SafeHandle implements SafeHandler.
func (s *Screen) SafeHandle(a Action) {
	switch a.Kind {
	case KindMoveTo:
		s.x, s.y = a.X, a.Y
	case KindPrint:
		for _, r := range ansi.Strip(a.Text) {
			w := runewidth.RuneWidth(r)
			if w == 0 {
				continue
			}
			s.screen.SetContent(s.x, s.y, r, nil, s.style)
			s.x += w
		}
	}
}
