package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/x/ansi"
	"github.com/gdamore/tcell/v2"

	"github.com/drake/gridui/draw"
	"github.com/drake/gridui/grid"
	"github.com/drake/gridui/internal/board"
)

// renderPlain draws the board on a canvas and writes it as plain rows.
func renderPlain(b *board.Board, w io.Writer) error {
	canvas := draw.NewCanvas(b.Size())
	if err := b.Render(canvas); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, canvas.View())
	return err
}

// renderANSI draws straight to a terminal with cursor positioning, then
// parks the cursor below the layout.
func renderANSI(b *board.Board, w io.Writer) error {
	if err := b.Render(draw.NewTerminal(w)); err != nil {
		return err
	}
	_, height := b.Size()
	_, err := io.WriteString(w, ansi.CursorPosition(1, height+1))
	return err
}

// runScreen draws the board with tcell and handles keys until quit.
func runScreen(b *board.Board, logger *slog.Logger) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()
	return screenLoop(b, s, logger)
}

// screenLoop redraws after every event. Key actions that fail are logged
// and the loop carries on.
func screenLoop(b *board.Board, s tcell.Screen, logger *slog.Logger) error {
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset))
	s.HideCursor()
	sink := draw.NewScreen(s)

	for {
		s.Clear()
		b.RenderSafe(sink)
		s.Show()

		switch ev := s.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			s.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				return nil
			}
			var err error
			switch ev.Rune() {
			case 'q':
				return nil
			case 's':
				err = b.Shove(grid.Minus)
			case 'S':
				err = b.Shove(grid.Plus)
			case 'c':
				err = b.Clear()
			}
			if err != nil {
				logger.Warn("key action failed", "key", string(ev.Rune()), "err", err)
			}
		}
	}
}
