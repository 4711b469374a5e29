// Package draw defines the draw instructions emitted by a grid process and
// the render drivers that consume them.
package draw

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPosition is returned by positional sinks when text is printed
	// before any cursor move.
	ErrNoPosition = errors.New("draw: print before move")

	// ErrOutOfBounds is returned when an action targets a cell outside the sink.
	ErrOutOfBounds = errors.New("draw: out of bounds")
)

// Kind identifies the type of a draw action.
type Kind int

const (
	KindMoveTo Kind = iota // Position the cursor
	KindPrint              // Print text at the cursor
)

func (k Kind) String() string {
	switch k {
	case KindMoveTo:
		return "move"
	case KindPrint:
		return "print"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Action is a single primitive output directive.
type Action struct {
	Kind Kind
	X, Y int    // Target cell for KindMoveTo
	Text string // Content for KindPrint
}

// MoveTo returns an action that positions the cursor at (x, y).
func MoveTo(x, y int) Action {
	return Action{Kind: KindMoveTo, X: x, Y: y}
}

// Print returns an action that prints text at the cursor.
func Print(text string) Action {
	return Action{Kind: KindPrint, Text: text}
}

func (a Action) String() string {
	if a.Kind == KindMoveTo {
		return fmt.Sprintf("move(%d,%d)", a.X, a.Y)
	}
	return fmt.Sprintf("print(%q)", a.Text)
}

// Handler consumes actions and may fail on any of them.
type Handler interface {
	Handle(a Action) error
}

// SafeHandler consumes actions and never fails.
type SafeHandler interface {
	SafeHandle(a Action)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(a Action) error

// Handle implements Handler.
func (f HandlerFunc) Handle(a Action) error {
	return f(a)
}

// Must wraps a fallible handler for use where an infallible one is required.
// A handler error is a broken contract and panics.
func Must(h Handler) SafeHandler {
	return mustHandler{h}
}

type mustHandler struct {
	h Handler
}

func (m mustHandler) SafeHandle(a Action) {
	if err := m.h.Handle(a); err != nil {
		panic(fmt.Sprintf("draw: safe handler failed on %v: %v", a, err))
	}
}
