package grid

import (
	"errors"
	"fmt"

	"github.com/drake/gridui/text"
)

// ErrNoSpace matches every NoSpaceError via errors.Is.
var ErrNoSpace = errors.New("no space left in section")

// Bounds is the read-only view of a process that trimmers receive.
type Bounds interface {
	Width() int
	Height() int
	StartX() int
	StartY() int
	EndX() int
	EndY() int
}

// Trimmer converts logical input into display lines and decides what to
// report when some of those lines do not fit.
type Trimmer[In, Out any] interface {
	// Trim produces the lines for one input, in display order.
	Trim(input In, b Bounds, side Side) []text.Line

	// Back builds the overflow payload from the lines that were not placed:
	// the one that failed followed by every line after it.
	Back(rest []text.Line, b Bounds, side Side) Out
}

// NoSpaceError reports that a section filled up before all lines of an
// input were placed. Rest is the trimmer's overflow payload.
type NoSpaceError[T any] struct {
	Side Side
	Rest T
}

func (e *NoSpaceError[T]) Error() string {
	return fmt.Sprintf("no space left in %s section", e.Side)
}

// Is reports whether target is ErrNoSpace.
func (e *NoSpaceError[T]) Is(target error) bool {
	return target == ErrNoSpace
}
