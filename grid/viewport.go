// Package grid places lines of text inside a rectangular viewport split by a
// movable divider into two sections that grow toward each other.
//
// A Process owns one viewport. Text goes in through a Trimmer, which turns
// each logical input into fixed-width lines; rows can be given away to other
// consumers with SplitFreeSpace and taken back with Extend. Rendering turns
// the process into draw actions covering every row of its bounds.
package grid

import "fmt"

// Viewport is a rectangle of character cells.
// Start coordinates are inclusive, end coordinates exclusive.
type Viewport struct {
	StartX, StartY int
	EndX, EndY     int
}

// NewViewport creates a viewport, clamping negative starts to zero and
// ends that fall before their starts up to the start.
func NewViewport(startX, startY, endX, endY int) Viewport {
	startX = max(startX, 0)
	startY = max(startY, 0)
	return Viewport{
		StartX: startX,
		StartY: startY,
		EndX:   max(endX, startX),
		EndY:   max(endY, startY),
	}
}

// Width returns the number of columns.
func (v Viewport) Width() int {
	return v.EndX - v.StartX
}

// Height returns the number of rows.
func (v Viewport) Height() int {
	return v.EndY - v.StartY
}

// Valid reports whether the viewport satisfies its coordinate invariant.
func (v Viewport) Valid() bool {
	return v.StartX >= 0 && v.StartY >= 0 && v.StartX <= v.EndX && v.StartY <= v.EndY
}

func (v Viewport) String() string {
	return fmt.Sprintf("[%d,%d %d,%d)", v.StartX, v.StartY, v.EndX, v.EndY)
}
