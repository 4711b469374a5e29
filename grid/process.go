package grid

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/drake/gridui/text"
)

// Compile-time check that Process exposes its bounds to trimmers
var _ Bounds = (*Process)(nil)

// Process lays out text inside a viewport.
//
// Rows [start, start+divider) form the minus section and rows
// [start+divider, end) the plus section. Both sections are kept in display
// order: the minus run ends on the row above the divider, the plus run starts
// on the divider row. Invariants:
//
//	len(minus) <= divider
//	len(plus)  <= height - divider
//
// A Process is not safe for concurrent use.
type Process struct {
	startX, startY int
	endX, endY     int
	divider        int
	minus          []text.Line
	plus           []text.Line
	blank          string // One row of spaces, width() long
	logger         *slog.Logger
}

// Option configures a Process.
type Option func(*Process)

// WithLogger sets the logger used for debug records.
func WithLogger(l *slog.Logger) Option {
	return func(p *Process) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewProcess takes ownership of a viewport and places the divider. The
// viewport is clamped the way NewViewport clamps it, so inverted bounds give
// an empty process.
func NewProcess(v Viewport, d Divider, opts ...Option) *Process {
	v = NewViewport(v.StartX, v.StartY, v.EndX, v.EndY)
	p := &Process{
		startX: v.StartX,
		startY: v.StartY,
		endX:   v.EndX,
		endY:   v.EndY,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.divider = d.Offset(p.Height())
	p.resetBlank()
	return p
}

func (p *Process) resetBlank() {
	if len(p.blank) != p.Width() {
		p.blank = strings.Repeat(" ", p.Width())
	}
}

// Width returns the number of characters that fit on a line.
func (p *Process) Width() int { return p.endX - p.startX }

// Height returns the number of lines that fit in the process.
func (p *Process) Height() int { return p.endY - p.startY }

// StartX returns the first column.
func (p *Process) StartX() int { return p.startX }

// StartY returns the first row.
func (p *Process) StartY() int { return p.startY }

// EndX returns the column after the last one.
func (p *Process) EndX() int { return p.endX }

// EndY returns the row after the last one.
func (p *Process) EndY() int { return p.endY }

// Divider returns the divider offset, counted in rows from StartY.
func (p *Process) Divider() int { return p.divider }

// Viewport returns the current bounds as a standalone value.
func (p *Process) Viewport() Viewport {
	return Viewport{StartX: p.startX, StartY: p.startY, EndX: p.endX, EndY: p.endY}
}

// Len returns the number of lines placed in a section.
func (p *Process) Len(side Side) int {
	if side == Minus {
		return len(p.minus)
	}
	return len(p.plus)
}

// Free returns the number of unused rows in a section.
func (p *Process) Free(side Side) int {
	if side == Minus {
		return p.divider - len(p.minus)
	}
	return p.Height() - p.divider - len(p.plus)
}

// Lines returns the contents of a section in display order.
func (p *Process) Lines(side Side) []string {
	if side == Minus {
		return text.Contents(p.minus)
	}
	return text.Contents(p.plus)
}

// Clear discards all content and places the divider again against the
// current bounds.
func (p *Process) Clear(d Divider) {
	p.minus = nil
	p.plus = nil
	p.divider = d.Offset(p.Height())
	p.resetBlank()
}

// ClearSection discards the content of one section. Bounds and divider are
// left alone.
func (p *Process) ClearSection(side Side) {
	if side == Minus {
		p.minus = nil
	} else {
		p.plus = nil
	}
}

// Shove moves the divider toward a side, as far as that side's placed lines
// allow, handing its unused rows to the other side. No content is dropped.
func (p *Process) Shove(side Side) {
	switch side {
	case Minus:
		p.divider = min(p.divider, len(p.minus))
	case Plus:
		p.divider = max(p.divider, p.Height()-len(p.plus))
	}
}

// place inserts a line at index at of a section, if the section has room.
func (p *Process) place(side Side, at int, line text.Line) bool {
	if p.Free(side) <= 0 {
		return false
	}
	if side == Minus {
		p.minus = slices.Insert(p.minus, at, line)
	} else {
		p.plus = slices.Insert(p.plus, at, line)
	}
	return true
}
