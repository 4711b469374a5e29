package grid

import (
	"fmt"

	"github.com/drake/gridui/draw"
)

// Actions returns the draw actions for the whole process, top to bottom:
// a move and a print for every row from StartY to EndY. Rows without
// content are printed blank so stale output is overwritten.
func (p *Process) Actions() []draw.Action {
	actions := make([]draw.Action, 0, 2*p.Height())
	row := func(y int, s string) {
		actions = append(actions, draw.MoveTo(p.startX, y), draw.Print(s))
	}

	divider := p.startY + p.divider
	top := divider - len(p.minus)

	for y := p.startY; y < top; y++ {
		row(y, p.blank)
	}
	for i, line := range p.minus {
		row(top+i, line.Content)
	}
	for i, line := range p.plus {
		row(divider+i, line.Content)
	}
	for y := divider + len(p.plus); y < p.endY; y++ {
		row(y, p.blank)
	}
	return actions
}

// Print feeds the actions to h, stopping at the first error.
func (p *Process) Print(h draw.Handler) error {
	for _, a := range p.Actions() {
		if err := h.Handle(a); err != nil {
			return fmt.Errorf("print %v: %w", a, err)
		}
	}
	return nil
}

// PrintSafe feeds the actions to a handler that cannot fail.
func (p *Process) PrintSafe(h draw.SafeHandler) {
	for _, a := range p.Actions() {
		h.SafeHandle(a)
	}
}
