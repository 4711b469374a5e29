package grid

import "slices"

// AddToSection trims input and places the resulting lines in a section.
//
// Lines are placed in the order the trimmer produced them, next to the
// divider for minus and after the last line for plus. When the section runs
// out of room, the line that did not fit and every line after it go to the
// trimmer's Back, and its result is returned in a *NoSpaceError. Lines placed
// before the failure stay placed.
func AddToSection[In, Out any](p *Process, input In, t Trimmer[In, Out], side Side) error {
	return insert(p, input, t, side, -1)
}

// AddToSectionLines adds several inputs to a section, returning one result
// per input in input order. A failed input does not stop later ones.
//
// Content added in one call reads top to bottom on either side. On the minus
// side the inputs are handled last first, each slotted above the ones already
// handled, so on overflow the inputs nearest the divider are the ones kept.
func AddToSectionLines[In, Out any](p *Process, inputs []In, t Trimmer[In, Out], side Side) []error {
	errs := make([]error, len(inputs))
	if side == Minus {
		base := len(p.minus)
		for i := len(inputs) - 1; i >= 0; i-- {
			errs[i] = insert(p, inputs[i], t, side, base)
		}
		return errs
	}
	for i, in := range inputs {
		errs[i] = insert(p, in, t, side, -1)
	}
	return errs
}

// Add is AddToSection for string trimmers.
func (p *Process) Add(input string, t Trimmer[string, string], side Side) error {
	return AddToSection(p, input, t, side)
}

// AddLines is AddToSectionLines for string trimmers.
func (p *Process) AddLines(inputs []string, t Trimmer[string, string], side Side) []error {
	return AddToSectionLines(p, inputs, t, side)
}

// insert places the trimmed lines of one input starting at index at of the
// section, or appends them when at is negative.
func insert[In, Out any](p *Process, input In, t Trimmer[In, Out], side Side, at int) error {
	lines := t.Trim(input, p, side)
	for i, line := range lines {
		pos := at + i
		if at < 0 {
			pos = p.Len(side)
		}
		if !p.place(side, pos, line) {
			rest := slices.Clone(lines[i:])
			return &NoSpaceError[Out]{Side: side, Rest: t.Back(rest, p, side)}
		}
	}
	return nil
}
