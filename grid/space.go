package grid

// SplitOption limits how much space SplitFreeSpace gives away.
type SplitOption func(*splitConfig)

type splitConfig struct {
	minLeft  int
	maxTaken int
	capped   bool
}

// MinLeft keeps at least n rows in the section, used or not.
func MinLeft(n int) SplitOption {
	return func(c *splitConfig) { c.minLeft = n }
}

// MaxTaken gives away at most n rows.
func MaxTaken(n int) SplitOption {
	return func(c *splitConfig) {
		c.maxTaken = max(n, 0)
		c.capped = true
	}
}

// SplitFreeSpace gives up unused rows of a section at its outer edge and
// returns them as a new full-width viewport. Minus gives up rows at the top,
// plus at the bottom; the divider stays on the same screen row.
// It returns false and leaves the process unchanged when nothing can be taken.
func (p *Process) SplitFreeSpace(side Side, opts ...SplitOption) (Viewport, bool) {
	var cfg splitConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	capacity := p.divider
	if side == Plus {
		capacity = p.Height() - p.divider
	}
	occupied := max(p.Len(side), cfg.minLeft)
	taken := max(capacity-occupied, 0)
	if cfg.capped {
		taken = min(taken, cfg.maxTaken)
	}

	p.logger.Debug("split free space",
		"side", side,
		"bounds", p.Viewport(),
		"divider", p.divider,
		"capacity", capacity,
		"occupied", occupied,
		"taken", taken,
	)

	if taken == 0 {
		return Viewport{}, false
	}

	var freed Viewport
	switch side {
	case Minus:
		freed = Viewport{StartX: p.startX, StartY: p.startY, EndX: p.endX, EndY: p.startY + taken}
		p.startY += taken
		p.divider -= taken
	case Plus:
		p.endY -= taken
		freed = Viewport{StartX: p.startX, StartY: p.endY, EndX: p.endX, EndY: p.endY + taken}
	}
	p.resetBlank()
	return freed, true
}

// Extend absorbs a viewport of the same width lying directly above or below
// the process. Rows added below go to the plus section, rows added above to
// the minus section. An incompatible viewport is handed back unchanged with
// ok set to false.
func (p *Process) Extend(v Viewport) (rest Viewport, ok bool) {
	if !v.Valid() || v.StartX != p.startX || v.EndX != p.endX {
		return v, false
	}
	switch {
	case v.StartY == p.endY:
		p.endY = v.EndY
	case v.EndY == p.startY:
		p.startY = v.StartY
		p.divider += v.Height()
	default:
		return v, false
	}
	p.resetBlank()
	p.logger.Debug("extended", "absorbed", v, "bounds", p.Viewport(), "divider", p.divider)
	return Viewport{}, true
}
