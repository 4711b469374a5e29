// Package board lays out a screen of named panels described by a layout file.
package board

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/drake/gridui/config"
	"github.com/drake/gridui/draw"
	"github.com/drake/gridui/grid"
	"github.com/drake/gridui/trim"
)

// ErrNoFeed is returned by operations that need a feed panel when the layout
// does not mark one.
var ErrNoFeed = errors.New("layout has no feed panel")

// Option configures a Board.
type Option func(*Board)

// WithLogger sets the logger used by the board and its processes.
func WithLogger(l *slog.Logger) Option {
	return func(b *Board) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithCache wraps every panel trimmer in an LRU of the given size.
func WithCache(size int) Option {
	return func(b *Board) { b.cacheSize = size }
}

// WithScriptDir resolves relative Lua script paths against dir.
func WithScriptDir(dir string) Option {
	return func(b *Board) { b.scriptDir = dir }
}

type panel struct {
	name    string
	divider grid.Divider
	proc    *grid.Process
	trim    grid.Trimmer[string, string]
}

// Stats is a snapshot of one panel.
type Stats struct {
	Name      string
	Bounds    grid.Viewport
	Divider   int
	MinusUsed int
	MinusFree int
	PlusUsed  int
	PlusFree  int
	Feed      bool
	Fed       uint64
	Dropped   uint64
}

// Board owns one grid.Process per panel. It is not safe for concurrent use.
type Board struct {
	width, height int
	panels        []*panel
	byName        map[string]*panel
	feed          *panel
	scripts       []*trim.Script

	// Feed counters
	fed     uint64
	dropped uint64

	cacheSize int
	scriptDir string
	logger    *slog.Logger
}

// New builds the panels of a validated layout, places their initial lines
// and performs the configured donations in declaration order.
func New(l *config.Layout, opts ...Option) (*Board, error) {
	b := &Board{
		width:  l.Width,
		height: l.Height,
		byName: make(map[string]*panel, len(l.Panels)),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(b)
	}

	for _, cfg := range l.Panels {
		p, err := b.build(cfg)
		if err != nil {
			b.Close()
			return nil, fmt.Errorf("panel %q: %w", cfg.Name, err)
		}
		b.panels = append(b.panels, p)
		b.byName[p.name] = p
		if cfg.Feed {
			b.feed = p
		}
	}

	for _, cfg := range l.Panels {
		if cfg.Donate == "" {
			continue
		}
		if err := b.donate(cfg); err != nil {
			b.Close()
			return nil, fmt.Errorf("panel %q: %w", cfg.Name, err)
		}
	}
	return b, nil
}

func (b *Board) build(cfg config.Panel) (*panel, error) {
	d, err := cfg.DividerPolicy()
	if err != nil {
		return nil, err
	}
	tr, err := b.trimmer(cfg.Trim)
	if err != nil {
		return nil, err
	}

	logger := b.logger.With("panel", cfg.Name)
	p := &panel{
		name:    cfg.Name,
		divider: d,
		proc:    grid.NewProcess(cfg.Viewport(), d, grid.WithLogger(logger)),
		trim:    tr,
	}

	for _, side := range []grid.Side{grid.Minus, grid.Plus} {
		lines := cfg.Minus
		if side == grid.Plus {
			lines = cfg.Plus
		}
		for i, err := range p.proc.AddLines(lines, tr, side) {
			if err != nil {
				logger.Warn("initial line does not fit", "side", side, "item", i, "err", err)
			}
		}
	}
	return p, nil
}

// trimmer resolves a trim setting.
func (b *Board) trimmer(name string) (grid.Trimmer[string, string], error) {
	var tr grid.Trimmer[string, string]
	switch name {
	case "", "ignore":
		tr = trim.Ignore{}
	case "truncate":
		tr = trim.Truncate{}
	case "wrap":
		tr = trim.Wrap{}
	default:
		path, ok := strings.CutPrefix(name, config.TrimLuaPrefix)
		if !ok {
			return nil, fmt.Errorf("unknown trim %q", name)
		}
		if !filepath.IsAbs(path) && b.scriptDir != "" {
			path = filepath.Join(b.scriptDir, path)
		}
		s, err := trim.LoadScript(path)
		if err != nil {
			return nil, err
		}
		b.scripts = append(b.scripts, s)
		tr = s
	}
	if b.cacheSize > 0 {
		tr = trim.NewCached(tr, b.cacheSize)
	}
	return tr, nil
}

// donate moves unused rows from one panel to another. Space the receiver
// cannot take goes back to the donor.
func (b *Board) donate(cfg config.Panel) error {
	side, err := cfg.DonateSide()
	if err != nil {
		return err
	}
	donor, recv := b.byName[cfg.Name], b.byName[cfg.To]
	if recv == nil {
		return fmt.Errorf("no panel %q", cfg.To)
	}

	freed, ok := donor.proc.SplitFreeSpace(side, grid.MinLeft(cfg.Keep))
	if !ok {
		return nil
	}
	rest, ok := recv.proc.Extend(freed)
	if ok {
		b.logger.Debug("donated rows", "from", cfg.Name, "to", cfg.To, "rows", freed.Height())
		return nil
	}
	b.logger.Warn("receiver rejected rows", "from", cfg.Name, "to", cfg.To, "rows", rest)
	if _, ok := donor.proc.Extend(rest); !ok {
		return fmt.Errorf("could not take back %v", rest)
	}
	return nil
}

// Feed adds a line below the feed panel's divider. When the plus section is
// full the divider is shoved up into unused minus rows and the remainder is
// placed below what already fit. When that is not enough the plus section
// is cleared and the whole line is placed again. Whatever still does not fit
// is dropped and reported.
func (b *Board) Feed(line string) error {
	p := b.feed
	if p == nil {
		return ErrNoFeed
	}
	b.fed++

	err := p.proc.Add(line, p.trim, grid.Plus)
	var nse *grid.NoSpaceError[string]
	if !errors.As(err, &nse) {
		return err
	}
	p.proc.Shove(grid.Minus)
	err = p.proc.Add(nse.Rest, p.trim, grid.Plus)
	if !errors.As(err, &nse) {
		return err
	}

	// The head of the line goes with the cleared rows.
	p.proc.ClearSection(grid.Plus)
	if err = p.proc.Add(line, p.trim, grid.Plus); err != nil {
		b.dropped++
	}
	return err
}

// Shove moves the feed panel's divider toward side.
func (b *Board) Shove(side grid.Side) error {
	if b.feed == nil {
		return ErrNoFeed
	}
	b.feed.proc.Shove(side)
	return nil
}

// Clear empties the feed panel and puts its divider back where the layout
// placed it.
func (b *Board) Clear() error {
	if b.feed == nil {
		return ErrNoFeed
	}
	b.feed.proc.Clear(b.feed.divider)
	return nil
}

// Render prints every panel in layout order, stopping at the first error.
func (b *Board) Render(h draw.Handler) error {
	for _, p := range b.panels {
		if err := p.proc.Print(h); err != nil {
			return fmt.Errorf("panel %q: %w", p.name, err)
		}
	}
	return nil
}

// RenderSafe prints every panel to an infallible handler.
func (b *Board) RenderSafe(h draw.SafeHandler) {
	for _, p := range b.panels {
		p.proc.PrintSafe(h)
	}
}

// Size returns the screen size from the layout.
func (b *Board) Size() (width, height int) {
	return b.width, b.height
}

// Panel returns the process behind a named panel.
func (b *Board) Panel(name string) (*grid.Process, bool) {
	p, ok := b.byName[name]
	if !ok {
		return nil, false
	}
	return p.proc, true
}

// Stats returns one snapshot per panel in layout order. Feed counters are
// reported on the feed panel.
func (b *Board) Stats() []Stats {
	out := make([]Stats, 0, len(b.panels))
	for _, p := range b.panels {
		s := Stats{
			Name:      p.name,
			Bounds:    p.proc.Viewport(),
			Divider:   p.proc.Divider(),
			MinusUsed: p.proc.Len(grid.Minus),
			MinusFree: p.proc.Free(grid.Minus),
			PlusUsed:  p.proc.Len(grid.Plus),
			PlusFree:  p.proc.Free(grid.Plus),
		}
		if p == b.feed {
			s.Feed, s.Fed, s.Dropped = true, b.fed, b.dropped
		}
		out = append(out, s)
	}
	return out
}

// Close releases the Lua states of script trimmers.
func (b *Board) Close() {
	for _, s := range b.scripts {
		s.Close()
	}
	b.scripts = nil
}
