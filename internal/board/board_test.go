package board

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/drake/gridui/config"
	"github.com/drake/gridui/draw"
	"github.com/drake/gridui/grid"
)

func setupBoard(t *testing.T, l *config.Layout, opts ...Option) *Board {
	t.Helper()
	b, err := New(l, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(b.Close)
	return b
}

func feedLayout(panel config.Panel) *config.Layout {
	panel.Name = "log"
	panel.Feed = true
	return &config.Layout{Width: panel.Rect[2], Height: panel.Rect[3], Panels: []config.Panel{panel}}
}

func TestDefaultLayoutDonations(t *testing.T) {
	b := setupBoard(t, config.Default())

	want := map[string]struct {
		bounds  grid.Viewport
		divider int
	}{
		"header": {grid.NewViewport(0, 0, 60, 1), 0},
		"body":   {grid.NewViewport(0, 1, 60, 11), 5},
		"footer": {grid.NewViewport(0, 11, 60, 12), 1},
	}
	for _, s := range b.Stats() {
		w := want[s.Name]
		if s.Bounds != w.bounds || s.Divider != w.divider {
			t.Errorf("%s: got %v divider %d, want %v divider %d", s.Name, s.Bounds, s.Divider, w.bounds, w.divider)
		}
	}
}

func TestRenderDefaultLayout(t *testing.T) {
	b := setupBoard(t, config.Default())
	w, h := b.Size()
	canvas := draw.NewCanvas(w, h)
	if err := b.Render(canvas); err != nil {
		t.Fatalf("Render: %v", err)
	}

	rows := map[int]string{
		0:  "gridui",
		5:  "Lines above the divider grow upward.",
		6:  "Lines below the divider grow downward.",
		11: "q quit  s shove minus  S shove plus  c clear",
	}
	for y := 0; y < h; y++ {
		got := strings.TrimRight(canvas.Line(y), " ")
		if got != rows[y] {
			t.Errorf("row %d: got %q, want %q", y, got, rows[y])
		}
	}

	var rec draw.Recorder
	b.RenderSafe(&rec)
	if len(rec.Rows()) != h {
		t.Errorf("expected every row drawn once, got %d rows", len(rec.Rows()))
	}
}

func TestRenderReportsPanel(t *testing.T) {
	b := setupBoard(t, config.Default())
	boom := errors.New("boom")
	err := b.Render(draw.HandlerFunc(func(draw.Action) error { return boom }))
	if !errors.Is(err, boom) || !strings.Contains(err.Error(), `"header"`) {
		t.Errorf("expected error naming the first panel, got %v", err)
	}
}

func TestFeedShovesThenClears(t *testing.T) {
	b := setupBoard(t, feedLayout(config.Panel{Rect: [4]int{0, 0, 10, 4}, Divider: "halfway", Trim: "truncate"}))
	p, _ := b.Panel("log")

	for _, line := range []string{"a", "b", "c", "d"} {
		if err := b.Feed(line); err != nil {
			t.Fatalf("Feed(%q): %v", line, err)
		}
	}
	if p.Divider() != 0 || p.Len(grid.Plus) != 4 {
		t.Fatalf("expected the divider shoved to the top, got divider %d with %d lines", p.Divider(), p.Len(grid.Plus))
	}

	if err := b.Feed("e"); err != nil {
		t.Fatalf("Feed: %v", err)
	}
	if got := p.Lines(grid.Plus); len(got) != 1 || strings.TrimSpace(got[0]) != "e" {
		t.Errorf("expected a cleared section holding the new line, got %q", got)
	}

	s := b.Stats()[0]
	if s.Fed != 5 || s.Dropped != 0 {
		t.Errorf("unexpected counters %+v", s)
	}
}

func TestFeedDropsWhatNeverFits(t *testing.T) {
	b := setupBoard(t, feedLayout(config.Panel{Rect: [4]int{0, 0, 3, 1}, Trim: "wrap"}))
	err := b.Feed("aaa bbb ccc")

	var nse *grid.NoSpaceError[string]
	if !errors.As(err, &nse) || nse.Rest != "bbb ccc" {
		t.Fatalf("expected everything after the first row reported, got %v", err)
	}
	p, _ := b.Panel("log")
	if got := p.Lines(grid.Plus); len(got) != 1 || got[0] != "aaa" {
		t.Errorf("expected the line to start at its head, got %q", got)
	}
	if s := b.Stats()[0]; s.Dropped != 1 {
		t.Errorf("expected one drop, got %+v", s)
	}
}

func TestFeedClearKeepsLineHead(t *testing.T) {
	b := setupBoard(t, feedLayout(config.Panel{Rect: [4]int{0, 0, 3, 3}, Trim: "wrap"}))
	for _, line := range []string{"p1", "p2", "aaa bbb ccc"} {
		if err := b.Feed(line); err != nil {
			t.Fatalf("Feed(%q): %v", line, err)
		}
	}

	p, _ := b.Panel("log")
	got := p.Lines(grid.Plus)
	if len(got) != 3 || got[0] != "aaa" || got[1] != "bbb" || got[2] != "ccc" {
		t.Errorf("expected the whole line after clearing, got %q", got)
	}
	if s := b.Stats()[0]; s.Fed != 3 || s.Dropped != 0 {
		t.Errorf("unexpected counters %+v", s)
	}
}

func TestShoveAndClear(t *testing.T) {
	b := setupBoard(t, feedLayout(config.Panel{Rect: [4]int{0, 0, 10, 6}, Divider: "halfway", Trim: "truncate"}))
	p, _ := b.Panel("log")
	b.Feed("x")

	if err := b.Shove(grid.Plus); err != nil {
		t.Fatal(err)
	}
	if p.Divider() != 5 {
		t.Errorf("expected divider 5 after shoving plus, got %d", p.Divider())
	}
	if err := b.Clear(); err != nil {
		t.Fatal(err)
	}
	if p.Divider() != 3 || p.Len(grid.Plus) != 0 {
		t.Errorf("clear should restore the layout divider, got %d", p.Divider())
	}
}

func TestNoFeedPanel(t *testing.T) {
	l := &config.Layout{Width: 4, Height: 1, Panels: []config.Panel{{Name: "a", Rect: [4]int{0, 0, 4, 1}}}}
	b := setupBoard(t, l)
	if err := b.Feed("x"); !errors.Is(err, ErrNoFeed) {
		t.Errorf("expected ErrNoFeed, got %v", err)
	}
	if err := b.Shove(grid.Minus); !errors.Is(err, ErrNoFeed) {
		t.Errorf("expected ErrNoFeed, got %v", err)
	}
	if err := b.Clear(); !errors.Is(err, ErrNoFeed) {
		t.Errorf("expected ErrNoFeed, got %v", err)
	}
	if _, ok := b.Panel("b"); ok {
		t.Error("unexpected panel")
	}
}

func TestRejectedDonationReturnsToDonor(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	l := &config.Layout{
		Width:  20,
		Height: 2,
		Panels: []config.Panel{
			{Name: "left", Rect: [4]int{0, 0, 10, 2}, Donate: "plus", To: "right"},
			{Name: "right", Rect: [4]int{10, 0, 20, 2}},
		},
	}
	b := setupBoard(t, l, WithLogger(logger))

	left, _ := b.Panel("left")
	if left.Viewport() != grid.NewViewport(0, 0, 10, 2) {
		t.Errorf("donor should get its rows back, got %v", left.Viewport())
	}
	if !strings.Contains(buf.String(), "receiver rejected rows") {
		t.Errorf("expected a warning, got %q", buf.String())
	}
}

func TestDonationKeepsRows(t *testing.T) {
	l := &config.Layout{
		Width:  10,
		Height: 6,
		Panels: []config.Panel{
			{Name: "top", Rect: [4]int{0, 0, 10, 4}, Donate: "plus", To: "bottom", Keep: 3},
			{Name: "bottom", Rect: [4]int{0, 4, 10, 6}},
		},
	}
	b := setupBoard(t, l)
	top, _ := b.Panel("top")
	bottom, _ := b.Panel("bottom")
	if top.Height() != 3 || bottom.Viewport() != grid.NewViewport(0, 3, 10, 6) {
		t.Errorf("unexpected split: top %v bottom %v", top.Viewport(), bottom.Viewport())
	}
}

func TestLuaTrimmerFromScriptDir(t *testing.T) {
	dir := t.TempDir()
	script := `function trim(input, width) return string.upper(input) end`
	if err := os.WriteFile(filepath.Join(dir, "upper.lua"), []byte(script), 0o644); err != nil {
		t.Fatal(err)
	}
	l := feedLayout(config.Panel{Rect: [4]int{0, 0, 6, 2}, Trim: "lua:upper.lua", Plus: []string{"hello"}})
	b := setupBoard(t, l, WithScriptDir(dir), WithCache(8))

	p, _ := b.Panel("log")
	if got := p.Lines(grid.Plus); len(got) != 1 || got[0] != "HELLO " {
		t.Errorf("unexpected lines %q", got)
	}

	l.Panels[0].Trim = "lua:missing.lua"
	if _, err := New(l, WithScriptDir(dir)); err == nil || !strings.Contains(err.Error(), `"log"`) {
		t.Errorf("expected error naming the panel, got %v", err)
	}
}

func TestInitialOverflowIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	l := feedLayout(config.Panel{Rect: [4]int{0, 0, 4, 1}, Plus: []string{"a", "b"}})
	setupBoard(t, l, WithLogger(logger))
	if !strings.Contains(buf.String(), "initial line does not fit") {
		t.Errorf("expected overflow warning, got %q", buf.String())
	}
}
