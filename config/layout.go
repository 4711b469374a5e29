package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/drake/gridui/grid"
)

// ErrInvalidLayout wraps every validation failure reported by Parse.
var ErrInvalidLayout = errors.New("invalid layout")

// TrimLuaPrefix marks a trim setting that names a Lua script.
const TrimLuaPrefix = "lua:"

// Layout describes a screen of panels.
type Layout struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Panels []Panel `yaml:"panels"`
}

// Panel is one rectangular region of the screen.
type Panel struct {
	Name    string   `yaml:"name"`
	Rect    [4]int   `yaml:"rect"` // startX, startY, endX, endY
	Divider string   `yaml:"divider,omitempty"`
	Trim    string   `yaml:"trim,omitempty"`
	Minus   []string `yaml:"minus,omitempty"`
	Plus    []string `yaml:"plus,omitempty"`

	// Donate names the side whose unused rows are handed to the panel To
	// once the initial lines are placed. Keep rows stay behind.
	Donate string `yaml:"donate,omitempty"`
	To     string `yaml:"to,omitempty"`
	Keep   int    `yaml:"keep,omitempty"`

	// Feed marks the panel that receives streamed input.
	Feed bool `yaml:"feed,omitempty"`
}

// Viewport returns the panel rectangle.
func (p Panel) Viewport() grid.Viewport {
	return grid.NewViewport(p.Rect[0], p.Rect[1], p.Rect[2], p.Rect[3])
}

// DividerPolicy parses the divider setting. Validated layouts never fail.
func (p Panel) DividerPolicy() (grid.Divider, error) {
	return grid.ParseDivider(p.Divider)
}

// DonateSide parses the donate setting.
func (p Panel) DonateSide() (grid.Side, error) {
	return grid.ParseSide(p.Donate)
}

// Panel returns the panel with the given name.
func (l *Layout) Panel(name string) (Panel, bool) {
	for _, p := range l.Panels {
		if p.Name == name {
			return p, true
		}
	}
	return Panel{}, false
}

// Load reads and validates a layout file.
func Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Parse decodes and validates a YAML layout.
func Parse(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLayout, err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Validate checks the layout for unusable settings.
func (l *Layout) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidLayout, l.Width, l.Height)
	}
	if len(l.Panels) == 0 {
		return fmt.Errorf("%w: no panels", ErrInvalidLayout)
	}

	seen := make(map[string]bool, len(l.Panels))
	feeds := 0
	for _, p := range l.Panels {
		if p.Name == "" {
			return fmt.Errorf("%w: panel without a name", ErrInvalidLayout)
		}
		if seen[p.Name] {
			return fmt.Errorf("%w: panel %q defined twice", ErrInvalidLayout, p.Name)
		}
		seen[p.Name] = true
		if err := l.validatePanel(p); err != nil {
			return fmt.Errorf("%w: panel %q: %w", ErrInvalidLayout, p.Name, err)
		}
		if p.Feed {
			feeds++
		}
	}
	if feeds > 1 {
		return fmt.Errorf("%w: %d panels marked feed", ErrInvalidLayout, feeds)
	}

	for _, p := range l.Panels {
		if p.Donate == "" {
			continue
		}
		if p.To == p.Name || !seen[p.To] {
			return fmt.Errorf("%w: panel %q: cannot donate to %q", ErrInvalidLayout, p.Name, p.To)
		}
	}
	return nil
}

func (l *Layout) validatePanel(p Panel) error {
	r := p.Rect
	v := grid.Viewport{StartX: r[0], StartY: r[1], EndX: r[2], EndY: r[3]}
	if !v.Valid() {
		return fmt.Errorf("bad rect %v", r)
	}
	if v.EndX > l.Width || v.EndY > l.Height {
		return fmt.Errorf("rect %v outside %dx%d screen", r, l.Width, l.Height)
	}
	if _, err := p.DividerPolicy(); err != nil {
		return err
	}
	if err := validTrim(p.Trim); err != nil {
		return err
	}
	if p.Donate != "" {
		if _, err := p.DonateSide(); err != nil {
			return err
		}
	}
	if p.Keep < 0 {
		return fmt.Errorf("negative keep %d", p.Keep)
	}
	return nil
}

func validTrim(name string) error {
	switch name {
	case "", "ignore", "truncate", "wrap":
		return nil
	}
	if path, ok := strings.CutPrefix(name, TrimLuaPrefix); ok && path != "" {
		return nil
	}
	return fmt.Errorf("unknown trim %q", name)
}

// Default returns the layout used when no layout file exists: a header and a
// footer that hand their unused rows to the body between them.
func Default() *Layout {
	return &Layout{
		Width:  60,
		Height: 12,
		Panels: []Panel{
			{
				Name:    "header",
				Rect:    [4]int{0, 0, 60, 3},
				Divider: "beginning",
				Trim:    "truncate",
				Plus:    []string{"gridui"},
				Donate:  "plus",
				To:      "body",
			},
			{
				Name:    "body",
				Rect:    [4]int{0, 3, 60, 10},
				Divider: "halfway",
				Trim:    "wrap",
				Minus:   []string{"Lines above the divider grow upward."},
				Plus:    []string{"Lines below the divider grow downward."},
				Feed:    true,
			},
			{
				Name:    "footer",
				Rect:    [4]int{0, 10, 60, 12},
				Divider: "end",
				Trim:    "truncate",
				Minus:   []string{"q quit  s shove minus  S shove plus  c clear"},
				Donate:  "minus",
				To:      "body",
			},
		},
	}
}
