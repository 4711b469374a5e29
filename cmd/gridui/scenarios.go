package main

import "github.com/drake/gridui/config"

// scenarios are the built-in layouts selectable with --scenario.
var scenarios = map[string]func() *config.Layout{
	"default": config.Default,

	// A wrapped log with a help line underneath that gives its spare row
	// to the log.
	"stacked": func() *config.Layout {
		return &config.Layout{
			Width:  40,
			Height: 10,
			Panels: []config.Panel{
				{
					Name:    "log",
					Rect:    [4]int{0, 0, 40, 8},
					Divider: "end",
					Trim:    "wrap",
					Minus:   []string{"Older lines sit above the divider and newer ones below it."},
					Feed:    true,
				},
				{
					Name:    "help",
					Rect:    [4]int{0, 8, 40, 10},
					Divider: "end",
					Trim:    "truncate",
					Minus:   []string{"i type  enter feed  s/S shove  c clear  q quit"},
					Donate:  "minus",
					To:      "log",
				},
			},
		}
	},

	// One panel split down the middle.
	"single": func() *config.Layout {
		return &config.Layout{
			Width:  40,
			Height: 6,
			Panels: []config.Panel{
				{
					Name:    "main",
					Rect:    [4]int{0, 0, 40, 6},
					Divider: "halfway",
					Trim:    "truncate",
					Minus:   []string{"minus grows up"},
					Plus:    []string{"plus grows down"},
					Feed:    true,
				},
			},
		}
	},
}
