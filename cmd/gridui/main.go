// gridui lays out text panels from a layout file and draws them.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/drake/gridui/config"
	"github.com/drake/gridui/debug"
	"github.com/drake/gridui/internal/board"
)

type options struct {
	layout   string
	mode     string
	scenario string
	input    string
	cache    int
}

func main() {
	var opts options
	pflag.StringVarP(&opts.layout, "layout", "l", "", "Layout file (default $"+config.EnvLayoutFile+" or "+config.LayoutFile()+" if present)")
	pflag.StringVarP(&opts.mode, "mode", "m", "plain", "Output mode: plain, ansi, screen, tui")
	pflag.StringVarP(&opts.scenario, "scenario", "s", "default", "Built-in layout used when no layout file is found (default, stacked, single)")
	pflag.StringVarP(&opts.input, "input", "i", "", "File of lines to feed, - for stdin")
	pflag.IntVar(&opts.cache, "cache", 0, "Cache this many trimmed inputs per panel, 0 disables")
	pflag.Parse()

	logger := debug.Logger()
	if err := run(opts, pflag.Args(), logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options, args []string, logger *slog.Logger) error {
	layout, dir, err := loadLayout(opts.layout, opts.scenario)
	if err != nil {
		return err
	}

	b, err := board.New(layout,
		board.WithLogger(logger),
		board.WithScriptDir(dir),
		board.WithCache(opts.cache),
	)
	if err != nil {
		return err
	}
	defer b.Close()

	// Positional arguments are fed before anything is drawn.
	feedAll(b, args, logger)

	switch opts.mode {
	case "plain":
		if err := feedInput(b, opts.input, logger); err != nil {
			return err
		}
		return renderPlain(b, os.Stdout)
	case "ansi":
		if err := feedInput(b, opts.input, logger); err != nil {
			return err
		}
		return renderANSI(b, os.Stdout)
	case "screen":
		if err := feedInput(b, opts.input, logger); err != nil {
			return err
		}
		return runScreen(b, logger)
	case "tui":
		return runTUI(b, opts.input, logger)
	default:
		return fmt.Errorf("unknown mode %q", opts.mode)
	}
}

// loadLayout picks the layout to draw: an explicit file, the user's layout
// file, or a built-in scenario, in that order. It also returns the directory
// Lua scripts are resolved against.
func loadLayout(path, scenario string) (*config.Layout, string, error) {
	if path != "" {
		l, err := config.Load(path)
		return l, filepath.Dir(path), err
	}

	file := config.LayoutFile()
	l, err := config.Load(file)
	switch {
	case err == nil:
		return l, filepath.Dir(file), nil
	case !errors.Is(err, fs.ErrNotExist):
		return nil, "", err
	}

	build, ok := scenarios[scenario]
	if !ok {
		return nil, "", fmt.Errorf("unknown scenario %q", scenario)
	}
	return build(), config.Dir(), nil
}

func feedAll(b *board.Board, lines []string, logger *slog.Logger) {
	for _, line := range lines {
		if err := b.Feed(line); err != nil {
			logger.Warn("line not fed", "line", line, "err", err)
		}
	}
}

// feedInput feeds every line of a file, or of stdin for "-".
func feedInput(b *board.Board, path string, logger *slog.Logger) error {
	if path == "" {
		return nil
	}
	r, closer, err := openInput(path)
	if err != nil {
		return err
	}
	defer closer()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		feedAll(b, []string{scanner.Text()}, logger)
	}
	return scanner.Err()
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
