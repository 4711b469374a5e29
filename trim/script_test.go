package trim

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/drake/gridui/grid"
	"github.com/drake/gridui/text"
)

const upperScript = `
function trim(input, width, side)
  local out = {}
  for word in string.gmatch(input, "%S+") do
    table.insert(out, string.upper(word))
  end
  return out
end

function back(lines, width, side)
  return side .. ":" .. #lines
end
`

// setupScript compiles a script and closes it when the test ends
func setupScript(t *testing.T, source string) *Script {
	t.Helper()
	s, err := NewScript("test.lua", source)
	if err != nil {
		t.Fatal("Failed to load script:", err)
	}
	t.Cleanup(s.Close)
	return s
}

func TestScriptTrimReturnsTable(t *testing.T) {
	s := setupScript(t, upperScript)
	lines := s.Trim("one two", bounds(4), grid.Plus)

	got := text.Contents(lines)
	if len(got) != 2 || got[0] != "ONE " || got[1] != "TWO " {
		t.Errorf("unexpected lines %q", got)
	}
	if lines[1].Index != 1 {
		t.Errorf("expected second line to have index 1, got %d", lines[1].Index)
	}
	if s.Err() != nil {
		t.Errorf("unexpected script error: %v", s.Err())
	}
}

func TestScriptTrimReturnsString(t *testing.T) {
	s := setupScript(t, `function trim(input, width) return input .. "!" end`)
	lines := s.Trim("abcdef", bounds(4), grid.Minus)
	if len(lines) != 1 || lines[0].Content != "abcd" {
		t.Errorf("expected truncated single line, got %+v", lines)
	}
}

func TestScriptBack(t *testing.T) {
	s := setupScript(t, upperScript)
	p := grid.NewProcess(grid.NewViewport(0, 0, 8, 3), grid.End)

	err := p.Add("a b c d e", s, grid.Minus)
	var nse *grid.NoSpaceError[string]
	if !errors.As(err, &nse) {
		t.Fatalf("expected NoSpaceError, got %v", err)
	}
	if nse.Rest != "minus:2" {
		t.Errorf("unexpected payload %q", nse.Rest)
	}
}

func TestScriptBackDefaultsToJoin(t *testing.T) {
	s := setupScript(t, `function trim(input) return {input} end`)
	if got := s.Back(text.NewLines("x", "y"), bounds(3), grid.Plus); got != "x\ny" {
		t.Errorf("unexpected back %q", got)
	}
}

func TestScriptRuntimeErrorBecomesLine(t *testing.T) {
	s := setupScript(t, `function trim(input) error("bad input") end`)
	lines := s.Trim("x", bounds(80), grid.Plus)
	if len(lines) != 1 || !strings.Contains(lines[0].Content, "bad input") {
		t.Errorf("expected error line, got %+v", lines)
	}
	if s.Err() == nil {
		t.Error("expected Err to report the failure")
	}
}

func TestNewScriptRequiresTrim(t *testing.T) {
	if _, err := NewScript("empty.lua", `x = 1`); !errors.Is(err, ErrNoTrimFunc) {
		t.Errorf("expected ErrNoTrimFunc, got %v", err)
	}
	if _, err := NewScript("broken.lua", `function (`); err == nil {
		t.Error("expected syntax error")
	}
}

func TestLoadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "upper.lua")
	if err := os.WriteFile(path, []byte(upperScript), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadScript(path)
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	defer s.Close()
	if lines := s.Trim("hi", bounds(2), grid.Plus); len(lines) != 1 || lines[0].Content != "HI" {
		t.Errorf("unexpected lines %+v", lines)
	}
	if _, err := LoadScript(filepath.Join(t.TempDir(), "missing.lua")); err == nil {
		t.Error("expected error for missing file")
	}
}
