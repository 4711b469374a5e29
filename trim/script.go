package trim

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/x/ansi"
	glua "github.com/yuin/gopher-lua"

	"github.com/drake/gridui/grid"
	"github.com/drake/gridui/text"
)

// Compile-time check that Script implements grid.Trimmer
var _ grid.Trimmer[string, string] = (*Script)(nil)

// ErrNoTrimFunc is returned when a script does not define a global trim function.
var ErrNoTrimFunc = errors.New("script does not define trim(input, width, side)")

// Script is a trimming policy written in Lua.
//
// The script must define
//
//	function trim(input, width, side) -> string | {string...}
//
// and may define
//
//	function back(lines, width, side) -> string
//
// where side is "minus" or "plus". Lines returned by trim are cut and padded
// to the width. Without back, unplaced lines are joined with newlines.
type Script struct {
	L    *glua.LState
	name string
	err  error
}

// NewScript compiles and runs source, which must define trim.
func NewScript(name, source string) (*Script, error) {
	L := glua.NewState()
	fn, err := L.Load(strings.NewReader(source), name)
	if err != nil {
		L.Close()
		return nil, err
	}
	L.Push(fn)
	if err := L.PCall(0, 0, nil); err != nil {
		L.Close()
		return nil, err
	}
	if _, ok := L.GetGlobal("trim").(*glua.LFunction); !ok {
		L.Close()
		return nil, fmt.Errorf("%s: %w", name, ErrNoTrimFunc)
	}
	return &Script{L: L, name: name}, nil
}

// LoadScript reads a Lua trimming script from disk.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewScript(filepath.Base(path), string(data))
}

// Close releases the Lua state.
func (s *Script) Close() {
	if s.L != nil {
		s.L.Close()
		s.L = nil
	}
}

// Err returns the last error raised by the script, if any.
// Trim reports failures as a single line, so callers check here.
func (s *Script) Err() error {
	return s.err
}

// Trim implements grid.Trimmer.
func (s *Script) Trim(input string, b grid.Bounds, side grid.Side) []text.Line {
	w := b.Width()
	ret, err := s.call("trim", glua.LString(input), glua.LNumber(w), glua.LString(side.String()))
	if err != nil {
		s.err = fmt.Errorf("%s: trim: %w", s.name, err)
		return []text.Line{fit(s.err.Error(), w, 0)}
	}

	switch v := ret.(type) {
	case *glua.LTable:
		lines := make([]text.Line, 0, v.Len())
		for i := 1; i <= v.Len(); i++ {
			lines = append(lines, fit(glua.LVAsString(v.RawGetInt(i)), w, i-1))
		}
		return lines
	case glua.LString, glua.LNumber:
		return []text.Line{fit(glua.LVAsString(v), w, 0)}
	default:
		return nil
	}
}

// Back implements grid.Trimmer.
func (s *Script) Back(rest []text.Line, b grid.Bounds, side grid.Side) string {
	if s.L == nil {
		return strings.Join(text.Contents(rest), "\n")
	}
	if _, ok := s.L.GetGlobal("back").(*glua.LFunction); !ok {
		return strings.Join(text.Contents(rest), "\n")
	}
	tbl := s.L.NewTable()
	for _, l := range rest {
		tbl.Append(glua.LString(l.Content))
	}
	ret, err := s.call("back", tbl, glua.LNumber(b.Width()), glua.LString(side.String()))
	if err != nil {
		s.err = fmt.Errorf("%s: back: %w", s.name, err)
		return strings.Join(text.Contents(rest), "\n")
	}
	return glua.LVAsString(ret)
}

// call invokes a global function with one return value.
func (s *Script) call(name string, args ...glua.LValue) (glua.LValue, error) {
	if s.L == nil {
		return glua.LNil, errors.New("script closed")
	}
	fn := s.L.GetGlobal(name)
	if err := s.L.CallByParam(glua.P{Fn: fn, NRet: 1, Protect: true}, args...); err != nil {
		return glua.LNil, err
	}
	ret := s.L.Get(-1)
	s.L.Pop(1)
	return ret, nil
}

func fit(s string, width, index int) text.Line {
	if width <= 0 {
		return text.Line{Index: index}
	}
	return text.Line{Content: text.Pad(ansi.Truncate(firstLine(s), width, ""), width), Index: index}
}
