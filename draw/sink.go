package draw

import "strings"

// Compile-time checks
var (
	_ Handler     = (*StringSink)(nil)
	_ SafeHandler = (*StringSink)(nil)
	_ Handler     = (*Recorder)(nil)
	_ SafeHandler = (*Recorder)(nil)
)

// StringSink collects printed text, one line per print.
// Cursor moves are ignored, so output is in action order.
type StringSink struct {
	b strings.Builder
}

// Handle implements Handler. It never fails.
func (s *StringSink) Handle(a Action) error {
	s.SafeHandle(a)
	return nil
}

// SafeHandle implements SafeHandler.
func (s *StringSink) SafeHandle(a Action) {
	if a.Kind != KindPrint {
		return
	}
	s.b.WriteString(a.Text)
	s.b.WriteByte('\n')
}

// String returns everything printed so far.
func (s *StringSink) String() string {
	return s.b.String()
}

// Reset discards collected output.
func (s *StringSink) Reset() {
	s.b.Reset()
}

// Recorder keeps every action it receives.
type Recorder struct {
	Actions []Action
}

// Handle implements Handler. It never fails.
func (r *Recorder) Handle(a Action) error {
	r.SafeHandle(a)
	return nil
}

// SafeHandle implements SafeHandler.
func (r *Recorder) SafeHandle(a Action) {
	r.Actions = append(r.Actions, a)
}

// Rows maps each printed row to its text, pairing every print with the
// move that preceded it.
func (r *Recorder) Rows() map[int]string {
	rows := make(map[int]string)
	y, positioned := 0, false
	for _, a := range r.Actions {
		switch a.Kind {
		case KindMoveTo:
			y, positioned = a.Y, true
		case KindPrint:
			if positioned {
				rows[y] = a.Text
			}
		}
	}
	return rows
}
