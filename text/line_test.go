package text

import "testing"

func TestNewLinesNumbersInOrder(t *testing.T) {
	lines := NewLines("a", "b", "c")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for i, l := range lines {
		if l.Index != i {
			t.Errorf("line %d: expected index %d, got %d", i, i, l.Index)
		}
	}
	got := Contents(lines)
	if got[0] != "a" || got[2] != "c" {
		t.Errorf("unexpected contents %v", got)
	}
}

func TestVisibleLen(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"hello", 5},
		{"\x1b[31mred\x1b[0m", 3},
		{"日本", 4},
	}
	for _, tt := range tests {
		if got := VisibleLen(tt.in); got != tt.want {
			t.Errorf("VisibleLen(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestStripANSI(t *testing.T) {
	if got := StripANSI("\x1b[1;32mok\x1b[0m"); got != "ok" {
		t.Errorf("expected %q, got %q", "ok", got)
	}
}

func TestPad(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"ab", 4, "ab  "},
		{"abcd", 4, "abcd"},
		{"abcdef", 4, "abcdef"},
		{"", 3, "   "},
		{"\x1b[31mab\x1b[0m", 3, "\x1b[31mab\x1b[0m "},
		{"日", 3, "日 "},
	}
	for _, tt := range tests {
		if got := Pad(tt.in, tt.width); got != tt.want {
			t.Errorf("Pad(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
