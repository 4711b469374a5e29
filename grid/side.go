package grid

import (
	"fmt"
	"strings"
)

// Side selects one of the two sections of a process.
type Side int

const (
	Minus Side = iota // Above the divider, grows upward from it
	Plus              // Below the divider, grows downward from it
)

func (s Side) String() string {
	switch s {
	case Minus:
		return "minus"
	case Plus:
		return "plus"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// ParseSide parses "minus" or "plus".
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "minus", "-":
		return Minus, nil
	case "plus", "+":
		return Plus, nil
	}
	return 0, fmt.Errorf("invalid side %q", s)
}
