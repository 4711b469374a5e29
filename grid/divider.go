package grid

import (
	"fmt"
	"strconv"
	"strings"
)

type dividerKind int

const (
	dividerBeginning dividerKind = iota
	dividerEnd
	dividerHalfway
	dividerAt
)

// Divider is a placement policy for the row that separates the minus and
// plus sections.
type Divider struct {
	kind dividerKind
	pos  int
}

var (
	Beginning = Divider{kind: dividerBeginning} // All rows belong to plus
	End       = Divider{kind: dividerEnd}       // All rows belong to minus
	Halfway   = Divider{kind: dividerHalfway}   // Rows split evenly, extra row to plus
)

// At places the divider n rows below the top of the viewport.
func At(n int) Divider {
	return Divider{kind: dividerAt, pos: n}
}

// Offset resolves the divider against a viewport height.
// Explicit positions are clamped into [0, height].
func (d Divider) Offset(height int) int {
	switch d.kind {
	case dividerEnd:
		return height
	case dividerHalfway:
		return height / 2
	case dividerAt:
		return min(max(d.pos, 0), height)
	default:
		return 0
	}
}

func (d Divider) String() string {
	switch d.kind {
	case dividerEnd:
		return "end"
	case dividerHalfway:
		return "halfway"
	case dividerAt:
		return strconv.Itoa(d.pos)
	default:
		return "beginning"
	}
}

// ParseDivider parses "beginning", "end", "halfway" or a row count.
// An empty string means Beginning.
func ParseDivider(s string) (Divider, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "beginning", "top":
		return Beginning, nil
	case "end", "bottom":
		return End, nil
	case "halfway", "half", "middle":
		return Halfway, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return Divider{}, fmt.Errorf("invalid divider %q", s)
	}
	return At(n), nil
}
