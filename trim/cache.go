package trim

import (
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/drake/gridui/grid"
	"github.com/drake/gridui/text"
)

// Compile-time check that Cached implements grid.Trimmer
var _ grid.Trimmer[string, string] = (*Cached)(nil)

// DefaultCacheSize is the number of trimmed inputs Cached keeps by default.
const DefaultCacheSize = 256

type cacheKey struct {
	input string
	width int
	side  grid.Side
}

// Cached remembers the output of a deterministic trimmer, keyed by input,
// width and side. Useful when the same text is laid out every frame.
type Cached struct {
	next  grid.Trimmer[string, string]
	cache *lru.Cache[cacheKey, []text.Line]
}

// NewCached wraps next with an LRU of the given size.
// A size of zero or less uses DefaultCacheSize.
func NewCached(next grid.Trimmer[string, string], size int) *Cached {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, _ := lru.New[cacheKey, []text.Line](size)
	return &Cached{next: next, cache: cache}
}

// Trim implements grid.Trimmer. Callers get their own copy of the lines.
func (c *Cached) Trim(input string, b grid.Bounds, side grid.Side) []text.Line {
	key := cacheKey{input: input, width: b.Width(), side: side}
	if lines, ok := c.cache.Get(key); ok {
		return slices.Clone(lines)
	}
	lines := c.next.Trim(input, b, side)
	c.cache.Add(key, slices.Clone(lines))
	return lines
}

// Back implements grid.Trimmer.
func (c *Cached) Back(rest []text.Line, b grid.Bounds, side grid.Side) string {
	return c.next.Back(rest, b, side)
}

// Len returns the number of cached entries.
func (c *Cached) Len() int {
	return c.cache.Len()
}

// Purge empties the cache.
func (c *Cached) Purge() {
	c.cache.Purge()
}
