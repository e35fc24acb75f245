// Package combinator provides generic parser combinators over string input.
//
// A Parser is a pure function from a Cursor to an Outcome. Parsers are built
// once by combining smaller parsers and can then be invoked any number of
// times, from any number of goroutines.
package combinator

import "strings"

// Cursor is an immutable view of the unconsumed part of an input string.
// Advancing a cursor returns a new value sharing the same text.
type Cursor struct {
	src   string
	off   int
	depth int
}

// NewCursor returns a cursor positioned at the start of src.
func NewCursor(src string) Cursor {
	return Cursor{src: src}
}

// Source returns the complete input the cursor was created from.
func (c Cursor) Source() string {
	return c.src
}

// Offset returns the byte offset of the cursor within its source.
func (c Cursor) Offset() int {
	return c.off
}

// Rest returns the unconsumed text.
func (c Cursor) Rest() string {
	return c.src[c.off:]
}

// Len returns the number of unconsumed bytes.
func (c Cursor) Len() int {
	return len(c.src) - c.off
}

// IsEmpty reports whether all input has been consumed.
func (c Cursor) IsEmpty() bool {
	return c.off >= len(c.src)
}

// Depth returns the nesting depth recorded by Nested.
func (c Cursor) Depth() int {
	return c.depth
}

// Advance returns a cursor n bytes further into the input.
// n is clamped to the remaining length.
func (c Cursor) Advance(n int) Cursor {
	if n < 0 {
		n = 0
	}
	if n > c.Len() {
		n = c.Len()
	}
	c.off += n
	return c
}

// Consumed returns the text between c and a later cursor.
func (c Cursor) Consumed(later Cursor) string {
	if later.off < c.off {
		return ""
	}
	return c.src[c.off:later.off]
}

// SkipWhitespace returns a cursor past any leading spaces, tabs, carriage
// returns and newlines.
func (c Cursor) SkipWhitespace() Cursor {
	rest := c.Rest()
	trimmed := strings.TrimLeft(rest, " \t\r\n")
	return c.Advance(len(rest) - len(trimmed))
}

func (c Cursor) withDepth(depth int) Cursor {
	c.depth = depth
	return c
}

// Position is a line/column location in an input, both 1-based.
type Position struct {
	Offset int
	Line   int
	Column int
}

// PositionOf converts a byte offset in src into a line and column.
func PositionOf(src string, offset int) Position {
	if offset > len(src) {
		offset = len(src)
	}
	line, col := 1, 1
	for i := 0; i < offset; i++ {
		if src[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return Position{Offset: offset, Line: line, Column: col}
}
