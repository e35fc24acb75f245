package combinator

import (
	"fmt"
	"strconv"
	"strings"
)

// Parser recognizes a prefix of the input at a cursor.
type Parser[T any] func(Cursor) Outcome[T]

// Parse runs p on the whole of input.
func (p Parser[T]) Parse(input string) Outcome[T] {
	return p(NewCursor(input))
}

// Literal matches text exactly. A remaining input that is a strict prefix of
// text is Incomplete, since more input could still complete the match.
func Literal(text string) Parser[string] {
	expected := strconv.Quote(text)
	return func(c Cursor) Outcome[string] {
		rest := c.Rest()
		if strings.HasPrefix(rest, text) {
			return Matched(text, c.Advance(len(text)))
		}
		if len(rest) < len(text) && strings.HasPrefix(text, rest) {
			return Incomplete[string](len(text) - len(rest))
		}
		return Rejected[string](Expect(c, expected))
	}
}

// TakeWhile1 matches one or more bytes satisfying pred. A run that reaches
// the end of a non-empty input matches; empty input is Incomplete.
func TakeWhile1(description string, pred func(byte) bool) Parser[string] {
	return func(c Cursor) Outcome[string] {
		rest := c.Rest()
		if len(rest) == 0 {
			return Incomplete[string](1)
		}
		n := 0
		for n < len(rest) && pred(rest[n]) {
			n++
		}
		if n == 0 {
			return Rejected[string](Expect(c, description))
		}
		return Matched(rest[:n], c.Advance(n))
	}
}

// Whitespaced skips whitespace before and after p.
func Whitespaced[T any](p Parser[T]) Parser[T] {
	return func(c Cursor) Outcome[T] {
		out := p(c.SkipWhitespace())
		if !out.IsMatched() {
			return out
		}
		return Matched(out.value, out.rest.SkipWhitespace())
	}
}

// Map transforms the value of a successful parse.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(c Cursor) Outcome[U] {
		out := p(c)
		if !out.IsMatched() {
			return reject[U](out)
		}
		return Matched(f(out.value), out.rest)
	}
}

// MapResult transforms the value of a successful parse with a function that
// may fail. A failure rejects the input, recording the consumed text and the
// error.
func MapResult[T, U any](p Parser[T], f func(T) (U, error)) Parser[U] {
	return func(c Cursor) Outcome[U] {
		out := p(c)
		if !out.IsMatched() {
			return reject[U](out)
		}
		v, err := f(out.value)
		if err != nil {
			return Rejected[U](&Failure{
				Kind:  FailureNumericConversion,
				Pos:   c.Offset(),
				Raw:   c.Consumed(out.rest),
				Cause: err,
			})
		}
		return Matched(v, out.rest)
	}
}

// Value replaces the value of a successful parse with v.
func Value[T, U any](p Parser[T], v U) Parser[U] {
	return Map(p, func(T) U { return v })
}

// Recognize returns the input text consumed by p instead of its value.
func Recognize[T any](p Parser[T]) Parser[string] {
	return func(c Cursor) Outcome[string] {
		out := p(c)
		if !out.IsMatched() {
			return reject[string](out)
		}
		return Matched(c.Consumed(out.rest), out.rest)
	}
}

// Ref defers to the parser stored in *p at call time. It lets grammars refer
// to rules defined later, including themselves.
func Ref[T any](p *Parser[T]) Parser[T] {
	return func(c Cursor) Outcome[T] {
		if *p == nil {
			panic("combinator: Ref to undefined parser")
		}
		return (*p)(c)
	}
}

// Nested runs p one nesting level deeper, rejecting the input once more than
// max levels are open.
func Nested[T any](max int, p Parser[T]) Parser[T] {
	return func(c Cursor) Outcome[T] {
		if c.depth >= max {
			return Rejected[T](&Failure{
				Kind:     FailureDepth,
				Pos:      c.Offset(),
				Expected: []string{fmt.Sprintf("nesting depth of at most %d", max)},
			})
		}
		out := p(c.withDepth(c.depth + 1))
		if !out.IsMatched() {
			return out
		}
		return Matched(out.value, out.rest.withDepth(c.depth))
	}
}
