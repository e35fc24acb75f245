// Package lexical provides parsers for the tokens of arithmetic text.
package lexical

import (
	"strconv"

	c "github.com/dhamidi/arith/combinator"
)

// Sign matches an optional leading "+" or "-".
var Sign = c.Optional(c.Alternative(c.Literal("+"), c.Literal("-")))

// Digits matches one or more ASCII decimal digits.
var Digits = c.TakeWhile1("digit", isDigit)

// Alpha matches one or more ASCII letters.
var Alpha = c.TakeWhile1("letter", isAlpha)

// SignedDigits recognizes an optionally signed digit run, such as "+12".
var SignedDigits = c.Recognize(c.Pair(Sign, Digits))

// FloatLiteral recognizes the text of a floating-point number: signed digits,
// an optional fraction and an optional exponent.
//
// The fraction and exponent are wrapped in Complete so that "12" at the end
// of the input is a finished number rather than a prefix of "12.5".
var FloatLiteral = c.Recognize(c.Tuple3(
	SignedDigits,
	c.Optional(c.Complete(c.Pair(c.Literal("."), Digits))),
	c.Optional(c.Complete(c.Pair(
		c.Alternative(c.Literal("e"), c.Literal("E")),
		SignedDigits,
	))),
))

// Float64 parses a floating-point literal. Literals outside the float64
// range are rejected as numeric conversion failures.
var Float64 = c.MapResult(FloatLiteral, parseFloat)

// Int8 parses a signed decimal integer that fits in an int8.
var Int8 = c.MapResult(SignedDigits, func(s string) (int8, error) {
	v, err := strconv.ParseInt(s, 10, 8)
	return int8(v), err
})

// Int32 parses a signed decimal integer that fits in an int32.
var Int32 = c.MapResult(SignedDigits, func(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	return int32(v), err
})

// Int64 parses a signed decimal integer that fits in an int64.
var Int64 = c.MapResult(SignedDigits, func(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
})

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
