package arith

import (
	"errors"
	"fmt"
	"strings"

	c "github.com/dhamidi/arith/combinator"
)

type ErrorKind int

const (
	// SyntaxRejected means the input cannot start any construct expected at
	// Pos. Input that ends too early is reported this way as well.
	SyntaxRejected ErrorKind = iota
	// NumericConversion means a well-formed numeral does not fit a float64.
	NumericConversion
	// TrailingInput means a valid expression was followed by unparsed text.
	TrailingInput
)

func (k ErrorKind) String() string {
	switch k {
	case SyntaxRejected:
		return "SyntaxRejected"
	case NumericConversion:
		return "NumericConversion"
	case TrailingInput:
		return "TrailingInput"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

var (
	ErrSyntax            = errors.New("syntax error")
	ErrNumericConversion = errors.New("numeric conversion error")
	ErrTrailingInput     = errors.New("trailing input")
)

// ParseError is the error returned for input that is not a complete
// arithmetic expression.
type ParseError struct {
	Kind      ErrorKind
	Input     string
	Pos       int      // byte offset of the problem in Input
	Expected  []string // SyntaxRejected: what would have been accepted
	Raw       string   // NumericConversion: the numeral
	Remainder string   // TrailingInput: the unparsed text
	Err       error    // NumericConversion: the conversion error
}

// Position returns the line and column of the error.
func (e *ParseError) Position() c.Position {
	return c.PositionOf(e.Input, e.Pos)
}

// AtEnd reports whether the input ended before the expression was finished.
func (e *ParseError) AtEnd() bool {
	return e.Kind == SyntaxRejected && len(e.Expected) == 1 && e.Expected[0] == c.MoreInput
}

func (e *ParseError) Error() string {
	pos := e.Position()
	switch e.Kind {
	case NumericConversion:
		return fmt.Sprintf("%d:%d: cannot convert %q to a number: %v", pos.Line, pos.Column, e.Raw, e.Err)
	case TrailingInput:
		return fmt.Sprintf("%d:%d: unexpected %q after expression", pos.Line, pos.Column, e.Remainder)
	default:
		if e.AtEnd() {
			return fmt.Sprintf("%d:%d: unexpected end of input", pos.Line, pos.Column)
		}
		return fmt.Sprintf("%d:%d: syntax error: expected %s", pos.Line, pos.Column, joinExpected(e.Expected))
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	switch target {
	case ErrSyntax:
		return e.Kind == SyntaxRejected
	case ErrNumericConversion:
		return e.Kind == NumericConversion
	case ErrTrailingInput:
		return e.Kind == TrailingInput
	}
	return false
}

func fromFailure(input string, f *c.Failure) *ParseError {
	if f.Kind == c.FailureNumericConversion {
		return &ParseError{
			Kind:  NumericConversion,
			Input: input,
			Pos:   f.Pos,
			Raw:   f.Raw,
			Err:   f.Cause,
		}
	}
	return &ParseError{
		Kind:     SyntaxRejected,
		Input:    input,
		Pos:      f.Pos,
		Expected: f.Expected,
	}
}

func joinExpected(expected []string) string {
	switch len(expected) {
	case 0:
		return "an expression"
	case 1:
		return expected[0]
	}
	return strings.Join(expected[:len(expected)-1], ", ") + " or " + expected[len(expected)-1]
}
