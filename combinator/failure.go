package combinator

import (
	"fmt"
	"strings"
)

type FailureKind int

const (
	FailureSyntax FailureKind = iota
	FailureNumericConversion
	FailureDepth
)

func (k FailureKind) String() string {
	switch k {
	case FailureSyntax:
		return "syntax"
	case FailureNumericConversion:
		return "numeric conversion"
	case FailureDepth:
		return "nesting depth"
	default:
		return fmt.Sprintf("FailureKind(%d)", int(k))
	}
}

// Failure describes why a parser rejected its input.
type Failure struct {
	Kind     FailureKind
	Pos      int      // byte offset into the original input
	Expected []string // human readable descriptions of what would have matched
	Raw      string   // text that failed conversion
	Cause    error
}

// Expect builds a syntax failure at the cursor.
func Expect(c Cursor, expected ...string) *Failure {
	return &Failure{Kind: FailureSyntax, Pos: c.Offset(), Expected: expected}
}

func (f *Failure) Error() string {
	switch f.Kind {
	case FailureNumericConversion:
		if f.Cause != nil {
			return fmt.Sprintf("offset %d: cannot convert %q: %v", f.Pos, f.Raw, f.Cause)
		}
		return fmt.Sprintf("offset %d: cannot convert %q", f.Pos, f.Raw)
	default:
		return fmt.Sprintf("offset %d: expected %s", f.Pos, f.describe())
	}
}

func (f *Failure) Unwrap() error {
	return f.Cause
}

func (f *Failure) describe() string {
	switch len(f.Expected) {
	case 0:
		return "valid input"
	case 1:
		return f.Expected[0]
	default:
		return strings.Join(f.Expected[:len(f.Expected)-1], ", ") + " or " + f.Expected[len(f.Expected)-1]
	}
}

// furthest picks the failure that progressed further into the input. Equal
// syntax failures are merged so the error lists every expected alternative.
func furthest(a, b *Failure) *Failure {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case b.Pos > a.Pos:
		return b
	case b.Pos < a.Pos:
		return a
	case a.Kind != FailureSyntax:
		return a
	case b.Kind != FailureSyntax:
		return b
	}
	merged := &Failure{Kind: FailureSyntax, Pos: a.Pos}
	seen := make(map[string]bool)
	for _, e := range append(append([]string{}, a.Expected...), b.Expected...) {
		if seen[e] {
			continue
		}
		seen[e] = true
		merged.Expected = append(merged.Expected, e)
	}
	return merged
}
