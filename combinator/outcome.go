package combinator

import "fmt"

type Status int

const (
	StatusMatched Status = iota
	StatusRejected
	StatusIncomplete
)

func (s Status) String() string {
	switch s {
	case StatusMatched:
		return "Matched"
	case StatusRejected:
		return "Rejected"
	case StatusIncomplete:
		return "Incomplete"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// UnknownSize is the Needed hint used when a parser cannot tell how much
// more input it requires.
const UnknownSize = 0

// Outcome is the result of running a parser. Exactly one of the three
// variants is populated, as reported by Status.
type Outcome[T any] struct {
	status  Status
	value   T
	rest    Cursor
	failure *Failure
	needed  int
}

// Matched reports a successful parse producing v, with rest left unconsumed.
func Matched[T any](v T, rest Cursor) Outcome[T] {
	return Outcome[T]{status: StatusMatched, value: v, rest: rest}
}

// Rejected reports that the input can never satisfy the parser.
func Rejected[T any](f *Failure) Outcome[T] {
	return Outcome[T]{status: StatusRejected, failure: f}
}

// Incomplete reports that the input is a valid prefix but more is needed to
// decide. needed is a size hint, UnknownSize if not known.
func Incomplete[T any](needed int) Outcome[T] {
	return Outcome[T]{status: StatusIncomplete, needed: needed}
}

func (o Outcome[T]) Status() Status {
	return o.status
}

func (o Outcome[T]) IsMatched() bool {
	return o.status == StatusMatched
}

func (o Outcome[T]) IsRejected() bool {
	return o.status == StatusRejected
}

func (o Outcome[T]) IsIncomplete() bool {
	return o.status == StatusIncomplete
}

// Value returns the parsed value. It is the zero value unless Matched.
func (o Outcome[T]) Value() T {
	return o.value
}

// Rest returns the unconsumed input of a Matched outcome.
func (o Outcome[T]) Rest() Cursor {
	return o.rest
}

// Failure returns the reason of a Rejected outcome, nil otherwise.
func (o Outcome[T]) Failure() *Failure {
	return o.failure
}

// Needed returns the size hint of an Incomplete outcome.
func (o Outcome[T]) Needed() int {
	return o.needed
}

// Result converts the outcome into a value and an error. Rejected outcomes
// return their *Failure, Incomplete outcomes an *IncompleteError.
func (o Outcome[T]) Result() (T, error) {
	switch o.status {
	case StatusMatched:
		return o.value, nil
	case StatusRejected:
		var zero T
		return zero, o.failure
	case StatusIncomplete:
		var zero T
		return zero, &IncompleteError{Needed: o.needed}
	default:
		var zero T
		return zero, fmt.Errorf("invalid outcome status %v", o.status)
	}
}

func (o Outcome[T]) String() string {
	switch o.status {
	case StatusMatched:
		return fmt.Sprintf("Matched(%v, %q)", o.value, o.rest.Rest())
	case StatusRejected:
		return fmt.Sprintf("Rejected(%v)", o.failure)
	case StatusIncomplete:
		if o.needed == UnknownSize {
			return "Incomplete(unknown)"
		}
		return fmt.Sprintf("Incomplete(%d)", o.needed)
	default:
		return o.status.String()
	}
}

// reject converts a non-matched outcome to another value type.
func reject[U, T any](o Outcome[T]) Outcome[U] {
	return Outcome[U]{status: o.status, failure: o.failure, needed: o.needed}
}

// IncompleteError is returned by Result when more input was required.
type IncompleteError struct {
	Needed int
}

func (e *IncompleteError) Error() string {
	if e.Needed == UnknownSize {
		return "incomplete input"
	}
	return fmt.Sprintf("incomplete input: need %d more bytes", e.Needed)
}
