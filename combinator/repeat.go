package combinator

// MoreInput is the expectation recorded when Complete rejects an input
// that ended too early.
const MoreInput = "more input"

// Option is the value of an Optional parser.
type Option[T any] struct {
	Value T
	Ok    bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{Value: v, Ok: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// Optional matches p if possible. A rejection yields None without consuming
// input; Incomplete is passed through.
func Optional[T any](p Parser[T]) Parser[Option[T]] {
	return func(c Cursor) Outcome[Option[T]] {
		out := p(c)
		switch out.Status() {
		case StatusMatched:
			return Matched(Some(out.value), out.rest)
		case StatusRejected:
			return Matched(None[T](), c)
		default:
			return reject[Option[T]](out)
		}
	}
}

// Complete treats Incomplete from p as a rejection. Use it where no more
// input will ever arrive.
func Complete[T any](p Parser[T]) Parser[T] {
	return func(c Cursor) Outcome[T] {
		out := p(c)
		if out.IsIncomplete() {
			return Rejected[T](&Failure{
				Kind:     FailureSyntax,
				Pos:      len(c.Source()),
				Expected: []string{MoreInput},
			})
		}
		return out
	}
}

// Fold0 applies p zero or more times, combining each value into the
// accumulator with f.
//
// Repetition stops when the input is exhausted, when p rejects with a syntax
// failure, or when p matches without consuming anything. Other failures,
// such as a numeral that does not convert, end the fold with that failure.
// If p is Incomplete on non-empty input it has committed to a prefix that
// only more input can finish, and the fold is Incomplete as well.
func Fold0[T, A any](p Parser[T], init A, f func(A, T) A) Parser[A] {
	return func(c Cursor) Outcome[A] {
		out, _ := fold(p, c, init, f)
		return out
	}
}

// Fold1 is Fold0 requiring at least one match. On empty input it is
// Incomplete, like the first match of p would be.
func Fold1[T, A any](p Parser[T], init A, f func(A, T) A) Parser[A] {
	return func(c Cursor) Outcome[A] {
		out, n := fold(p, c, init, f)
		if out.IsMatched() && n == 0 {
			if first := p(c); !first.IsMatched() {
				return reject[A](first)
			}
			return Rejected[A](Expect(c))
		}
		return out
	}
}

// FoldLeft matches first, then folds zero or more matches of p into its
// value. It is the building block for left-associative operators:
//
//	FoldLeft(operand, Pair(operator, operand), apply)
func FoldLeft[A, T any](first Parser[A], p Parser[T], f func(A, T) A) Parser[A] {
	return func(c Cursor) Outcome[A] {
		init := first(c)
		if !init.IsMatched() {
			return init
		}
		out, _ := fold(p, init.rest, init.value, f)
		return out
	}
}

// Repeat0 collects zero or more matches of p.
func Repeat0[T any](p Parser[T]) Parser[[]T] {
	return Fold0(p, []T(nil), appendValue[T])
}

// Repeat1 collects one or more matches of p.
func Repeat1[T any](p Parser[T]) Parser[[]T] {
	return Fold1(p, []T(nil), appendValue[T])
}

func appendValue[T any](vs []T, v T) []T {
	return append(vs, v)
}

func fold[T, A any](p Parser[T], c Cursor, acc A, f func(A, T) A) (Outcome[A], int) {
	n := 0
	cur := c
	for !cur.IsEmpty() {
		out := p(cur)
		if out.IsRejected() {
			if out.failure.Kind != FailureSyntax {
				return reject[A](out), n
			}
			break
		}
		if out.IsIncomplete() {
			return reject[A](out), n
		}
		if out.rest.Offset() == cur.Offset() {
			break
		}
		acc = f(acc, out.value)
		n++
		cur = out.rest
	}
	return Matched(acc, cur), n
}
