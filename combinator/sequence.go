package combinator

// PairOf holds the values of two parsers applied in sequence.
type PairOf[A, B any] struct {
	First  A
	Second B
}

// Triple holds the values of three parsers applied in sequence.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Pair applies a, then b to the remainder.
func Pair[A, B any](a Parser[A], b Parser[B]) Parser[PairOf[A, B]] {
	return func(c Cursor) Outcome[PairOf[A, B]] {
		first := a(c)
		if !first.IsMatched() {
			return reject[PairOf[A, B]](first)
		}
		second := b(first.rest)
		if !second.IsMatched() {
			return reject[PairOf[A, B]](second)
		}
		return Matched(PairOf[A, B]{first.value, second.value}, second.rest)
	}
}

// Tuple3 applies a, b and c in sequence.
func Tuple3[A, B, C any](a Parser[A], b Parser[B], c Parser[C]) Parser[Triple[A, B, C]] {
	return func(cur Cursor) Outcome[Triple[A, B, C]] {
		first := a(cur)
		if !first.IsMatched() {
			return reject[Triple[A, B, C]](first)
		}
		second := b(first.rest)
		if !second.IsMatched() {
			return reject[Triple[A, B, C]](second)
		}
		third := c(second.rest)
		if !third.IsMatched() {
			return reject[Triple[A, B, C]](third)
		}
		return Matched(Triple[A, B, C]{first.value, second.value, third.value}, third.rest)
	}
}

// Sequence applies parsers of the same type one after another and collects
// their values. The first parser that does not match decides the outcome.
func Sequence[T any](ps ...Parser[T]) Parser[[]T] {
	return func(c Cursor) Outcome[[]T] {
		values := make([]T, 0, len(ps))
		cur := c
		for _, p := range ps {
			out := p(cur)
			if !out.IsMatched() {
				return reject[[]T](out)
			}
			values = append(values, out.value)
			cur = out.rest
		}
		return Matched(values, cur)
	}
}

// Delimited matches open, inner and close, keeping only inner's value.
func Delimited[O, T, C any](open Parser[O], inner Parser[T], close Parser[C]) Parser[T] {
	return Map(Tuple3(open, inner, close), func(t Triple[O, T, C]) T {
		return t.Second
	})
}

// Preceded matches prefix then p, keeping p's value.
func Preceded[P, T any](prefix Parser[P], p Parser[T]) Parser[T] {
	return Map(Pair(prefix, p), func(v PairOf[P, T]) T {
		return v.Second
	})
}

// Terminated matches p then suffix, keeping p's value.
func Terminated[T, S any](p Parser[T], suffix Parser[S]) Parser[T] {
	return Map(Pair(p, suffix), func(v PairOf[T, S]) T {
		return v.First
	})
}
