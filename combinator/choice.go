package combinator

// Alternative tries each parser on the same input, in order, and returns the
// first match. Earlier parsers take priority, so list longer literals before
// their prefixes.
//
// When nothing matches, the result is Incomplete if any branch was
// Incomplete. Otherwise it is Rejected with the failure that progressed
// furthest into the input.
func Alternative[T any](ps ...Parser[T]) Parser[T] {
	return func(c Cursor) Outcome[T] {
		var failure *Failure
		incomplete := false
		needed := UnknownSize
		for _, p := range ps {
			out := p(c)
			switch out.Status() {
			case StatusMatched:
				return out
			case StatusIncomplete:
				if !incomplete || out.needed < needed {
					needed = out.needed
				}
				incomplete = true
			case StatusRejected:
				failure = furthest(failure, out.failure)
			}
		}
		if incomplete {
			return Incomplete[T](needed)
		}
		if failure == nil {
			failure = Expect(c)
		}
		return Rejected[T](failure)
	}
}
