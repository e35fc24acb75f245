package arith

import (
	c "github.com/dhamidi/arith/combinator"
	"github.com/dhamidi/arith/lexical"
)

// Evaluator parses and evaluates arithmetic expressions. Its grammar is built
// once by New; an Evaluator is safe for concurrent use.
type Evaluator struct {
	opts  options
	value *grammar[float64]
	tree  *grammar[Node]
}

func New(opts ...Option) *Evaluator {
	o := options{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&o)
	}
	number := c.Map(lexical.Float64, func(v float64) Node {
		return &Number{Value: v}
	})
	return &Evaluator{
		opts:  o,
		value: newGrammar(lexical.Float64, applyFloat, o),
		tree:  newGrammar(number, applyNode, o),
	}
}

// MaxDepth returns the nesting limit of the evaluator.
func (e *Evaluator) MaxDepth() int {
	return e.opts.maxDepth
}

// Evaluate computes the value of text. Division follows IEEE-754, so
// dividing by zero yields an infinity or NaN rather than an error.
func (e *Evaluator) Evaluate(text string) (float64, error) {
	return finish(e.value.expr, text)
}

// Parse returns the expression tree of text.
func (e *Evaluator) Parse(text string) (Node, error) {
	return finish(e.tree.expr, text)
}

// Check parses text without treating its end as the end of input. The
// result is StatusIncomplete when more text could still complete the
// expression. A StatusMatched result may leave trailing input unconsumed.
func (e *Evaluator) Check(text string) c.Status {
	return e.value.expr.Parse(text).Status()
}

// IsComplete reports whether text can be evaluated without more input.
// It returns false for input such as "1 + (2" or "3 *" that could still
// become a valid expression, and true for both valid and hopeless input.
func (e *Evaluator) IsComplete(text string) bool {
	return e.Check(text) != c.StatusIncomplete
}

// finish runs p over the whole of text, treating the end of text as the end
// of input and requiring everything but trailing whitespace to be consumed.
func finish[T any](p c.Parser[T], text string) (T, error) {
	var zero T
	out := c.Complete(p).Parse(text)
	switch out.Status() {
	case c.StatusMatched:
		rest := out.Rest().SkipWhitespace()
		if !rest.IsEmpty() {
			return zero, &ParseError{
				Kind:      TrailingInput,
				Input:     text,
				Pos:       rest.Offset(),
				Remainder: rest.Rest(),
			}
		}
		return out.Value(), nil
	case c.StatusRejected:
		return zero, fromFailure(text, out.Failure())
	default:
		return zero, &ParseError{
			Kind:     SyntaxRejected,
			Input:    text,
			Pos:      len(text),
			Expected: []string{c.MoreInput},
		}
	}
}

var defaultEvaluator = New()

// Evaluate computes the value of text with the default evaluator.
func Evaluate(text string) (float64, error) {
	return defaultEvaluator.Evaluate(text)
}

// Parse returns the expression tree of text using the default evaluator.
func Parse(text string) (Node, error) {
	return defaultEvaluator.Parse(text)
}

// Check is Evaluator.Check using the default evaluator.
func Check(text string) c.Status {
	return defaultEvaluator.Check(text)
}

// IsComplete is Evaluator.IsComplete using the default evaluator.
func IsComplete(text string) bool {
	return defaultEvaluator.IsComplete(text)
}
