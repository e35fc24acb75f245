package arith

import (
	c "github.com/dhamidi/arith/combinator"
)

// DefaultMaxDepth is the default limit on nested parentheses.
const DefaultMaxDepth = 256

type Option func(*options)

type options struct {
	maxDepth int
}

// WithMaxDepth limits how deeply parentheses may nest. Deeper input is
// rejected as a syntax error.
func WithMaxDepth(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxDepth = n
		}
	}
}

// grammar holds the three mutually recursive rules of an arithmetic
// expression. T is the value every rule produces: a number when evaluating
// directly, a Node when building a tree.
//
//	expr   = term { ("+" | "-") term } .
//	term   = factor { ("*" | "/") factor } .
//	factor = number | "(" expr ")" .
type grammar[T any] struct {
	expr   c.Parser[T]
	term   c.Parser[T]
	factor c.Parser[T]
}

func newGrammar[T any](number c.Parser[T], apply func(op byte, left, right T) T, opts options) *grammar[T] {
	g := &grammar[T]{}
	g.factor = c.Alternative(
		c.Whitespaced(number),
		c.Whitespaced(c.Nested(opts.maxDepth,
			c.Delimited(c.Literal("("), c.Ref(&g.expr), c.Literal(")")))),
	)
	g.term = leftAssociative(g.factor, apply, "*", "/")
	g.expr = leftAssociative(g.term, apply, "+", "-")
	return g
}

// leftAssociative parses operand { op operand } and combines the operands
// from left to right as they are read.
func leftAssociative[T any](operand c.Parser[T], apply func(byte, T, T) T, ops ...string) c.Parser[T] {
	literals := make([]c.Parser[string], len(ops))
	for i, op := range ops {
		literals[i] = c.Literal(op)
	}
	operator := c.Whitespaced(c.Alternative(literals...))
	return c.FoldLeft(operand, c.Pair(operator, operand), func(acc T, next c.PairOf[string, T]) T {
		return apply(next.First[0], acc, next.Second)
	})
}

func applyFloat(op byte, left, right float64) float64 {
	switch op {
	case '+':
		return left + right
	case '-':
		return left - right
	case '*':
		return left * right
	case '/':
		return left / right
	}
	panic("arith: unknown operator " + string(op))
}

func applyNode(op byte, left, right Node) Node {
	return &BinaryOp{Op: op, Left: left, Right: right}
}
