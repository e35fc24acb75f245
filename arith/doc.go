// Package arith evaluates arithmetic expressions over floating-point numbers.
//
// # Overview
//
// Expressions are numbers combined with + - * / and parentheses:
//
//	2.2*(1.1 + 4.5)/3.4
//	-1e3 / (2 - 0.5)
//
// Multiplication and division bind tighter than addition and subtraction,
// and operators of equal precedence group from left to right. Whitespace
// between tokens is ignored.
//
// # Grammar
//
// The grammar is written with the parsers of package combinator. EBNF holds
// the same grammar in full:
//
//	expr   = term { ("+" | "-") term } .
//	term   = factor { ("*" | "/") factor } .
//	factor = float | "(" expr ")" .
//	float  = [ "+" | "-" ] digits [ "." digits ] [ ("e" | "E") [ "+" | "-" ] digits ] .
//
// term and expr do not build a tree: they fold each operator and operand
// into a running value as they read it. Parse uses the same grammar with a
// fold that builds a Node instead, so Parse(s).Eval() and Evaluate(s) agree.
//
// # Incomplete Input
//
// Evaluate treats the end of its argument as the end of input. IsComplete
// instead asks whether more input could still turn the text into an
// expression:
//
//	IsComplete("1 + (2") // false, a ")" could follow
//	IsComplete("1 + 2")  // true
//	IsComplete("1 + )")  // true, nothing can fix this
//
// # Errors
//
// Evaluate returns a *ParseError of one of three kinds:
//
//	SyntaxRejected     no expected construct starts at Pos
//	NumericConversion  a numeral such as 1e400 does not fit a float64
//	TrailingInput      a valid expression is followed by other text
//
// Use errors.Is with ErrSyntax, ErrNumericConversion or ErrTrailingInput to
// test for a kind. Arithmetic itself never fails: 1/0 is +Inf and 0/0 is NaN.
//
// # Nesting
//
// Parentheses may nest up to DefaultMaxDepth levels; WithMaxDepth changes
// the limit for an Evaluator created with New.
package arith
