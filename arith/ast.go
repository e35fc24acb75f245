package arith

import "strconv"

// Node is an arithmetic expression tree, as returned by Parse.
type Node interface {
	Eval() float64
	String() string
	node()
}

// Number is a numeric literal.
type Number struct {
	Value float64
}

// BinaryOp applies Op, one of + - * /, to two operands.
type BinaryOp struct {
	Op    byte
	Left  Node
	Right Node
}

func (*Number) node()   {}
func (*BinaryOp) node() {}

func (n *Number) Eval() float64 {
	return n.Value
}

func (n *Number) String() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

func (b *BinaryOp) Eval() float64 {
	return applyFloat(b.Op, b.Left.Eval(), b.Right.Eval())
}

// String renders the operation fully parenthesized, so grouping is explicit.
func (b *BinaryOp) String() string {
	return "(" + b.Left.String() + " " + string(b.Op) + " " + b.Right.String() + ")"
}

// Depth returns the height of the tree; a single number has depth 1.
func Depth(n Node) int {
	switch n := n.(type) {
	case *BinaryOp:
		return 1 + max(Depth(n.Left), Depth(n.Right))
	default:
		return 1
	}
}
