package format

import (
	"errors"
	"math"

	"github.com/dhamidi/arith/arith"
)

type resultData struct {
	Path       string     `json:"path,omitempty" yaml:"path,omitempty"`
	Line       int        `json:"line,omitempty" yaml:"line,omitempty"`
	Expression string     `json:"expression" yaml:"expression"`
	Value      any        `json:"value,omitempty" yaml:"value,omitempty"`
	Tree       *nodeData  `json:"tree,omitempty" yaml:"tree,omitempty"`
	Error      *errorData `json:"error,omitempty" yaml:"error,omitempty"`
}

type nodeData struct {
	Op     string    `json:"op,omitempty" yaml:"op,omitempty"`
	Number *float64  `json:"number,omitempty" yaml:"number,omitempty"`
	Left   *nodeData `json:"left,omitempty" yaml:"left,omitempty"`
	Right  *nodeData `json:"right,omitempty" yaml:"right,omitempty"`
}

type errorData struct {
	Kind     string   `json:"kind" yaml:"kind"`
	Message  string   `json:"message" yaml:"message"`
	Line     int      `json:"line,omitempty" yaml:"line,omitempty"`
	Column   int      `json:"column,omitempty" yaml:"column,omitempty"`
	Expected []string `json:"expected,omitempty" yaml:"expected,omitempty"`
}

func buildResultData(r Result) resultData {
	data := resultData{
		Path:       r.Path,
		Line:       r.Line,
		Expression: r.Expression,
	}
	switch {
	case r.Err != nil:
		data.Error = buildErrorData(r.Err)
	case r.Tree != nil:
		data.Tree = buildNodeData(r.Tree)
	default:
		data.Value = numberValue(r.Value)
	}
	return data
}

// numberValue keeps finite values numeric and spells out the others, which
// JSON has no literal for.
func numberValue(v float64) any {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return FormatValue(v, -1)
	}
	return v
}

func buildNodeData(n arith.Node) *nodeData {
	switch n := n.(type) {
	case *arith.Number:
		v := n.Value
		return &nodeData{Number: &v}
	case *arith.BinaryOp:
		return &nodeData{
			Op:    string(n.Op),
			Left:  buildNodeData(n.Left),
			Right: buildNodeData(n.Right),
		}
	default:
		return nil
	}
}

func buildErrorData(err error) *errorData {
	data := &errorData{Kind: "error", Message: err.Error()}
	var perr *arith.ParseError
	if errors.As(err, &perr) {
		pos := perr.Position()
		data.Kind = perr.Kind.String()
		data.Line = pos.Line
		data.Column = pos.Column
		data.Expected = perr.Expected
	}
	return data
}
