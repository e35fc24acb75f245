package format

import (
	"encoding"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/dhamidi/arith/arith"
)

// Result is one evaluated expression. Exactly one of Err, Tree or Value is
// meaningful: Err when evaluation failed, Tree when a tree was requested.
type Result struct {
	Path       string // file the expression was read from, if any
	Line       int    // 1-based line within Path, 0 when not read from a file
	Expression string
	Value      float64
	Tree       arith.Node
	Err        error
}

type Encoder interface {
	encoding.TextMarshaler
	Encode(r Result) error
}

// Names lists the encoders accepted by NewEncoder.
var Names = []string{"text", "json", "yaml"}

// NewEncoder returns the encoder called name writing to w. precision is the
// number of significant digits used by the text encoder, -1 for the shortest
// exact representation.
func NewEncoder(name string, w io.Writer, precision int) (Encoder, error) {
	switch name {
	case "", "text":
		return NewTextEncoder(w, precision), nil
	case "json":
		return NewJSONEncoder(w), nil
	case "yaml":
		return NewYAMLEncoder(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want text, json or yaml)", name)
	}
}

// FormatValue renders v in the shortest 'g' form, or with precision
// significant digits when precision is not negative.
func FormatValue(v float64, precision int) string {
	switch {
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	case math.IsNaN(v):
		return "NaN"
	}
	if precision < 0 {
		precision = -1
	}
	return strconv.FormatFloat(v, 'g', precision, 64)
}
