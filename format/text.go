package format

import (
	"fmt"
	"io"
	"strings"
)

// TextEncoder writes one line per result. Results read from a file are
// prefixed with their path, line number and expression.
type TextEncoder struct {
	w         io.Writer
	precision int
	result    Result
}

func NewTextEncoder(w io.Writer, precision int) *TextEncoder {
	return &TextEncoder{w: w, precision: precision}
}

func (e *TextEncoder) Encode(r Result) error {
	e.result = r
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	r := e.result

	if r.Path != "" {
		fmt.Fprintf(&sb, "%s:", r.Path)
	}
	if r.Line > 0 {
		fmt.Fprintf(&sb, "%d: %s", r.Line, strings.TrimSpace(r.Expression))
		if r.Err != nil {
			fmt.Fprintf(&sb, ": error: %v\n", r.Err)
		} else {
			fmt.Fprintf(&sb, " = %s\n", e.value())
		}
		return []byte(sb.String()), nil
	}

	if r.Err != nil {
		fmt.Fprintf(&sb, "error: %v\n", r.Err)
	} else {
		fmt.Fprintf(&sb, "%s\n", e.value())
	}
	return []byte(sb.String()), nil
}

func (e *TextEncoder) value() string {
	if e.result.Tree != nil {
		return e.result.Tree.String()
	}
	return FormatValue(e.result.Value, e.precision)
}
