package format

import (
	"encoding/json"
	"io"
)

// JSONEncoder writes each result as an indented JSON object.
type JSONEncoder struct {
	w      io.Writer
	result Result
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(r Result) error {
	e.result = r
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	if _, err := e.w.Write(text); err != nil {
		return err
	}
	_, err = io.WriteString(e.w, "\n")
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(buildResultData(e.result), "", "  ")
}
