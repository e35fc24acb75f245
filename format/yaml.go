package format

import (
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLEncoder writes each result as a YAML document. Documents after the
// first are preceded by a "---" separator.
type YAMLEncoder struct {
	w      io.Writer
	result Result
	count  int
}

func NewYAMLEncoder(w io.Writer) *YAMLEncoder {
	return &YAMLEncoder{w: w}
}

func (e *YAMLEncoder) Encode(r Result) error {
	e.result = r
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	if e.count > 0 {
		if _, err := io.WriteString(e.w, "---\n"); err != nil {
			return err
		}
	}
	e.count++
	_, err = e.w.Write(text)
	return err
}

func (e *YAMLEncoder) MarshalText() ([]byte, error) {
	return yaml.Marshal(buildResultData(e.result))
}
