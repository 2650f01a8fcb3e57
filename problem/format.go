package problem

import (
	"bytes"
	"encoding/json"
	"strings"
)

// JSON serializes the compiled problem document as canonical JSON text.
// When pretty is true the output is indented and HTML-sensitive characters
// are left unescaped, so type and instance URIs stay readable; otherwise
// the output is the minimal compact encoding.
//
// Serialization never mutates the problem. The caller transmitting the text
// is responsible for setting the application/problem+json content type.
func (p *Problem) JSON(pretty bool) (string, error) {
	compiled := p.Compile()

	if !pretty {
		d, err := json.Marshal(compiled)
		if err != nil {
			return "", err
		}
		return string(d), nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(compiled); err != nil {
		return "", err
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// XML is the extension point for a future markup encoding of the problem
// document. It is not available and always fails with ErrNotImplemented,
// regardless of the problem's state.
func (p *Problem) XML() (string, error) {
	return "", ErrNotImplemented
}
