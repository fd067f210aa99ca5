// Package ingest parses a layout mapping out of raw text supplied by an
// external producer. Producers are asked for bare JSON but routinely wrap it
// in code fences or surrounding prose, so the parser peels those off before
// decoding and validating the mapping.
package ingest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/GlibAI/GenXL/pkg/layout"
)

var (
	// ErrNoJSONObject is returned when the text contains no {...} region.
	ErrNoJSONObject = errors.New("no JSON object found in producer output")

	// ErrMalformedJSON is returned when the extracted region does not parse.
	ErrMalformedJSON = errors.New("malformed JSON in producer output")
)

// Parse extracts, decodes, and validates a layout mapping from raw producer
// text. A single leading fence line (``` with an optional language tag) and
// a matching trailing fence are stripped; after that the substring between
// the first '{' and the last '}' is decoded. Sheet order follows key order
// in the text.
func Parse(raw string) (layout.LayoutOutput, error) {
	text := strings.TrimSpace(raw)

	// A fence without a newline ("```json {...} ```") needs no stripping;
	// brace extraction below recovers the object on its own.
	if strings.HasPrefix(text, "```") {
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			text = strings.TrimSpace(text[i+1:])
			text = strings.TrimSuffix(text, "```")
			text = strings.TrimSpace(text)
		}
	}

	first := strings.IndexByte(text, '{')
	last := strings.LastIndexByte(text, '}')
	if first == -1 || last == -1 || last < first {
		return layout.LayoutOutput{}, fmt.Errorf("%w: %s", ErrNoJSONObject, snippet(text))
	}

	out, err := decodeMapping([]byte(text[first : last+1]))
	if err != nil {
		return layout.LayoutOutput{}, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}

	if err := layout.Validate(out); err != nil {
		return layout.LayoutOutput{}, err
	}
	return out, nil
}

// decodeMapping walks the object token by token so sheets come out in the
// order the producer wrote them; encoding/json maps would randomize it.
func decodeMapping(data []byte) (layout.LayoutOutput, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return layout.LayoutOutput{}, err
	}
	if tok != json.Delim('{') {
		return layout.LayoutOutput{}, fmt.Errorf("top-level value is %v, want an object", tok)
	}

	var out layout.LayoutOutput
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return layout.LayoutOutput{}, err
		}
		name, ok := keyTok.(string)
		if !ok {
			return layout.LayoutOutput{}, fmt.Errorf("sheet key is %v, want a string", keyTok)
		}

		var cells []layout.CellMapping
		if err := dec.Decode(&cells); err != nil {
			return layout.LayoutOutput{}, fmt.Errorf("sheet %q: %w", name, err)
		}
		out.Sheets = append(out.Sheets, layout.Sheet{Name: name, Cells: cells})
	}
	if _, err := dec.Token(); err != nil { // closing }
		return layout.LayoutOutput{}, err
	}
	return out, nil
}

// snippet trims the offending text for error messages.
func snippet(text string) string {
	const max = 80
	text = strings.TrimSpace(text)
	if text == "" {
		return "(empty input)"
	}
	if len(text) > max {
		return fmt.Sprintf("%q...", text[:max])
	}
	return fmt.Sprintf("%q", text)
}
