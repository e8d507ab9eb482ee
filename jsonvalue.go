package htmlsafe

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
)

// EscapeJSONStrings re-encodes a JSON document with every string value
// and object key HTML-escaped, for APIs whose JSON payloads end up
// interpolated into HTML. Numbers, booleans, and nulls are untouched.
// Malformed JSON yields a parse_error issue.
//
// The output is encoded with JSON-level HTML escaping disabled so the
// produced entities stay readable rather than being re-encoded as
// \u0026 sequences.
func EscapeJSONStrings(data []byte) ([]byte, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, singleIssue(CodeParseError, fmt.Sprintf("json: %v", err), nil)
	}
	return MarshalJSON(escapeJSONValue(v))
}

// MarshalJSON encodes v with goccy/go-json and JSON-level HTML escaping
// disabled, the encoding the rest of the package expects.
func MarshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, singleIssue(CodeParseError, fmt.Sprintf("json: %v", err), nil)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func escapeJSONValue(v any) any {
	switch t := v.(type) {
	case string:
		return Escape(t)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[Escape(k)] = escapeJSONValue(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = escapeJSONValue(e)
		}
		return out
	default:
		return v
	}
}
