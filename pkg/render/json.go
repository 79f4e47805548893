package render

import (
	"bytes"
	"encoding/json"

	jsoniter "github.com/json-iterator/go"
)

var jsonAPI = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

// JSON serializes structured config deterministically:
// two-space indent, sorted map keys, trailing newline.
func JSON(v interface{}) (string, error) {
	b, err := jsonAPI.Marshal(v)
	if err != nil {
		return "", err
	}

	// jsoniter does not indent nested sorted maps.
	var buf bytes.Buffer
	if err := json.Indent(&buf, b, "", "  "); err != nil {
		return "", err
	}
	buf.WriteByte('\n')

	return buf.String(), nil
}
