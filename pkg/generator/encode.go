package generator

import (
	"bytes"
	"encoding/json"
)

// EncodeJSON renders an example value as compact JSON without HTML escaping.
func EncodeJSON(content any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(content); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
