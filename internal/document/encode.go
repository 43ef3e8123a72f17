package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// EncodeJSON writes a node tree as compact JSON, keeping mapping key order
// and the original text of numbers.
func EncodeJSON(node *yaml.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeNode(&buf, node); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeIndentedJSON writes a node tree as JSON indented with two spaces and a trailing newline.
func EncodeIndentedJSON(node *yaml.Node) ([]byte, error) {
	compact, err := EncodeJSON(node)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

func encodeNode(buf *bytes.Buffer, node *yaml.Node) error {
	if node == nil {
		buf.WriteString("null")
		return nil
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			buf.WriteString("null")
			return nil
		}
		return encodeNode(buf, node.Content[0])

	case yaml.AliasNode:
		return encodeNode(buf, node.Alias)

	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(node.Content); i += 2 {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeString(buf, node.Content[i].Value)
			buf.WriteByte(':')
			if err := encodeNode(buf, node.Content[i+1]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil

	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, item := range node.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeNode(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil

	case yaml.ScalarNode:
		return encodeScalar(buf, node)
	}

	return fmt.Errorf("unsupported node kind %d at line %d", node.Kind, node.Line)
}

// encodeScalar writes numbers as written when that is valid JSON. YAML
// spellings (0x1F, +1, 1_000) are rewritten; infinities and NaN have no JSON
// form and fail with ErrInvalidNumber.
func encodeScalar(buf *bytes.Buffer, node *yaml.Node) error {
	switch node.ShortTag() {
	case "!!null":
		buf.WriteString("null")
	case "!!bool":
		if b, err := strconv.ParseBool(node.Value); err == nil {
			buf.WriteString(strconv.FormatBool(b))
			return nil
		}
		writeString(buf, node.Value)
	case "!!int", "!!float":
		if json.Valid([]byte(node.Value)) {
			buf.WriteString(node.Value)
			return nil
		}
		plain := strings.ReplaceAll(node.Value, "_", "")
		if i, err := strconv.ParseInt(plain, 0, 64); err == nil {
			buf.WriteString(strconv.FormatInt(i, 10))
			return nil
		}
		if f, err := strconv.ParseFloat(plain, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
			buf.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
			return nil
		}
		return fmt.Errorf("%w: %q at line %d", ErrInvalidNumber, node.Value, node.Line)
	default:
		writeString(buf, node.Value)
	}
	return nil
}

func writeString(buf *bytes.Buffer, s string) {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	// encoding a string never fails
	_ = enc.Encode(s)
	buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))
}
