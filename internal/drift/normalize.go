package drift

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/widgetic/apidocs/internal/document"
	"gopkg.in/yaml.v3"
)

// Normalize renders JSON content compactly with the ignored keys removed.
// Objects are compared by content unless strictOrder keeps the document's
// key order and number text.
func Normalize(content []byte, ignore []string, strictOrder bool) ([]byte, error) {
	if strictOrder {
		doc, err := document.Parse(content)
		if err != nil {
			return nil, err
		}
		stripNode(doc.Root(), toSet(ignore))
		return doc.Compact()
	}

	value, err := decode(content, ignore)
	if err != nil {
		return nil, err
	}
	return json.Marshal(value)
}

// numberPrecision is wide enough that distinct integers and decimals of
// realistic length never round to the same value.
const numberPrecision = 512

// decode parses content into generic values with the ignored keys removed.
// Numbers stay json.Number in canonical form, so 1.0 equals 1 while large
// integers keep every digit.
func decode(content []byte, ignore []string) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, fmt.Errorf("parsing json: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("parsing json: unexpected data after the document")
	}
	return stripValue(value, toSet(ignore)), nil
}

// canonicalNumber renders integers in plain digits and other numbers as the
// shortest decimal of their value.
func canonicalNumber(n json.Number) json.Number {
	f, _, err := big.ParseFloat(n.String(), 10, numberPrecision, big.ToNearestEven)
	if err != nil {
		return n
	}
	if f.IsInt() {
		i, _ := f.Int(nil)
		return json.Number(i.String())
	}
	return json.Number(f.Text('g', -1))
}

func stripValue(value any, ignore map[string]bool) any {
	switch v := value.(type) {
	case map[string]any:
		for key, item := range v {
			if ignore[key] {
				delete(v, key)
				continue
			}
			v[key] = stripValue(item, ignore)
		}
	case []any:
		for i, item := range v {
			v[i] = stripValue(item, ignore)
		}
	case json.Number:
		return canonicalNumber(v)
	}
	return value
}

func stripNode(node *yaml.Node, ignore map[string]bool) {
	if node == nil {
		return
	}
	if node.Kind == yaml.MappingNode {
		for key := range ignore {
			document.DeleteMappingKey(node, key)
		}
		for i := 1; i < len(node.Content); i += 2 {
			stripNode(node.Content[i], ignore)
		}
		return
	}
	for _, child := range node.Content {
		stripNode(child, ignore)
	}
}

func toSet(keys []string) map[string]bool {
	res := make(map[string]bool, len(keys))
	for _, k := range keys {
		res[k] = true
	}
	return res
}
