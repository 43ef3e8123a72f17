package generator

import (
	"bytes"
	"strconv"

	"github.com/widgetic/apidocs/internal/document"
	"gopkg.in/yaml.v3"
)

// Placeholder is the generic example value used when nothing better is known.
const Placeholder = "example"

// Object is an example object that keeps its keys in insertion order.
type Object []Field

// Field is one key of an Object.
type Field struct {
	Key   string
	Value any
}

// Get returns the value stored under key.
func (o Object) Get(key string) (any, bool) {
	for _, f := range o {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Keys returns the keys in order.
func (o Object) Keys() []string {
	keys := make([]string, len(o))
	for i, f := range o {
		keys[i] = f.Key
	}
	return keys
}

// MarshalJSON encodes the object keeping key order.
func (o Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := EncodeJSON(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		value, err := EncodeJSON(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ValueFromNode converts an example node into Object, []any or a scalar.
func ValueFromNode(node *yaml.Node) any {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil
		}
		return ValueFromNode(node.Content[0])
	case yaml.AliasNode:
		return ValueFromNode(node.Alias)
	case yaml.MappingNode:
		obj := make(Object, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			obj = append(obj, Field{Key: node.Content[i].Value, Value: ValueFromNode(node.Content[i+1])})
		}
		return obj
	case yaml.SequenceNode:
		arr := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			arr = append(arr, ValueFromNode(item))
		}
		return arr
	}

	switch node.ShortTag() {
	case "!!null":
		return nil
	case "!!bool":
		if b, err := strconv.ParseBool(node.Value); err == nil {
			return b
		}
	case "!!int":
		if i, err := strconv.ParseInt(node.Value, 10, 64); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(node.Value, 64); err == nil {
			return f
		}
	case "!!float":
		if f, err := strconv.ParseFloat(node.Value, 64); err == nil {
			return f
		}
	}

	return node.Value
}

// scalarText returns the text of an example node as it would appear in a URL.
// Non-scalar examples are rendered as compact JSON.
func scalarText(node *yaml.Node) (string, bool) {
	if node == nil {
		return "", false
	}
	if node.Kind == yaml.ScalarNode {
		if node.ShortTag() == "!!null" {
			return "", false
		}
		return node.Value, true
	}
	res, err := document.EncodeJSON(node)
	if err != nil {
		return "", false
	}
	return string(res), true
}
