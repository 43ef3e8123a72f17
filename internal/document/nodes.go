package document

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// MappingValue returns the value stored under key in a mapping node, nil when absent.
func MappingValue(node *yaml.Node, key string) *yaml.Node {
	node = deref(node)
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

// SetMappingValue replaces the value under key or appends the pair when absent.
func SetMappingValue(node *yaml.Node, key string, value *yaml.Node) {
	if node == nil || node.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			node.Content[i+1] = value
			return
		}
	}
	node.Content = append(node.Content, NewStringNode(key), value)
}

// DeleteMappingKey removes key from a mapping node and reports whether it was present.
func DeleteMappingKey(node *yaml.Node, key string) bool {
	if node == nil || node.Kind != yaml.MappingNode {
		return false
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			node.Content = append(node.Content[:i], node.Content[i+2:]...)
			return true
		}
	}
	return false
}

// MappingKeys returns the keys of a mapping node in declaration order.
func MappingKeys(node *yaml.Node) []string {
	node = deref(node)
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	keys := make([]string, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keys = append(keys, node.Content[i].Value)
	}
	return keys
}

// ScalarString returns the text of a scalar node.
func ScalarString(node *yaml.Node) (string, bool) {
	node = deref(node)
	if node == nil || node.Kind != yaml.ScalarNode || node.ShortTag() == "!!null" {
		return "", false
	}
	return node.Value, true
}

// ScalarFloat returns the numeric value of an int or float scalar node.
func ScalarFloat(node *yaml.Node) (float64, bool) {
	node = deref(node)
	if node == nil || node.Kind != yaml.ScalarNode {
		return 0, false
	}
	switch node.ShortTag() {
	case "!!int", "!!float":
		f, err := strconv.ParseFloat(node.Value, 64)
		return f, err == nil
	}
	return 0, false
}

// StringSlice returns the string items of a sequence node, skipping non-scalars.
func StringSlice(node *yaml.Node) []string {
	node = deref(node)
	if node == nil || node.Kind != yaml.SequenceNode {
		return nil
	}
	res := make([]string, 0, len(node.Content))
	for _, item := range node.Content {
		if s, ok := ScalarString(item); ok {
			res = append(res, s)
		}
	}
	return res
}

// NewStringNode creates a string scalar node.
func NewStringNode(value string) *yaml.Node {
	node := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
	if strings.Contains(value, "\n") {
		node.Style = yaml.LiteralStyle
	}
	return node
}

// NewMappingNode creates a mapping node from alternating keys and values.
func NewMappingNode(pairs ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Content: pairs}
}

// NewSequenceNode creates a sequence node.
func NewSequenceNode(items ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Content: items}
}

func deref(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if node != nil && node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		return node.Content[0]
	}
	return node
}
