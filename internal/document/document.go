// Package document holds an OpenAPI document as an ordered node tree.
// Mutations touch only the nodes they target, so a rewritten file keeps
// the key order and number formatting of the source.
package document

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/widgetic/apidocs/internal/files"
	"gopkg.in/yaml.v3"
)

// Document is an OpenAPI document backed by a yaml.v3 node tree.
// JSON and YAML sources load into the same model.
type Document struct {
	root *yaml.Node
}

// Parse parses a JSON (or YAML) document.
func Parse(content []byte) (*Document, error) {
	var node *yaml.Node
	if json.Valid(content) {
		parsed, err := parseJSON(content)
		if err != nil {
			return nil, fmt.Errorf("parsing document: %w", err)
		}
		node = parsed
	} else {
		node = &yaml.Node{}
		if err := yaml.Unmarshal(content, node); err != nil {
			return nil, fmt.Errorf("parsing document: %w", err)
		}
	}

	root := deref(node)
	if root == nil || root.Kind != yaml.MappingNode {
		return nil, ErrInvalidDocument
	}

	return &Document{root: root}, nil
}

// Load reads and parses the document stored at path.
func Load(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(content)
}

// Root returns the top-level mapping node.
func (d *Document) Root() *yaml.Node {
	return d.root
}

// Bytes renders the document as indented JSON.
func (d *Document) Bytes() ([]byte, error) {
	return EncodeIndentedJSON(d.root)
}

// Compact renders the document as JSON without insignificant whitespace.
func (d *Document) Compact() ([]byte, error) {
	return EncodeJSON(d.root)
}

// Save writes the document as indented JSON, creating parent directories.
func (d *Document) Save(path string) error {
	content, err := d.Bytes()
	if err != nil {
		return err
	}
	return files.SaveFile(path, content)
}

// Resolve follows a local JSON reference like "#/components/schemas/Widget".
func (d *Document) Resolve(ref string) (*yaml.Node, error) {
	if !strings.HasPrefix(ref, "#/") {
		return nil, fmt.Errorf("%w: %s", ErrUnresolvedRef, ref)
	}

	node := d.root
	for _, token := range strings.Split(strings.TrimPrefix(ref, "#/"), "/") {
		token = strings.ReplaceAll(token, "~1", "/")
		token = strings.ReplaceAll(token, "~0", "~")

		node = deref(node)
		switch {
		case node == nil:
			return nil, fmt.Errorf("%w: %s", ErrUnresolvedRef, ref)
		case node.Kind == yaml.MappingNode:
			node = MappingValue(node, token)
		case node.Kind == yaml.SequenceNode:
			var idx int
			if _, err := fmt.Sscanf(token, "%d", &idx); err != nil || idx < 0 || idx >= len(node.Content) {
				return nil, fmt.Errorf("%w: %s", ErrUnresolvedRef, ref)
			}
			node = node.Content[idx]
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnresolvedRef, ref)
		}
	}

	if node == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnresolvedRef, ref)
	}
	return node, nil
}

// ResolveNode returns the target of a {"$ref": ...} node, or the node itself.
// Chained references are followed up to a fixed number of hops.
func (d *Document) ResolveNode(node *yaml.Node) (*yaml.Node, error) {
	node = deref(node)
	for hops := 0; hops < 16; hops++ {
		ref, ok := ScalarString(MappingValue(node, "$ref"))
		if !ok {
			return node, nil
		}
		next, err := d.Resolve(ref)
		if err != nil {
			return nil, err
		}
		node = deref(next)
	}
	return nil, fmt.Errorf("%w: reference chain too long", ErrUnresolvedRef)
}

// Operations returns every operation of the document in declaration order.
// Only HTTP method keys are operations; "parameters" and other path item
// fields are skipped.
func (d *Document) Operations() []*Operation {
	paths := MappingValue(d.root, "paths")
	if paths == nil || paths.Kind != yaml.MappingNode {
		return nil
	}

	var res []*Operation
	for i := 0; i+1 < len(paths.Content); i += 2 {
		path := paths.Content[i].Value
		item := deref(paths.Content[i+1])
		if item == nil || item.Kind != yaml.MappingNode {
			continue
		}

		for j := 0; j+1 < len(item.Content); j += 2 {
			method := item.Content[j].Value
			if !isOperationKey(method) {
				continue
			}
			node := deref(item.Content[j+1])
			if node == nil || node.Kind != yaml.MappingNode {
				continue
			}
			res = append(res, &Operation{
				Path:     path,
				Method:   strings.ToLower(method),
				Node:     node,
				PathItem: item,
				doc:      d,
			})
		}
	}

	return res
}

// FindOperation returns the operation with the given operationId.
func (d *Document) FindOperation(operationID string) *Operation {
	for _, op := range d.Operations() {
		if op.ID() == operationID {
			return op
		}
	}
	return nil
}

// Servers returns the server URLs declared at the document root.
func (d *Document) Servers() []string {
	servers := MappingValue(d.root, "servers")
	if servers == nil || servers.Kind != yaml.SequenceNode {
		return nil
	}
	var res []string
	for _, s := range servers.Content {
		if u, ok := ScalarString(MappingValue(s, "url")); ok && u != "" {
			res = append(res, u)
		}
	}
	return res
}
