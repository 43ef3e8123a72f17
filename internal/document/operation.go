package document

import (
	"strings"

	"github.com/widgetic/apidocs/internal/types"
	"gopkg.in/yaml.v3"
)

// Operation is one HTTP method of one path item.
type Operation struct {
	Path     string
	Method   string
	Node     *yaml.Node
	PathItem *yaml.Node

	doc *Document
}

// Document returns the document the operation belongs to.
func (op *Operation) Document() *Document {
	return op.doc
}

// ID returns the operationId, empty when not set.
func (op *Operation) ID() string {
	id, _ := ScalarString(MappingValue(op.Node, "operationId"))
	return id
}

// Tags returns the operation tags in declaration order.
func (op *Operation) Tags() []string {
	return StringSlice(MappingValue(op.Node, "tags"))
}

// StringExtension returns a string extension value, or def when absent.
func (op *Operation) StringExtension(key, def string) string {
	if v, ok := ScalarString(MappingValue(op.Node, key)); ok && v != "" {
		return v
	}
	return def
}

// Extension returns the raw extension node.
func (op *Operation) Extension(key string) *yaml.Node {
	return MappingValue(op.Node, key)
}

// SetExtension stores value under key, replacing any previous value in place.
func (op *Operation) SetExtension(key string, value *yaml.Node) {
	SetMappingValue(op.Node, key, value)
}

// DeleteExtension removes key and reports whether it was present.
func (op *Operation) DeleteExtension(key string) bool {
	return DeleteMappingKey(op.Node, key)
}

// Parameters returns the resolved parameters of the operation.
// Path item level parameters come first unless the operation overrides them
// by name and location. Unresolvable references are skipped.
func (op *Operation) Parameters() []*Parameter {
	own := op.resolveParameters(MappingValue(op.Node, "parameters"))

	overridden := make(map[string]bool, len(own))
	for _, p := range own {
		overridden[p.key()] = true
	}

	var res []*Parameter
	for _, p := range op.resolveParameters(MappingValue(op.PathItem, "parameters")) {
		if !overridden[p.key()] {
			res = append(res, p)
		}
	}

	return append(res, own...)
}

// ParametersIn returns the parameters located in the given place.
func (op *Operation) ParametersIn(in string) []*Parameter {
	var res []*Parameter
	for _, p := range op.Parameters() {
		if p.In == in {
			res = append(res, p)
		}
	}
	return res
}

// RequestBody returns the resolved requestBody node, nil when absent.
func (op *Operation) RequestBody() *yaml.Node {
	body := MappingValue(op.Node, "requestBody")
	if body == nil {
		return nil
	}
	resolved, err := op.doc.ResolveNode(body)
	if err != nil {
		return nil
	}
	return resolved
}

func (op *Operation) resolveParameters(list *yaml.Node) []*Parameter {
	list = deref(list)
	if list == nil || list.Kind != yaml.SequenceNode {
		return nil
	}

	var res []*Parameter
	for _, item := range list.Content {
		node, err := op.doc.ResolveNode(item)
		if err != nil || node == nil || node.Kind != yaml.MappingNode {
			continue
		}
		name, _ := ScalarString(MappingValue(node, "name"))
		in, _ := ScalarString(MappingValue(node, "in"))
		if name == "" {
			continue
		}
		res = append(res, &Parameter{
			Name: name,
			In:   strings.ToLower(in),
			Node: node,
		})
	}
	return res
}

// Parameter is a resolved operation parameter.
type Parameter struct {
	Name string
	In   string
	Node *yaml.Node
}

// Example returns the parameter level example node.
func (p *Parameter) Example() *yaml.Node {
	return MappingValue(p.Node, "example")
}

// Schema returns the parameter schema node.
func (p *Parameter) Schema() *yaml.Node {
	return MappingValue(p.Node, "schema")
}

func (p *Parameter) key() string {
	return p.In + ":" + p.Name
}

func isOperationKey(key string) bool {
	return types.IsHTTPMethod(key)
}
