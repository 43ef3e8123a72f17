package schema

import (
	"log/slog"

	"github.com/widgetic/apidocs/internal/document"
	"github.com/widgetic/apidocs/internal/types"
	"gopkg.in/yaml.v3"
)

// MaxConvertDepth bounds the conversion of nested and recursive schemas.
const MaxConvertDepth = 8

// NewSchemaFromNode converts a schema node, resolving local references against doc.
// Nodes that are not schema objects produce a Malformed schema instead of an error.
func NewSchemaFromNode(doc *document.Document, node *yaml.Node) *Schema {
	return newSchemaFromNode(doc, node, 0)
}

func newSchemaFromNode(doc *document.Document, node *yaml.Node, depth int) *Schema {
	if node == nil {
		return nil
	}

	if depth > MaxConvertDepth {
		return &Schema{Truncated: true}
	}

	resolved := node
	if doc != nil {
		r, err := doc.ResolveNode(node)
		if err != nil {
			slog.Debug("malformed schema node", "line", node.Line, "error", err)
			return &Schema{Malformed: true}
		}
		resolved = r
	}

	if resolved == nil || resolved.Kind != yaml.MappingNode {
		slog.Debug("malformed schema node", "line", node.Line, "kind", node.Kind)
		return &Schema{Malformed: true}
	}

	res := &Schema{
		Type:    schemaType(document.MappingValue(resolved, "type")),
		Example: document.MappingValue(resolved, "example"),
	}
	res.Format, _ = document.ScalarString(document.MappingValue(resolved, "format"))
	res.Required = document.StringSlice(document.MappingValue(resolved, "required"))

	if minimum, ok := document.ScalarFloat(document.MappingValue(resolved, "minimum")); ok {
		res.Minimum = &minimum
	}

	if enum := document.MappingValue(resolved, "enum"); enum != nil && enum.Kind == yaml.SequenceNode {
		res.Enum = enum.Content
	}

	if props := document.MappingValue(resolved, "properties"); props != nil && props.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(props.Content); i += 2 {
			res.Properties = append(res.Properties, &Property{
				Name:   props.Content[i].Value,
				Schema: newSchemaFromNode(doc, props.Content[i+1], depth+1),
			})
		}
	}

	if items := document.MappingValue(resolved, "items"); items != nil {
		res.Items = newSchemaFromNode(doc, items, depth+1)
	}

	if allOf := document.MappingValue(resolved, "allOf"); allOf != nil && allOf.Kind == yaml.SequenceNode {
		for _, part := range allOf.Content {
			merge(res, newSchemaFromNode(doc, part, depth+1))
		}
	}

	for _, key := range []string{"oneOf", "anyOf"} {
		branches := document.MappingValue(resolved, key)
		if branches != nil && branches.Kind == yaml.SequenceNode && len(branches.Content) > 0 {
			merge(res, newSchemaFromNode(doc, branches.Content[0], depth+1))
			break
		}
	}

	if res.Type == "" {
		switch {
		case len(res.Properties) > 0:
			res.Type = types.TypeObject
		case res.Items != nil:
			res.Type = types.TypeArray
		}
	}

	return res
}

// schemaType reads "type", which is a list in OpenAPI 3.1.
// The first non-null entry wins.
func schemaType(node *yaml.Node) string {
	if s, ok := document.ScalarString(node); ok {
		return s
	}
	for _, t := range document.StringSlice(node) {
		if t != "null" {
			return t
		}
	}
	return ""
}

// merge folds src into dst: dst keeps its own scalar fields, properties and
// required names are appended when not yet present.
func merge(dst, src *Schema) {
	if src == nil || src.Malformed || src.Truncated {
		return
	}

	if dst.Type == "" {
		dst.Type = src.Type
	}
	if dst.Format == "" {
		dst.Format = src.Format
	}
	if dst.Example == nil {
		dst.Example = src.Example
	}
	if dst.Minimum == nil {
		dst.Minimum = src.Minimum
	}
	if dst.Items == nil {
		dst.Items = src.Items
	}
	if len(dst.Enum) == 0 {
		dst.Enum = src.Enum
	}

	for _, p := range src.Properties {
		if dst.Property(p.Name) == nil {
			dst.Properties = append(dst.Properties, p)
		}
	}
	for _, r := range src.Required {
		if !dst.IsRequired(r) {
			dst.Required = append(dst.Required, r)
		}
	}
}
