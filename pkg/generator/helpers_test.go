package generator

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/widgetic/apidocs/internal/document"
	"github.com/widgetic/apidocs/pkg/schema"
	"gopkg.in/yaml.v3"
)

func parseDoc(t *testing.T, content string) *document.Document {
	t.Helper()
	doc, err := document.Parse([]byte(content))
	require.NoError(t, err)
	return doc
}

func findOp(t *testing.T, doc *document.Document, method, path string) *document.Operation {
	t.Helper()
	for _, op := range doc.Operations() {
		if op.Method == method && op.Path == path {
			return op
		}
	}
	t.Fatalf("operation %s %s not found", method, path)
	return nil
}

func createSchemaFromString(t *testing.T, value string) *schema.Schema {
	t.Helper()
	var node yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(value), &node))
	return schema.NewSchemaFromNode(nil, node.Content[0])
}

func node(t *testing.T, value string) *yaml.Node {
	t.Helper()
	var n yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(value), &n))
	return n.Content[0]
}

func createSchemaFromStringOrNil(t *testing.T, value string) *schema.Schema {
	t.Helper()
	if value == "" {
		return nil
	}
	return createSchemaFromString(t, value)
}
