package generator

import (
	"strings"

	"github.com/widgetic/apidocs/internal/types"
	"github.com/widgetic/apidocs/pkg/schema"
	"gopkg.in/yaml.v3"
)

// nameHints map parameter name substrings to canned values.
// Checked in order, case-sensitive.
var nameHints = []struct {
	substr string
	value  string
}{
	{"id", "abc123"},
	{"table", "my_table"},
	{"feature", "my_feature"},
}

// ParamValue returns the example text for a parameter.
// An explicit example on the parameter or its schema wins, then the name
// heuristic, then the declared schema type.
func ParamValue(name string, example *yaml.Node, s *schema.Schema) string {
	if v, ok := scalarText(example); ok {
		return v
	}
	if s != nil && !s.Malformed {
		if v, ok := scalarText(s.Example); ok {
			return v
		}
	}

	for _, hint := range nameHints {
		if strings.Contains(name, hint.substr) {
			return hint.value
		}
	}

	if s == nil {
		return Placeholder
	}

	switch s.Type {
	case types.TypeInteger:
		return "1"
	case types.TypeNumber:
		return "1.0"
	case types.TypeBoolean:
		return "true"
	}

	return Placeholder
}
