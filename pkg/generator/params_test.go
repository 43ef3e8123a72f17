package generator

import (
	"testing"

	assert2 "github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestParamValue(t *testing.T) {
	assert := assert2.New(t)

	tests := []struct {
		name     string
		param    string
		example  string
		schema   string
		expected string
	}{
		{name: "userId without example or type", param: "userId", expected: "example"},
		{name: "tableName", param: "tableName", expected: "my_table"},
		{name: "integer without example", param: "count", schema: `{"type": "integer"}`, expected: "1"},
		{name: "number", param: "ratio", schema: `{"type": "number"}`, expected: "1.0"},
		{name: "boolean", param: "active", schema: `{"type": "boolean"}`, expected: "true"},
		{name: "string", param: "q", schema: `{"type": "string"}`, expected: "example"},
		{name: "lowercase id", param: "widget_id", schema: `{"type": "integer"}`, expected: "abc123"},
		{name: "feature", param: "featureFlag", expected: "my_feature"},
		{name: "param example wins", param: "tableName", example: `"users"`, expected: "users"},
		{name: "schema example wins", param: "id", schema: `{"type": "integer", "example": 42}`, expected: "42"},
		{name: "param example over schema example", param: "x", example: `7`, schema: `{"example": 42}`, expected: "7"},
		{name: "null example ignored", param: "limit", example: `null`, schema: `{"type": "integer"}`, expected: "1"},
		{name: "object example as json", param: "filter", example: `{"a": 1}`, expected: `{"a":1}`},
		{name: "malformed schema", param: "q", schema: `"string"`, expected: "example"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var example *yaml.Node
			if tc.example != "" {
				example = node(t, tc.example)
			}
			s := createSchemaFromStringOrNil(t, tc.schema)
			assert.Equal(tc.expected, ParamValue(tc.param, example, s))
		})
	}
}
