package document

import (
	"testing"

	assert2 "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEncodeJSON(t *testing.T) {
	assert := assert2.New(t)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"order", `{"b": 1, "a": 2}`, `{"b":1,"a":2}`},
		{"nested", `{"a": [1, {"x": null}, true]}`, `{"a":[1,{"x":null},true]}`},
		{"quoted-number-stays-string", `{"a": "123"}`, `{"a":"123"}`},
		{"float-text", `{"a": 1.50}`, `{"a":1.50}`},
		{"html-not-escaped", `{"a": "<b>&</b>"}`, `{"a":"<b>&</b>"}`},
		{"unicode", `{"a": "café"}`, `{"a":"café"}`},
		{"escapes", `{"a": "line\nbreak \"q\""}`, `{"a":"line\nbreak \"q\""}`},
		{"empty-containers", `{"a": {}, "b": []}`, `{"a":{},"b":[]}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var node yaml.Node
			require.NoError(t, yaml.Unmarshal([]byte(tc.input), &node))

			res, err := EncodeJSON(&node)
			assert.NoError(err)
			assert.Equal(tc.expected, string(res))
		})
	}
}

func TestEncodeJSON_YAMLScalars(t *testing.T) {
	var node yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte("a: yes\nc: ~\nd: 2024-01-01\n"), &node))

	res, err := EncodeJSON(&node)
	assert2.NoError(t, err)
	assert2.Equal(t, `{"a":"yes","c":null,"d":"2024-01-01"}`, string(res))
}

func TestEncodeJSON_Numbers(t *testing.T) {
	assert := assert2.New(t)

	t.Run("json-overflowing-float-kept", func(t *testing.T) {
		doc, err := Parse([]byte(`{"b":1e400}`))
		require.NoError(t, err)

		res, err := doc.Compact()
		assert.NoError(err)
		assert.Equal(`{"b":1e400}`, string(res))
	})

	t.Run("yaml-spellings", func(t *testing.T) {
		doc, err := Parse([]byte("a: 0x1F\nb: +1\nc: 1_000\n"))
		require.NoError(t, err)

		res, err := doc.Compact()
		assert.NoError(err)
		assert.Equal(`{"a":31,"b":1,"c":1000}`, string(res))
	})

	t.Run("yaml-infinity", func(t *testing.T) {
		doc, err := Parse([]byte("a: 1\nb: .inf\n"))
		require.NoError(t, err)

		_, err = doc.Compact()
		assert.ErrorIs(err, ErrInvalidNumber)
		assert.Contains(err.Error(), "line 2")
	})

	t.Run("yaml-nan", func(t *testing.T) {
		doc, err := Parse([]byte("a: .nan\n"))
		require.NoError(t, err)

		_, err = doc.Compact()
		assert.ErrorIs(err, ErrInvalidNumber)
	})
}

func TestEncodeIndentedJSON(t *testing.T) {
	var node yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(`{"b": [1], "a": {}}`), &node))

	res, err := EncodeIndentedJSON(&node)
	assert2.NoError(t, err)
	assert2.Equal(t, "{\n  \"b\": [\n    1\n  ],\n  \"a\": {}\n}\n", string(res))
}

func TestNewNodes(t *testing.T) {
	node := NewMappingNode(
		NewStringNode("lang"), NewStringNode("shell"),
		NewStringNode("source"), NewStringNode("curl \\\n  -X GET"),
	)

	res, err := EncodeJSON(NewSequenceNode(node))
	assert2.NoError(t, err)
	assert2.Equal(t, `[{"lang":"shell","source":"curl \\\n  -X GET"}]`, string(res))
}
