package generator

import (
	"testing"

	assert2 "github.com/stretchr/testify/assert"
)

func TestGenerateContentFromSchema(t *testing.T) {
	assert := assert2.New(t)

	t.Run("required plus two optional in declaration order", func(t *testing.T) {
		s := createSchemaFromString(t, `{
			"type": "object",
			"required": ["name"],
			"properties": {
				"name": {"type": "string"},
				"color": {"type": "string"},
				"size": {"type": "string"},
				"weight": {"type": "integer"}
			}
		}`)

		res := GenerateContentFromSchema(s).(Object)
		assert.Equal([]string{"name", "color", "size"}, res.Keys())
	})

	t.Run("required declared last still included", func(t *testing.T) {
		s := createSchemaFromString(t, `{
			"type": "object",
			"required": ["d", "e"],
			"properties": {
				"a": {"type": "string"},
				"b": {"type": "string"},
				"c": {"type": "string"},
				"d": {"type": "string"},
				"e": {"type": "string"}
			}
		}`)

		res := GenerateContentFromSchema(s).(Object)
		assert.Equal([]string{"a", "b", "d", "e"}, res.Keys())
	})

	t.Run("never more than four keys when few are required", func(t *testing.T) {
		s := createSchemaFromString(t, `{
			"type": "object",
			"required": ["a", "b", "c"],
			"properties": {
				"a": {"type": "string"},
				"b": {"type": "string"},
				"c": {"type": "string"},
				"x": {"type": "string"},
				"y": {"type": "string"}
			}
		}`)

		res := GenerateContentFromSchema(s).(Object)
		assert.Equal([]string{"a", "b", "c", "x"}, res.Keys())
	})

	t.Run("depth cap returns empty object", func(t *testing.T) {
		s := createSchemaFromString(t, `{
			"type": "object", "required": ["a"],
			"properties": {"a": {"type": "object", "required": ["b"],
				"properties": {"b": {"type": "object", "required": ["c"],
					"properties": {"c": {"type": "object", "required": ["d"],
						"properties": {"d": {"type": "string"}}}}}}}}
		}`)

		res := GenerateContentFromSchema(s).(Object)
		a, _ := res.Get("a")
		b, _ := a.(Object).Get("b")
		c, _ := b.(Object).Get("c")
		d, _ := c.(Object).Get("d")
		assert.Equal(Object{}, d)
	})

	t.Run("array has one item", func(t *testing.T) {
		s := createSchemaFromString(t, `{"type": "array", "items": {"type": "integer"}}`)
		assert.Equal([]any{int64(1)}, GenerateContentFromSchema(s))
	})

	t.Run("array without items", func(t *testing.T) {
		s := createSchemaFromString(t, `{"type": "array"}`)
		assert.Equal([]any{"example"}, GenerateContentFromSchema(s))
	})

	t.Run("scalars", func(t *testing.T) {
		tests := []struct {
			schema   string
			expected any
		}{
			{`{"type": "string", "format": "uuid"}`, "123e4567-e89b-12d3-a456-426614174000"},
			{`{"type": "string", "format": "email"}`, "user@example.com"},
			{`{"type": "string", "format": "uri"}`, "https://example.com"},
			{`{"type": "string", "enum": ["draft", "live"]}`, "draft"},
			{`{"type": "string", "format": "uuid", "enum": ["w-1", "w-2"]}`, "w-1"},
			{`{"type": "string"}`, "example"},
			{`{"type": "integer"}`, int64(1)},
			{`{"type": "integer", "minimum": 10}`, int64(10)},
			{`{"type": "number"}`, 1.0},
			{`{"type": "number", "minimum": 0.5}`, 0.5},
			{`{"type": "boolean"}`, true},
			{`{"type": "string", "example": "hello"}`, "hello"},
			{`{}`, "example"},
			{`"not a schema"`, "example"},
		}

		for _, tc := range tests {
			s := createSchemaFromString(t, tc.schema)
			assert.Equal(tc.expected, GenerateContentFromSchema(s), tc.schema)
		}
	})

	t.Run("object example keeps order", func(t *testing.T) {
		s := createSchemaFromString(t, `{"type": "object", "example": {"z": 1, "a": [true, null]}}`)
		assert.Equal(Object{{Key: "z", Value: int64(1)}, {Key: "a", Value: []any{true, nil}}}, GenerateContentFromSchema(s))
	})

	t.Run("fake formats are stable", func(t *testing.T) {
		s := createSchemaFromString(t, `{"type": "object", "properties": {
			"createdAt": {"type": "string", "format": "date-time"},
			"day": {"type": "string", "format": "date"}
		}}`)

		first, err := EncodeJSON(GenerateContentFromSchema(s))
		assert.NoError(err)
		second, err := EncodeJSON(GenerateContentFromSchema(s))
		assert.NoError(err)
		assert.Equal(string(first), string(second))

		res := GenerateContentFromSchema(s).(Object)
		day, _ := res.Get("day")
		assert.Regexp(`^202[45]-\d{2}-\d{2}$`, day)
	})

	t.Run("nil schema", func(t *testing.T) {
		assert.Equal("example", GenerateContentFromSchema(nil))
	})
}

const bodyDoc = `{
  "paths": {
    "/widgets": {
      "post": {
        "requestBody": {"$ref": "#/components/requestBodies/Widget"}
      },
      "put": {
        "requestBody": {
          "content": {
            "application/json": {
              "schema": {"$ref": "#/components/schemas/Widget"},
              "example": {"name": "from media"}
            }
          }
        }
      },
      "patch": {
        "requestBody": {
          "content": {
            "application/json": {
              "examples": {
                "first": {"$ref": "#/components/examples/Patch"},
                "second": {"value": {"name": "second"}}
              }
            }
          }
        }
      },
      "get": {
        "requestBody": {"$ref": "#/components/requestBodies/Widget"}
      }
    },
    "/forms": {
      "post": {
        "requestBody": {
          "content": {
            "application/x-www-form-urlencoded": {
              "schema": {"type": "object", "properties": {"field": {"type": "boolean"}}}
            }
          }
        }
      },
      "put": {}
    }
  },
  "components": {
    "requestBodies": {
      "Widget": {
        "content": {
          "application/json": {"schema": {"$ref": "#/components/schemas/Widget"}}
        }
      }
    },
    "examples": {
      "Patch": {"value": {"name": "patched"}}
    },
    "schemas": {
      "Widget": {
        "type": "object",
        "required": ["name"],
        "properties": {
          "name": {"type": "string"},
          "ownerId": {"type": "string", "format": "uuid"},
          "tags": {"type": "array", "items": {"type": "string"}}
        }
      }
    }
  }
}`

func TestExampleBody(t *testing.T) {
	assert := assert2.New(t)
	doc := parseDoc(t, bodyDoc)

	t.Run("synthesized through refs", func(t *testing.T) {
		body, ok := ExampleBody(findOp(t, doc, "post", "/widgets"))
		assert.True(ok)

		res, err := EncodeJSON(body)
		assert.NoError(err)
		assert.Equal(`{"name":"example","ownerId":"123e4567-e89b-12d3-a456-426614174000","tags":["example"]}`, string(res))
	})

	t.Run("media example wins", func(t *testing.T) {
		body, ok := ExampleBody(findOp(t, doc, "put", "/widgets"))
		assert.True(ok)
		assert.Equal(Object{{Key: "name", Value: "from media"}}, body)
	})

	t.Run("first named example", func(t *testing.T) {
		body, ok := ExampleBody(findOp(t, doc, "patch", "/widgets"))
		assert.True(ok)
		assert.Equal(Object{{Key: "name", Value: "patched"}}, body)
	})

	t.Run("read operation has no body", func(t *testing.T) {
		_, ok := ExampleBody(findOp(t, doc, "get", "/widgets"))
		assert.False(ok)
	})

	t.Run("first media type when no json", func(t *testing.T) {
		body, ok := ExampleBody(findOp(t, doc, "post", "/forms"))
		assert.True(ok)
		assert.Equal(Object{{Key: "field", Value: true}}, body)
	})

	t.Run("no request body", func(t *testing.T) {
		_, ok := ExampleBody(findOp(t, doc, "put", "/forms"))
		assert.False(ok)
	})
}

func TestObject_MarshalJSON(t *testing.T) {
	obj := Object{{Key: "b", Value: "<x>"}, {Key: "a", Value: Object{}}}
	res, err := EncodeJSON(obj)
	assert2.NoError(t, err)
	assert2.Equal(t, `{"b":"<x>","a":{}}`, string(res))
}
