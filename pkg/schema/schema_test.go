package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchema_IsRequired(t *testing.T) {
	s := &Schema{Required: []string{"name"}}
	assert.True(t, s.IsRequired("name"))
	assert.False(t, s.IsRequired("color"))
}

func TestSchema_Property(t *testing.T) {
	name := &Schema{Type: "string"}
	s := &Schema{Properties: []*Property{{Name: "name", Schema: name}}}

	assert.Same(t, name, s.Property("name"))
	assert.Nil(t, s.Property("color"))
}

func TestSchema_HasExample(t *testing.T) {
	var s *Schema
	assert.False(t, s.HasExample())
	assert.False(t, (&Schema{}).HasExample())
}
