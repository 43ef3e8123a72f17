package schema

import "gopkg.in/yaml.v3"

// Schema is the subset of an OpenAPI schema needed to synthesize example values.
// Properties keep their declaration order.
type Schema struct {
	Type       string
	Format     string
	Properties []*Property
	Required   []string
	Items      *Schema
	Minimum    *float64

	// Example and Enum keep the raw nodes so that object examples
	// are rendered in the order they were written.
	Example *yaml.Node
	Enum    []*yaml.Node

	// Malformed marks a node that is not a schema object or whose
	// reference cannot be resolved. Generators fall back to a placeholder.
	Malformed bool

	// Truncated marks a schema cut at the conversion depth limit.
	Truncated bool
}

// Property is a named object property.
type Property struct {
	Name   string
	Schema *Schema
}

// IsRequired reports whether the property name is listed as required.
func (s *Schema) IsRequired(name string) bool {
	for _, r := range s.Required {
		if r == name {
			return true
		}
	}
	return false
}

// Property returns the property schema by name.
func (s *Schema) Property(name string) *Schema {
	for _, p := range s.Properties {
		if p.Name == name {
			return p.Schema
		}
	}
	return nil
}

// HasExample reports whether the schema carries an explicit example.
func (s *Schema) HasExample() bool {
	return s != nil && s.Example != nil
}
