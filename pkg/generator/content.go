package generator

import (
	"hash/fnv"
	"log/slog"
	"math"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/widgetic/apidocs/internal/document"
	"github.com/widgetic/apidocs/internal/types"
	"github.com/widgetic/apidocs/pkg/schema"
	"gopkg.in/yaml.v3"
)

const (
	// MaxDepth is the nesting depth after which an empty object is returned.
	MaxDepth = 3

	// MaxOptionalProperties is the number of optional properties added to an object.
	MaxOptionalProperties = 2

	// MaxProperties caps object size unless more properties are required.
	MaxProperties = 4

	jsonContentType = "application/json"
)

// cannedFormats are fixed values for common string formats.
var cannedFormats = map[string]string{
	"uuid":  "123e4567-e89b-12d3-a456-426614174000",
	"email": "user@example.com",
	"uri":   "https://example.com",
	"url":   "https://example.com",
}

var (
	fakeDateFrom = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	fakeDateTo   = time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)
)

// ExampleBody returns the example request body of a write operation.
// The second value is false when the operation has no body to show.
func ExampleBody(op *document.Operation) (any, bool) {
	if !types.IsWriteMethod(op.Method) {
		return nil, false
	}

	body := op.RequestBody()
	if body == nil {
		return nil, false
	}

	media := pickMediaType(document.MappingValue(body, "content"))
	if media == nil {
		return nil, false
	}

	if example := document.MappingValue(media, "example"); example != nil {
		return ValueFromNode(example), true
	}

	if example := firstNamedExample(op.Document(), document.MappingValue(media, "examples")); example != nil {
		return ValueFromNode(example), true
	}

	s := schema.NewSchemaFromNode(op.Document(), document.MappingValue(media, "schema"))
	if s == nil {
		return nil, false
	}

	return GenerateContentFromSchema(s), true
}

// GenerateContentFromSchema synthesizes an example value from a schema.
func GenerateContentFromSchema(s *schema.Schema) any {
	return generateContentFromSchema(s, "", 0)
}

func generateContentFromSchema(s *schema.Schema, name string, depth int) any {
	if depth > MaxDepth {
		return Object{}
	}

	if s == nil || s.Malformed {
		slog.Debug("malformed schema node, using placeholder", "name", name)
		return Placeholder
	}

	if s.Truncated {
		return Object{}
	}

	if s.HasExample() {
		return ValueFromNode(s.Example)
	}

	switch s.Type {
	case types.TypeObject:
		return generateContentObject(s, depth)
	case types.TypeArray:
		return []any{generateContentFromSchema(s.Items, name, depth+1)}
	case types.TypeString:
		return generateString(s, name)
	case types.TypeInteger:
		if s.Minimum != nil {
			return int64(math.Ceil(*s.Minimum))
		}
		return int64(1)
	case types.TypeNumber:
		if s.Minimum != nil {
			return *s.Minimum
		}
		return 1.0
	case types.TypeBoolean:
		return true
	}

	return Placeholder
}

// generateContentObject includes every required property and up to
// MaxOptionalProperties optional ones, in declaration order.
func generateContentObject(s *schema.Schema, depth int) Object {
	required := 0
	for _, p := range s.Properties {
		if s.IsRequired(p.Name) {
			required++
		}
	}

	optionalBudget := min(MaxOptionalProperties, max(0, MaxProperties-required))

	res := Object{}
	optional := 0
	for _, p := range s.Properties {
		if !s.IsRequired(p.Name) {
			if optional >= optionalBudget {
				continue
			}
			optional++
		}
		res = append(res, Field{
			Key:   p.Name,
			Value: generateContentFromSchema(p.Schema, p.Name, depth+1),
		})
	}

	return res
}

func generateString(s *schema.Schema, name string) any {
	if len(s.Enum) > 0 {
		return ValueFromNode(s.Enum[0])
	}

	if v, ok := cannedFormats[s.Format]; ok {
		return v
	}

	faker := gofakeit.New(seedFor(name + "|" + s.Format))
	switch s.Format {
	case "date":
		return faker.DateRange(fakeDateFrom, fakeDateTo).Format(time.DateOnly)
	case "date-time":
		return faker.DateRange(fakeDateFrom, fakeDateTo).Format(time.RFC3339)
	case "ipv4":
		return faker.IPv4Address()
	case "hostname":
		return faker.DomainName()
	}

	return Placeholder
}

// seedFor derives a stable faker seed so that regenerated samples do not churn.
func seedFor(key string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key))
	seed := int64(h.Sum64() & math.MaxInt64)
	if seed == 0 {
		seed = 1
	}
	return seed
}

// pickMediaType prefers JSON and falls back to the first declared media type.
func pickMediaType(content *yaml.Node) *yaml.Node {
	if media := document.MappingValue(content, jsonContentType); media != nil {
		return media
	}
	keys := document.MappingKeys(content)
	if len(keys) == 0 {
		return nil
	}
	return document.MappingValue(content, keys[0])
}

// firstNamedExample returns the value of the first entry of an "examples" map.
func firstNamedExample(doc *document.Document, examples *yaml.Node) *yaml.Node {
	keys := document.MappingKeys(examples)
	if len(keys) == 0 {
		return nil
	}
	example, err := doc.ResolveNode(document.MappingValue(examples, keys[0]))
	if err != nil {
		return nil
	}
	return document.MappingValue(example, "value")
}
