package codesample

import (
	"strings"
	"unicode"

	"github.com/widgetic/apidocs/internal/document"
	"github.com/widgetic/apidocs/internal/types"
)

// DefaultAPIName is used for operations without tags.
const DefaultAPIName = "DefaultApi"

// APIName returns the client class grouping an operation: its first tag
// without whitespace plus "Api".
func APIName(op *document.Operation) string {
	tags := op.Tags()
	if len(tags) == 0 {
		return DefaultAPIName
	}
	name := types.StripWhitespace(tags[0])
	if name == "" {
		return DefaultAPIName
	}
	return name + "Api"
}

// OperationName returns the operationId or, when missing, a name derived from
// the method and path: get /widgets/{id} -> getWidgetsById.
func OperationName(op *document.Operation) string {
	if id := op.ID(); id != "" {
		return id
	}

	var b strings.Builder
	b.WriteString(strings.ToLower(op.Method))
	for _, segment := range strings.Split(op.Path, "/") {
		if segment == "" {
			continue
		}
		if strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}") {
			b.WriteString("By")
			segment = types.PlaceholderName(segment)
		}
		for _, word := range splitWords(segment) {
			b.WriteString(types.ToPascalCase(word))
		}
	}
	return b.String()
}

func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
