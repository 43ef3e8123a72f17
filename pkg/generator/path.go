package generator

import (
	"net/url"
	"strings"

	"github.com/widgetic/apidocs/internal/document"
	"github.com/widgetic/apidocs/internal/types"
	"github.com/widgetic/apidocs/pkg/schema"
)

// MaxQueryParams is the number of query parameters shown in examples.
const MaxQueryParams = 2

// PathArg is a path parameter with its example value.
type PathArg struct {
	Name  string
	Value string
}

// PathArgs returns the example values of the path placeholders in template order.
// Placeholders without a declared parameter fall back to the name heuristic.
func PathArgs(op *document.Operation) []PathArg {
	declared := make(map[string]*document.Parameter)
	for _, p := range op.ParametersIn("path") {
		declared[p.Name] = p
	}

	var res []PathArg
	seen := make(map[string]bool)
	for _, placeholder := range types.ExtractPlaceholders(op.Path) {
		name := types.PlaceholderName(placeholder)
		if seen[name] {
			continue
		}
		seen[name] = true

		p, ok := declared[name]
		if !ok {
			res = append(res, PathArg{Name: name, Value: ParamValue(name, nil, nil)})
			continue
		}

		s := schema.NewSchemaFromNode(op.Document(), p.Schema())
		res = append(res, PathArg{Name: name, Value: ParamValue(name, p.Example(), s)})
	}

	return res
}

// generatePath substitutes every placeholder of the path template.
func generatePath(path string, args []PathArg) string {
	for _, arg := range args {
		path = strings.ReplaceAll(path, "{"+arg.Name+"}", url.PathEscape(arg.Value))
	}
	return path
}

// generateQuery builds the query string of read operations from the first
// query parameters in declaration order.
func generateQuery(op *document.Operation) string {
	if !types.IsReadMethod(op.Method) {
		return ""
	}

	params := op.ParametersIn("query")
	if len(params) > MaxQueryParams {
		params = params[:MaxQueryParams]
	}

	parts := make([]string, 0, len(params))
	for _, p := range params {
		s := schema.NewSchemaFromNode(op.Document(), p.Schema())
		parts = append(parts, p.Name+"="+url.QueryEscape(ParamValue(p.Name, p.Example(), s)))
	}

	return strings.Join(parts, "&")
}

// ExamplePath returns the operation path with placeholders substituted and,
// for read operations, the example query string appended.
func ExamplePath(op *document.Operation) string {
	path := generatePath(op.Path, PathArgs(op))
	if query := generateQuery(op); query != "" {
		path += "?" + query
	}
	return path
}
