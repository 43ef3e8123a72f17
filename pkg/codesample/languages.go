package codesample

import (
	"github.com/widgetic/apidocs/internal/types"
)

// Language is one row of the sample table.
type Language struct {
	Lang  string
	Label string

	// Package is the import path, module or namespace of the client library.
	Package string

	// MethodName converts the operation name to the language convention.
	MethodName func(string) string

	// NamedArgs passes path parameters as keyword arguments.
	NamedArgs bool

	// BodyVar is how the body variable is referenced in the call.
	BodyVar string

	// BodyIndent is the indentation of the statement declaring the body.
	BodyIndent string

	Literal  LiteralStyle
	Template string
}

// Languages lists the rendered languages in output order.
var Languages = []Language{
	{
		Lang:       "shell",
		Label:      "cURL",
		MethodName: types.ToCamelCase,
		Literal:    jsonLiteral,
		BodyIndent: "  ",
		Template:   "templates/shell.tmpl",
	},
	{
		Lang:       "javascript",
		Label:      "Node.js",
		Package:    "@widgetic/api",
		MethodName: types.ToCamelCase,
		BodyVar:    "body",
		Literal:    jsonLiteral,
		Template:   "templates/javascript.tmpl",
	},
	{
		Lang:       "python",
		Label:      "Python",
		Package:    "widgetic",
		MethodName: types.ToSnakeCase,
		NamedArgs:  true,
		BodyVar:    "body=body",
		Literal:    pythonLiteral,
		Template:   "templates/python.tmpl",
	},
	{
		Lang:       "go",
		Label:      "Go",
		Package:    "github.com/widgetic/widgetic-go",
		MethodName: types.ToPascalCase,
		BodyVar:    "body",
		BodyIndent: "\t",
		Literal:    goLiteral,
		Template:   "templates/go.tmpl",
	},
	{
		Lang:       "ruby",
		Label:      "Ruby",
		Package:    "widgetic",
		MethodName: types.ToSnakeCase,
		BodyVar:    "body",
		Literal:    rubyLiteral,
		Template:   "templates/ruby.tmpl",
	},
	{
		Lang:       "php",
		Label:      "PHP",
		Package:    `Widgetic\Api`,
		MethodName: types.ToCamelCase,
		BodyVar:    "$body",
		Literal:    phpLiteral,
		Template:   "templates/php.tmpl",
	},
	{
		Lang:       "java",
		Label:      "Java",
		Package:    "com.widgetic.api",
		MethodName: types.ToCamelCase,
		BodyVar:    "body",
		BodyIndent: "        ",
		Literal:    javaLiteral,
		Template:   "templates/java.tmpl",
	},
	{
		Lang:       "csharp",
		Label:      "C#",
		Package:    "Widgetic.Api",
		MethodName: types.ToCamelCase,
		BodyVar:    "body",
		Literal:    csharpLiteral,
		Template:   "templates/csharp.tmpl",
	},
}
