package codesample

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"text/template"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/widgetic/apidocs/internal/document"
	"github.com/widgetic/apidocs/internal/types"
	"github.com/widgetic/apidocs/pkg/generator"
	"gopkg.in/yaml.v3"
)

//go:embed templates/*
var templatesFS embed.FS

//go:embed samples.schema.json
var samplesSchema string

const (
	// SamplesKey is the operation extension holding the generated samples.
	SamplesKey = "x-codeSamples"

	// LegacySamplesKey is the older spelling, removed on every run.
	LegacySamplesKey = "x-code-samples"

	DefaultBaseURL = "https://api.widgetic.com"
	DefaultToken   = "YOUR_API_KEY"

	samplesSchemaURL = "https://schemas.widgetic.com/x-codeSamples.json"
)

// Sample is one rendered snippet.
type Sample struct {
	Lang   string `json:"lang" yaml:"lang"`
	Label  string `json:"label" yaml:"label"`
	Source string `json:"source" yaml:"source"`
}

// Options configures rendering.
// BaseURL defaults to the first server of the document, then DefaultBaseURL.
// Token defaults to DefaultToken.
type Options struct {
	BaseURL string
	Token   string
}

// Generator renders code samples for operations.
type Generator struct {
	opts      Options
	templates []*template.Template
	schema    *jsonschema.Schema
}

// templateData is what every language template is executed with.
type templateData struct {
	Package    string
	APIName    string
	MethodName string
	HTTPMethod string
	URL        string
	Token      string
	Args       string
	Body       string
	HasBody    bool
}

// New parses the embedded templates and compiles the sample record schema.
func New(opts Options) (*Generator, error) {
	if opts.Token == "" {
		opts.Token = DefaultToken
	}
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")

	funcMap := template.FuncMap{
		"shellQuote": func(s string) string {
			return strings.ReplaceAll(s, "'", `'\''`)
		},
	}

	templates := make([]*template.Template, len(Languages))
	for i, lang := range Languages {
		tmpl, err := template.New(path.Base(lang.Template)).Funcs(funcMap).ParseFS(templatesFS, lang.Template)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", lang.Template, err)
		}
		templates[i] = tmpl
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7
	if err := compiler.AddResource(samplesSchemaURL, strings.NewReader(samplesSchema)); err != nil {
		return nil, fmt.Errorf("adding samples schema: %w", err)
	}
	schema, err := compiler.Compile(samplesSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compiling samples schema: %w", err)
	}

	return &Generator{
		opts:      opts,
		templates: templates,
		schema:    schema,
	}, nil
}

// ForOperation renders the samples of one operation in language table order.
func (g *Generator) ForOperation(op *document.Operation) ([]Sample, error) {
	body, hasBody := generator.ExampleBody(op)
	pathArgs := generator.PathArgs(op)
	url := g.baseURL(op.Document()) + generator.ExamplePath(op)
	name := OperationName(op)

	res := make([]Sample, 0, len(Languages))
	for i, lang := range Languages {
		data := templateData{
			Package:    lang.Package,
			APIName:    APIName(op),
			MethodName: lang.MethodName(name),
			HTTPMethod: strings.ToUpper(op.Method),
			URL:        url,
			Token:      g.opts.Token,
			Args:       callArgs(lang, pathArgs, hasBody),
			HasBody:    hasBody,
		}
		if hasBody {
			data.Body = lang.Literal.Format(body, lang.BodyIndent)
		}

		var buf bytes.Buffer
		if err := g.templates[i].Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("%w: %s %s %s: %v", ErrRenderSample, lang.Lang, op.Method, op.Path, err)
		}

		res = append(res, Sample{
			Lang:   lang.Lang,
			Label:  lang.Label,
			Source: strings.TrimRight(buf.String(), "\n"),
		})
	}

	return res, nil
}

// Validate checks the samples against the record schema.
func (g *Generator) Validate(samples []Sample) error {
	raw, err := json.Marshal(samples)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSample, err)
	}

	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSample, err)
	}

	if err := g.schema.Validate(data); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSample, err)
	}
	return nil
}

// Apply renders and stores the samples of every operation of the document,
// removing the legacy extension. It returns the number of operations processed.
func (g *Generator) Apply(doc *document.Document) (int, error) {
	count := 0
	for _, op := range doc.Operations() {
		samples, err := g.ForOperation(op)
		if err != nil {
			return count, err
		}

		if err := g.Validate(samples); err != nil {
			return count, fmt.Errorf("%s %s: %w", op.Method, op.Path, err)
		}

		op.SetExtension(SamplesKey, samplesNode(samples))
		op.DeleteExtension(LegacySamplesKey)
		count++

		slog.Debug("generated code samples", "method", op.Method, "path", op.Path, "count", len(samples))
	}

	return count, nil
}

func (g *Generator) baseURL(doc *document.Document) string {
	if g.opts.BaseURL != "" {
		return g.opts.BaseURL
	}
	if doc != nil {
		if servers := doc.Servers(); len(servers) > 0 {
			return strings.TrimRight(servers[0], "/")
		}
	}
	return DefaultBaseURL
}

// callArgs renders path parameters followed by the body variable.
func callArgs(lang Language, pathArgs []generator.PathArg, hasBody bool) string {
	args := make([]string, 0, len(pathArgs)+1)
	for _, arg := range pathArgs {
		value := lang.Literal.Quote(arg.Value)
		if lang.NamedArgs {
			value = types.ToSnakeCase(arg.Name) + "=" + value
		}
		args = append(args, value)
	}
	if hasBody && lang.BodyVar != "" {
		args = append(args, lang.BodyVar)
	}
	return strings.Join(args, ", ")
}

func samplesNode(samples []Sample) *yaml.Node {
	items := make([]*yaml.Node, 0, len(samples))
	for _, s := range samples {
		items = append(items, document.NewMappingNode(
			document.NewStringNode("lang"), document.NewStringNode(s.Lang),
			document.NewStringNode("label"), document.NewStringNode(s.Label),
			document.NewStringNode("source"), document.NewStringNode(s.Source),
		))
	}
	return document.NewSequenceNode(items...)
}
