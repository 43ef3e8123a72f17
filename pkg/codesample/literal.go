package codesample

import (
	"strconv"
	"strings"

	"github.com/widgetic/apidocs/pkg/generator"
)

// LiteralStyle describes how a language writes map, list and scalar literals.
type LiteralStyle struct {
	MapOpen  string
	MapClose string
	MapEmpty string

	// Entry renders one key/value pair of a map literal.
	Entry func(key, value string) string

	ListOpen  string
	ListClose string
	ListEmpty string
	True      string
	False     string
	Null      string
	Quote     func(string) string
	Indent    string
}

var (
	jsonLiteral = LiteralStyle{
		MapOpen:   "{",
		MapClose:  "}",
		MapEmpty:  "{}",
		Entry:     colonEntry,
		ListOpen:  "[",
		ListClose: "]",
		ListEmpty: "[]",
		True:      "true",
		False:     "false",
		Null:      "null",
		Quote:     doubleQuote,
		Indent:    "  ",
	}

	pythonLiteral = LiteralStyle{
		MapOpen:   "{",
		MapClose:  "}",
		MapEmpty:  "{}",
		Entry:     colonEntry,
		ListOpen:  "[",
		ListClose: "]",
		ListEmpty: "[]",
		True:      "True",
		False:     "False",
		Null:      "None",
		Quote:     doubleQuote,
		Indent:    "    ",
	}

	rubyLiteral = LiteralStyle{
		MapOpen:   "{",
		MapClose:  "}",
		MapEmpty:  "{}",
		Entry:     arrowEntry,
		ListOpen:  "[",
		ListClose: "]",
		ListEmpty: "[]",
		True:      "true",
		False:     "false",
		Null:      "nil",
		Quote:     doubleQuote,
		Indent:    "  ",
	}

	phpLiteral = LiteralStyle{
		MapOpen:   "[",
		MapClose:  "]",
		MapEmpty:  "[]",
		Entry:     arrowEntry,
		ListOpen:  "[",
		ListClose: "]",
		ListEmpty: "[]",
		True:      "true",
		False:     "false",
		Null:      "null",
		Quote:     singleQuote,
		Indent:    "    ",
	}

	goLiteral = LiteralStyle{
		MapOpen:   "map[string]any{",
		MapClose:  "}",
		MapEmpty:  "map[string]any{}",
		Entry:     colonEntry,
		ListOpen:  "[]any{",
		ListClose: "}",
		ListEmpty: "[]any{}",
		True:      "true",
		False:     "false",
		Null:      "nil",
		Quote:     strconv.Quote,
		Indent:    "\t",
	}

	javaLiteral = LiteralStyle{
		MapOpen:   "Map.of(",
		MapClose:  ")",
		MapEmpty:  "Map.of()",
		Entry:     commaEntry,
		ListOpen:  "List.of(",
		ListClose: ")",
		ListEmpty: "List.of()",
		True:      "true",
		False:     "false",
		Null:      "null",
		Quote:     doubleQuote,
		Indent:    "    ",
	}

	csharpLiteral = LiteralStyle{
		MapOpen:   "new Dictionary<string, object>\n{",
		MapClose:  "}",
		MapEmpty:  "new Dictionary<string, object>()",
		Entry:     indexerEntry,
		ListOpen:  "new object[]\n{",
		ListClose: "}",
		ListEmpty: "new object[] { }",
		True:      "true",
		False:     "false",
		Null:      "null",
		Quote:     doubleQuote,
		Indent:    "    ",
	}
)

func colonEntry(key, value string) string {
	return key + ": " + value
}

func arrowEntry(key, value string) string {
	return key + " => " + value
}

func commaEntry(key, value string) string {
	return key + ", " + value
}

func indexerEntry(key, value string) string {
	return "[" + key + "] = " + value
}

// doubleQuote renders a double-quoted string with JSON escaping.
func doubleQuote(s string) string {
	res, err := generator.EncodeJSON(s)
	if err != nil {
		return strconv.Quote(s)
	}
	return string(res)
}

// singleQuote renders a single-quoted string where only quote and backslash are escaped.
func singleQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return "'" + s + "'"
}

// Format renders an example value as a literal, indenting nested lines
// relative to prefix.
func (ls LiteralStyle) Format(value any, prefix string) string {
	var b strings.Builder
	ls.write(&b, value, prefix)
	return b.String()
}

func (ls LiteralStyle) write(b *strings.Builder, value any, prefix string) {
	inner := prefix + ls.Indent

	switch v := value.(type) {
	case generator.Object:
		if len(v) == 0 {
			b.WriteString(ls.openLines(ls.MapEmpty, prefix))
			return
		}
		b.WriteString(ls.openLines(ls.MapOpen, prefix))
		for i, f := range v {
			b.WriteString("\n" + inner)
			var entry strings.Builder
			ls.write(&entry, f.Value, inner)
			b.WriteString(ls.Entry(ls.Quote(f.Key), entry.String()))
			if i < len(v)-1 {
				b.WriteString(",")
			}
		}
		b.WriteString("\n" + prefix + ls.MapClose)
	case []any:
		if len(v) == 0 {
			b.WriteString(ls.openLines(ls.ListEmpty, prefix))
			return
		}
		b.WriteString(ls.openLines(ls.ListOpen, prefix))
		for i, item := range v {
			b.WriteString("\n" + inner)
			ls.write(b, item, inner)
			if i < len(v)-1 {
				b.WriteString(",")
			}
		}
		b.WriteString("\n" + prefix + ls.ListClose)
	case nil:
		b.WriteString(ls.Null)
	case bool:
		if v {
			b.WriteString(ls.True)
		} else {
			b.WriteString(ls.False)
		}
	case int64:
		b.WriteString(strconv.FormatInt(v, 10))
	case float64:
		b.WriteString(formatFloat(v))
	case string:
		b.WriteString(ls.Quote(v))
	default:
		b.WriteString(ls.Quote(placeholderText(v)))
	}
}

// openLines indents continuation lines of multi-line openers.
func (ls LiteralStyle) openLines(opener, prefix string) string {
	return strings.ReplaceAll(opener, "\n", "\n"+prefix)
}

func formatFloat(v float64) string {
	res := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(res, ".eE") {
		res += ".0"
	}
	return res
}

func placeholderText(v any) string {
	res, err := generator.EncodeJSON(v)
	if err != nil {
		return generator.Placeholder
	}
	return string(res)
}
