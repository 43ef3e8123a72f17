package types

import (
	"regexp"
	"strings"
	"unicode"
)

// PlaceholderRegex matches path template placeholders including curly brackets.
var PlaceholderRegex = regexp.MustCompile(`\{[^}]*}`)

// ToSnakeCase inserts an underscore before each uppercase letter,
// lowercases the result and strips a leading underscore.
// getAllWidgets -> get_all_widgets, GetHTTP -> get_h_t_t_p
func ToSnakeCase(input string) string {
	var b strings.Builder
	b.Grow(len(input) + 4)

	for _, r := range input {
		if unicode.IsUpper(r) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToLower(r))
	}

	return strings.TrimPrefix(b.String(), "_")
}

// ToPascalCase uppercases the first character only.
func ToPascalCase(input string) string {
	if input == "" {
		return input
	}
	runes := []rune(input)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// ToCamelCase returns the identifier unchanged.
// operationIds are camelCase by convention already.
func ToCamelCase(input string) string {
	return input
}

// StripWhitespace removes every whitespace character from the input.
func StripWhitespace(input string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, input)
}

// ExtractPlaceholders extracts all placeholders including curly brackets from a pattern.
func ExtractPlaceholders(input string) []string {
	return PlaceholderRegex.FindAllString(input, -1)
}

// PlaceholderName returns the placeholder name without curly brackets.
func PlaceholderName(placeholder string) string {
	return strings.Trim(placeholder, "{}")
}
