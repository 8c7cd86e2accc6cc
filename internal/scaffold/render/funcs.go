package render

import (
	"encoding/json"
	"strings"
	"text/template"
	"time"
	"unicode"

	"github.com/quillforge/quill/internal/scaffold/model"
)

// Funcs returns the helper functions exposed to template bodies.
//
// The engine's built-ins already cover the combinator helpers: eq, ne, and,
// or are callable inline ({{or .A .B}}) and as block conditionals
// ({{if or .A .B}}...{{end}}). The helpers below are pure functions of
// their arguments.
func Funcs() template.FuncMap {
	return template.FuncMap{
		// includes reports whether a string sequence contains a value.
		"includes": func(seq []string, value string) bool {
			for _, s := range seq {
				if s == value {
					return true
				}
			}
			return false
		},
		// json renders a value as compact JSON.
		"json": func(v any) (string, error) {
			data, err := json.Marshal(v)
			if err != nil {
				return "", err
			}
			return string(data), nil
		},
		"lowercase":  strings.ToLower,
		"uppercase":  strings.ToUpper,
		"capitalize": capitalize,
		"camelCase":  camelCase,
		"pascalCase": pascalCase,
		// shortName strips the @scope/ prefix from a package name.
		"shortName": model.ShortName,
		// isScoped reports whether a package name is @scope/ prefixed.
		"isScoped": model.IsScoped,
		// year returns the current four-digit year.
		"year": func() int {
			return time.Now().Year()
		},
		// isDual reports whether a module format is dual. Usable inline
		// and as a block conditional: {{if isDual .ModuleFormat}}.
		"isDual": func(format string) bool {
			return format == string(model.FormatDual)
		},
		// join concatenates a string sequence with a separator.
		"join": strings.Join,
	}
}

// capitalize upper-cases the first rune only.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// splitWords breaks an identifier on separators and case boundaries.
// "@scope/my-lib" yields ["scope", "my", "lib"].
func splitWords(s string) []string {
	var words []string
	var current strings.Builder
	for _, r := range s {
		switch {
		case r == '-' || r == '_' || r == '.' || r == '/' || r == '@' || r == ' ':
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}
		case unicode.IsUpper(r) && current.Len() > 0:
			words = append(words, current.String())
			current.Reset()
			current.WriteRune(unicode.ToLower(r))
		default:
			current.WriteRune(unicode.ToLower(r))
		}
	}
	if current.Len() > 0 {
		words = append(words, current.String())
	}
	return words
}

// camelCase converts an identifier to camelCase.
func camelCase(s string) string {
	words := splitWords(s)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(words[0])
	for _, w := range words[1:] {
		b.WriteString(capitalize(w))
	}
	return b.String()
}

// pascalCase converts an identifier to PascalCase.
func pascalCase(s string) string {
	var b strings.Builder
	for _, w := range splitWords(s) {
		b.WriteString(capitalize(w))
	}
	return b.String()
}
