package util

import (
	"strings"
	"unicode"
)

// ToSnakeCase converts PascalCase or camelCase to snake_case.
// Handles acronyms properly (e.g., "HTTPSConnection" -> "https_connection")
func ToSnakeCase(s string) string {
	var result strings.Builder
	runes := []rune(s)

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if i > 0 && r >= 'A' && r <= 'Z' {
			// Don't split inside an acronym unless the next char ends it
			prevUpper := runes[i-1] >= 'A' && runes[i-1] <= 'Z'
			nextLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
			prevUnderscore := runes[i-1] == '_'

			if (!prevUpper || nextLower) && !prevUnderscore {
				result.WriteRune('_')
			}
		}

		result.WriteRune(r)
	}

	return strings.ToLower(result.String())
}

// ToPascalCase joins the identifier-safe words of s into PascalCase.
// Underscores and every rune that cannot appear in a C identifier act as
// word breaks, so "unsigned int" -> "UnsignedInt" and "char *" -> "Char".
func ToPascalCase(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || !IsIdentRune(r, true)
	})

	var result strings.Builder
	for _, part := range parts {
		runes := []rune(part)
		result.WriteRune(unicode.ToUpper(runes[0]))
		result.WriteString(string(runes[1:]))
	}

	return result.String()
}

// IsIdentRune reports whether r may appear in a C identifier.
// Digits are only allowed after the first position.
func IsIdentRune(r rune, notFirst bool) bool {
	switch {
	case r == '_':
		return true
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return notFirst
	}
	return false
}

// IsIdentifier reports whether s is a non-empty C identifier
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if !IsIdentRune(r, i > 0) {
			return false
		}
	}
	return true
}
