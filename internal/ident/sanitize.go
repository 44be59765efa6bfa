package ident

import (
	"strings"
	"unicode"
)

// Sanitize converts a raw schema name into a PascalCase identifier.
// The pipeline:
// 1. Tokenize on separators and CamelCase boundaries.
// 2. Upper-case the first rune of every token, lower-casing all-caps tokens.
// 3. Prefix an underscore when the result starts with a digit.
//
// Examples:
//   - "north" -> "North"
//   - "NORTH_WEST" -> "NorthWest"
//   - "application/json" -> "ApplicationJson"
//   - "1.0" -> "_10"
func Sanitize(s string) string {
	var sb strings.Builder

	for _, token := range tokenize(s) {
		sb.WriteString(capitalize(token))
	}

	out := sb.String()
	if out == "" {
		return "_"
	}

	if first := []rune(out)[0]; unicode.IsDigit(first) {
		return "_" + out
	}

	return out
}

// Snake converts a name into a lower snake_case file name stem,
// e.g. "HTTPStatus" -> "http_status".
func Snake(s string) string {
	tokens := tokenize(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return strings.Join(tokens, "_")
}

func capitalize(token string) string {
	runes := []rune(token)
	if isAllUpper(runes) {
		for i := 1; i < len(runes); i++ {
			runes[i] = unicode.ToLower(runes[i])
		}
	}

	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}

func isAllUpper(runes []rune) bool {
	letters := 0

	for _, r := range runes {
		if unicode.IsLetter(r) {
			if !unicode.IsUpper(r) {
				return false
			}

			letters++
		}
	}

	return letters > 1
}

// tokenize splits a name into tokens on every rune that cannot appear in an identifier
// and on CamelCase boundaries.
// Examples:
//   - "OrderID" -> ["Order", "ID"]
//   - "customer-name" -> ["customer", "name"]
//   - "XMLParser" -> ["XML", "Parser"]
func tokenize(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i := range runes {
		r := runes[i]

		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && current.Len() > 0 && shouldStartNewToken(runes, i) {
			tokens = append(tokens, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// shouldStartNewToken determines if a new token should start at position i.
func shouldStartNewToken(runes []rune, i int) bool {
	r := runes[i]
	prevRune := runes[i-1]
	isUpper := unicode.IsUpper(r)
	isPrevUpper := unicode.IsUpper(prevRune)

	// "orderID" -> split before 'I'
	if isUpper && !isPrevUpper && !isSeparator(prevRune) {
		return true
	}

	// "XMLParser" -> "XML" + "Parser", split before 'P'
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

	return isUpper && isPrevUpper && hasNextLower
}
