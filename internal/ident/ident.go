// Package ident provides identifier case transforms shared by field-role
// matching and code emission.
//
// Key capabilities:
//   - CamelCase tokenization that keeps initialism runs together
//   - Normalization for convention-based field matching
//   - snake_case namespace names and exported Go field names
package ident

import (
	"strings"
	"unicode"
)

// Normalize normalizes an identifier for convention matching.
// The pipeline:
// 1. Tokenize CamelCase.
// 2. Case-fold to lower.
// 3. Strip separators (_, -, spaces).
func Normalize(s string) string {
	tokens := tokenize(s)

	joined := strings.Join(tokens, "")
	joined = strings.ToLower(joined)

	return joined
}

// Snake returns the lower-snake-case transliteration of an identifier.
// Examples:
//   - "GameEvent" -> "game_event"
//   - "XMLMessage" -> "xml_message"
//   - "playerEvent" -> "player_event"
func Snake(s string) string {
	tokens := tokenize(s)
	for i, tok := range tokens {
		tokens[i] = strings.ToLower(tok)
	}

	return strings.Join(tokens, "_")
}

// Export returns an exported Go identifier for a declared field name.
// Examples:
//   - "entity" -> "Entity"
//   - "player_id" -> "PlayerId"
//   - "attackPower" -> "AttackPower"
func Export(s string) string {
	tokens := tokenize(s)

	var sb strings.Builder
	for _, tok := range tokens {
		r := []rune(tok)
		sb.WriteRune(unicode.ToUpper(r[0]))
		sb.WriteString(strings.ToLower(string(r[1:])))
	}

	return sb.String()
}

// tokenize splits a CamelCase, camelCase, or snake_case string into tokens.
// Examples:
//   - "OrderID" -> ["Order", "ID"]
//   - "customerName" -> ["customer", "Name"]
//   - "XMLParser" -> ["XML", "Parser"]
//   - "player_id" -> ["player", "id"]
func tokenize(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i := range runes {
		r := runes[i]

		// Separators end the current token.
		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i == 0 {
			current.WriteRune(r)

			continue
		}

		if shouldStartNewToken(runes, i) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

// isSeparator returns true if the rune is a common separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// shouldStartNewToken decides whether position i begins a new token.
// A token starts at a lower-to-upper boundary, or inside an upper run when
// the next rune is lower ("XMLParser" splits before "Parser").
func shouldStartNewToken(runes []rune, i int) bool {
	r := runes[i]
	prev := runes[i-1]

	if unicode.IsUpper(r) && unicode.IsLower(prev) {
		return true
	}

	if unicode.IsUpper(r) && unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
		return true
	}

	return false
}
