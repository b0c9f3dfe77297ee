// Package parsing turns free-text answers into structured values for the
// candidate record.
package parsing

import (
	"strings"
	"unicode"
)

// maxTechnologies caps how many technologies are kept from one answer.
const maxTechnologies = 10

// TechStack parses a free-text technology list. Comma, semicolon, pipe and
// newline all act as separators; tokens are trimmed, title-cased, filtered
// to length > 1, deduplicated case-insensitively in first-seen order and
// capped at ten entries. Whitespace-only input yields an empty list.
//
// Title-casing is applied per letter run, so "JS" becomes "Js" while "C++"
// survives intact. Downstream consumers rely on this exact normalization;
// keep it stable.
func TechStack(input string) []string {
	if strings.TrimSpace(input) == "" {
		return nil
	}

	normalized := input
	for _, sep := range []string{";", "|", "\n"} {
		normalized = strings.ReplaceAll(normalized, sep, ",")
	}

	seen := make(map[string]struct{})
	var techs []string
	for _, token := range strings.Split(normalized, ",") {
		tech := titleCase(strings.TrimSpace(token))
		if len(tech) <= 1 {
			continue
		}
		key := strings.ToLower(tech)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		techs = append(techs, tech)
		if len(techs) == maxTechnologies {
			break
		}
	}

	return techs
}

// titleCase uppercases the first letter of every letter run and lowercases
// the rest, leaving non-letters untouched.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		switch {
		case !unicode.IsLetter(r):
			b.WriteRune(r)
			prevLetter = false
		case prevLetter:
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(unicode.ToUpper(r))
			prevLetter = true
		}
	}
	return b.String()
}
