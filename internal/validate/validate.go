// Package validate provides the pure per-field validators used by the
// conversation driver. Each validator takes raw user input and reports
// whether it satisfies the stage rule, without mutating anything.
package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// emailPattern is deliberately RFC-lite: letters/digits/._%+- in the
	// local part, dot-separated domain, and a TLD of at least two letters.
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	// phonePattern accepts an optional "+" and country code "1" followed
	// by 9-15 digits.
	phonePattern = regexp.MustCompile(`^\+?1?\d{9,15}$`)
)

// Email reports whether the input looks like a valid email address.
func Email(input string) bool {
	return emailPattern.MatchString(strings.TrimSpace(input))
}

// Phone reports whether the input looks like a valid phone number.
func Phone(input string) bool {
	return phonePattern.MatchString(strings.TrimSpace(input))
}

// Experience parses years of experience from free text. The words
// "years"/"year" are stripped before parsing, so "2.5 years" and "2.5"
// are equivalent. Negative values are rejected.
func Experience(input string) (float64, bool) {
	cleaned := strings.ReplaceAll(input, "years", "")
	cleaned = strings.ReplaceAll(cleaned, "year", "")
	cleaned = strings.TrimSpace(cleaned)

	years, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || years < 0 {
		return 0, false
	}
	return years, true
}

// MinLength reports whether the trimmed input has at least n characters.
func MinLength(input string, n int) bool {
	return len(strings.TrimSpace(input)) >= n
}
