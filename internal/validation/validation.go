package validation

import (
	"regexp"
	"strings"
)

// FieldError is one failed rule, addressed to the offending input field so
// clients can render it next to the form control.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func validEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// lengthBetween counts runes, not bytes, so diacritics count as one character.
func lengthBetween(s string, min, max int) bool {
	n := len([]rune(strings.TrimSpace(s)))
	return n >= min && n <= max
}
