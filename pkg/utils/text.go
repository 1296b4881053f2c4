package utils

import (
	"math"
	"strings"
)

const wordsPerMinute = 200

// WordCount counts whitespace-separated words, discarding empty tokens.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// ReadingTime estimates reading time in whole minutes at 200 wpm, never
// reporting less than one minute.
func ReadingTime(words int) int {
	minutes := int(math.Round(float64(words) / wordsPerMinute))
	if minutes < 1 {
		return 1
	}
	return minutes
}

// Excerpt returns the first n characters of a body for list previews.
// Counted in runes so diacritics are never split.
func Excerpt(body string, n int) string {
	runes := []rune(body)
	if len(runes) <= n {
		return body
	}
	return string(runes[:n])
}
