package utils

import (
	"math/rand"
	"regexp"
	"strings"
)

var (
	diacritics = strings.NewReplacer(
		"ă", "a", "â", "a", "Ă", "a", "Â", "a",
		"î", "i", "Î", "i",
		"ș", "s", "Ș", "s",
		"ț", "t", "Ț", "t",
	)
	nonWord = regexp.MustCompile(`[^\w\s-]`)
	spaces  = regexp.MustCompile(`\s+`)
)

const suffixCharset = "abcdefghijklmnopqrstuvwxyz0123456789"

// Slugify turns a title into a URL-safe slug: Romanian diacritics folded to
// ASCII, lowercased, punctuation stripped, whitespace collapsed to hyphens,
// capped at 80 characters.
func Slugify(title string) string {
	slug := diacritics.Replace(strings.ToLower(title))
	slug = nonWord.ReplaceAllString(slug, "")
	slug = strings.TrimSpace(slug)
	slug = spaces.ReplaceAllString(slug, "-")
	if len(slug) > 80 {
		slug = slug[:80]
	}
	return slug
}

// RandomSuffix returns n random base36 characters. Appended to slugs to keep
// collisions unlikely; uniqueness is not checked anywhere.
func RandomSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = suffixCharset[rand.Intn(len(suffixCharset))]
	}
	return string(b)
}

// NewSlug builds the stored slug for a title: Slugify plus a 4-char suffix.
func NewSlug(title string) string {
	return Slugify(title) + "-" + RandomSuffix(4)
}
