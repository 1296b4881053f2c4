package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Povești Înserate!", "povesti-inserate"},
		{"Țara de după deal", "tara-de-dupa-deal"},
		{"Șoapte și umbre", "soapte-si-umbre"},
		{"  spații   multiple  ", "spatii-multiple"},
		{"simplu", "simplu"},
		{"UPPER Case", "upper-case"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.title), "title %q", tt.title)
	}
}

func TestSlugifyTruncates(t *testing.T) {
	long := strings.Repeat("cuvant ", 30)
	slug := Slugify(long)
	assert.LessOrEqual(t, len(slug), 80)
}

func TestRandomSuffix(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		s := RandomSuffix(4)
		assert.Len(t, s, 4)
		for _, r := range s {
			assert.True(t, (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z'), "unexpected rune %q", r)
		}
		seen[s] = true
	}
	// Not a uniqueness guarantee, but 50 collisions would mean a broken source.
	assert.Greater(t, len(seen), 1)
}

func TestNewSlug(t *testing.T) {
	slug := NewSlug("Povești Înserate")
	assert.True(t, strings.HasPrefix(slug, "povesti-inserate-"))
	assert.Len(t, slug, len("povesti-inserate-")+4)
}
