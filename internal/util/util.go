// Package util holds small text helpers shared by the use case layer.
package util

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	slugSeparator = '-'
	// FallbackSlug is used when a title contains nothing slug-safe.
	FallbackSlug = "article"
)

// Slugify lowercases title, strips diacritics and joins every run of ASCII
// letters and digits with a single '-'. Apostrophes are dropped rather than
// separated, so "Don't panic" becomes "dont-panic". The result is empty when
// the title carries no slug-safe characters.
func Slugify(title string) string {
	folder := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(folder, title)
	if err != nil {
		folded = title
	}

	var b strings.Builder
	b.Grow(len(folded))

	pendingSeparator := false
	for _, r := range strings.ToLower(folded) {
		switch {
		case r == '\'' || r == '’':
			continue
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			if pendingSeparator && b.Len() > 0 {
				b.WriteRune(slugSeparator)
			}
			pendingSeparator = false
			b.WriteRune(r)
		default:
			pendingSeparator = true
		}
	}

	return b.String()
}

// SlugBase is Slugify with FallbackSlug for empty results.
func SlugBase(title string) string {
	if base := Slugify(title); base != "" {
		return base
	}

	return FallbackSlug
}
