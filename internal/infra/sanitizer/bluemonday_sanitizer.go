// Package sanitizer strips unsafe markup from user supplied article content.
package sanitizer

import (
	"html"
	"strings"

	"articlehub/internal/domain/service"

	"github.com/microcosm-cc/bluemonday"
)

type bluemondaySanitizer struct {
	strict *bluemonday.Policy
	rich   *bluemonday.Policy
}

// NewContentSanitizer builds both policies once; bluemonday policies are safe
// for concurrent use after construction.
func NewContentSanitizer() service.ContentSanitizer {
	rich := bluemonday.NewPolicy()
	rich.AllowElements(
		"p", "br", "ul", "ol", "li",
		"blockquote", "pre", "code",
		"strong", "em",
	)
	rich.AllowAttrs("href").OnElements("a")
	rich.AllowURLSchemes("http", "https")
	rich.AllowRelativeURLs(false)
	rich.AddTargetBlankToFullyQualifiedLinks(true)
	rich.RequireNoReferrerOnLinks(true)

	return &bluemondaySanitizer{
		strict: bluemonday.StrictPolicy(),
		rich:   rich,
	}
}

// PlainText drops every tag and returns unescaped text, so "Tom &amp; Jerry"
// and "Tom & Jerry" produce the same title.
func (s *bluemondaySanitizer) PlainText(input string) string {
	return strings.TrimSpace(html.UnescapeString(s.strict.Sanitize(input)))
}

// RichText keeps paragraphs, lists, quotes, code and links.
func (s *bluemondaySanitizer) RichText(input string) string {
	return s.rich.Sanitize(input)
}
