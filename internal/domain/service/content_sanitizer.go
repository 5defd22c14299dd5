package service

// ContentSanitizer strips unsafe markup from user supplied text.
type ContentSanitizer interface {
	// PlainText removes all markup.
	PlainText(input string) string

	// RichText keeps a safe subset of HTML.
	RichText(input string) string
}
