package sanitizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	sanitizer := NewContentSanitizer()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "My article", want: "My article"},
		{name: "tags removed", input: "<b>Bold</b> title", want: "Bold title"},
		{name: "script removed", input: `<script>alert("x")</script>Safe`, want: "Safe"},
		{name: "entities decoded", input: "Tom &amp; Jerry", want: "Tom & Jerry"},
		{name: "ampersand kept", input: "Tom & Jerry", want: "Tom & Jerry"},
		{name: "trimmed", input: "  <i></i> spaced ", want: "spaced"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizer.PlainText(tt.input))
		})
	}
}

func TestRichText(t *testing.T) {
	sanitizer := NewContentSanitizer()

	tests := []struct {
		name        string
		input       string
		contains    []string
		notContains []string
	}{
		{
			name:     "paragraphs kept",
			input:    "<p>Have you seen <strong>this</strong>?</p>",
			contains: []string{"<p>", "<strong>this</strong>"},
		},
		{
			name:        "script dropped",
			input:       `<p>ok</p><script>alert(1)</script>`,
			contains:    []string{"<p>ok</p>"},
			notContains: []string{"script", "alert"},
		},
		{
			name:        "event handlers dropped",
			input:       `<p onclick="steal()">click</p>`,
			contains:    []string{"click"},
			notContains: []string{"onclick"},
		},
		{
			name:        "javascript links dropped",
			input:       `<a href="javascript:alert(1)">x</a>`,
			notContains: []string{"javascript"},
		},
		{
			name:     "external links hardened",
			input:    `<a href="https://example.com">site</a>`,
			contains: []string{`href="https://example.com"`, "noreferrer", "noopener", `target="_blank"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizer.RichText(tt.input)
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
			for _, unwanted := range tt.notContains {
				assert.NotContains(t, got, unwanted)
			}
		})
	}
}
