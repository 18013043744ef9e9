// Package sanitize strips markup from free-text form fields before they are stored.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Text removes every tag from s and returns the trimmed plain text.
func Text(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}

// Optional sanitizes p and reports nil when nothing is left.
func Optional(p *string) *string {
	if p == nil {
		return nil
	}
	clean := Text(*p)
	if clean == "" {
		return nil
	}
	return &clean
}
