package utils

import (
	"html"

	"github.com/itchan-dev/forum-api/shared/domain"
	"github.com/microcosm-cc/bluemonday"
)

// policy strips every tag; it is safe for concurrent use once built.
var policy = bluemonday.StrictPolicy()

// SanitizeText removes markup from plain text. Responses are JSON, so the
// entities bluemonday emits are decoded back and clients get the text as typed.
func SanitizeText(text string) string {
	return html.UnescapeString(policy.Sanitize(text))
}

// SanitizeFields sanitizes the named string fields of p in place. Missing keys
// and non-string values are left for schema validation to report.
func SanitizeFields(p domain.Payload, keys ...string) {
	for _, key := range keys {
		if s, ok := p[key].(string); ok {
			p[key] = SanitizeText(s)
		}
	}
}
