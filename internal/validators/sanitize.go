package validators

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// textPolicy strips every HTML element from user-supplied free text.
var textPolicy = bluemonday.StrictPolicy()

// SanitizeText removes markup from s and trims surrounding whitespace.
// Entities escaped by the policy are decoded again so that plain text such
// as "R&D" survives unchanged.
func SanitizeText(s string) string {
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(s)))
}
