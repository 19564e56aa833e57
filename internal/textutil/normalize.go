package textutil

import (
	"regexp"
	"strings"
)

// nonWordPattern matches runs of characters that carry no lexical content.
var nonWordPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Normalize converts text to a canonical comparable form: lowercase,
// punctuation and other non-word characters replaced with spaces, whitespace
// collapsed, and the result trimmed. The transform is idempotent.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = nonWordPattern.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}
