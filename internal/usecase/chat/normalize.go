package chat

import (
	"regexp"
	"strings"
)

// DefaultQuery replaces an empty query.
const DefaultQuery = "Hello"

var trailingPunctuationRe = regexp.MustCompile(`[?.!]$`)

// Normalize returns the display query (Unicode whitespace collapsed and trimmed, defaulting to
// DefaultQuery) and the matching input (trailing ?/./! stripped, lower-cased).
func Normalize(raw string) (query, input string) {
	query = strings.Join(strings.Fields(raw), " ")
	if query == "" {
		query = DefaultQuery
	}
	return query, strings.ToLower(stripTrailingPunctuation(query))
}

func stripTrailingPunctuation(s string) string {
	return strings.TrimSpace(trailingPunctuationRe.ReplaceAllString(s, ""))
}
