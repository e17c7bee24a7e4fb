package chat

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kailas-cloud/askbot/internal/domain/intent"
	"github.com/kailas-cloud/askbot/internal/domain/reply"
)

// RandomKeysMessage answers inputs that look like keyboard mashing.
const RandomKeysMessage = "You are probably hitting random keys :D"

const (
	randomKeysMinLen = 5
	randomKeysMaxLen = 20
)

// looksLikeRandomKeys reports whether input is a single 5 to 20 character token.
func looksLikeRandomKeys(input string) bool {
	n := utf8.RuneCountInString(input)
	return n >= randomKeysMinLen && n <= randomKeysMaxLen && !strings.ContainsFunc(input, unicode.IsSpace)
}

// applyFallback turns r into a fallback reply.
func (s *Service) applyFallback(r *reply.Reply, input string) {
	r.Action = intent.Fallback
	r.IsFallback = true
	r.Rating = 0
	if looksLikeRandomKeys(input) {
		r.Text = RandomKeysMessage
		return
	}
	r.Text = s.pick(s.kb.Fallback())
}
