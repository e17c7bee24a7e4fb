// Package suggest completes partially typed questions from the corpus.
package suggest

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/kailas-cloud/askbot/internal/domain/knowledge"
)

// Limits for the number of suggestions.
const (
	DefaultLimit = 5
	MaxLimit     = 20
)

// Service ranks corpus questions against a partial query.
type Service struct {
	corpus Corpus
}

// New creates a Service.
func New(corpus Corpus) *Service {
	return &Service{corpus: corpus}
}

// Suggest returns up to limit humanized questions whose characters contain the query as a
// subsequence, best match first. limit <= 0 selects DefaultLimit; larger values are capped
// at MaxLimit. A blank query yields an empty list.
func (s *Service) Suggest(query string, limit int) []string {
	pattern := strings.ToLower(strings.TrimRight(strings.TrimSpace(query), "?.! "))
	if pattern == "" {
		return []string{}
	}
	limit = clampLimit(limit)

	matches := fuzzy.Find(pattern, s.corpus.Corpus())
	out := make([]string, 0, min(limit, len(matches)))
	for _, m := range matches {
		if len(out) == limit {
			break
		}
		out = append(out, knowledge.Humanize(m.Str))
	}
	return out
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	}
	return limit
}
