// Package chat answers free-text queries: it classifies the query, resolves the closest
// known question and synthesizes the response text.
package chat

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/kailas-cloud/askbot/internal/domain/intent"
	"github.com/kailas-cloud/askbot/internal/domain/knowledge"
	"github.com/kailas-cloud/askbot/internal/domain/reply"
	"github.com/kailas-cloud/askbot/internal/metrics"
)

// DefaultThreshold is the score a chat match must exceed to be answered from its pool.
const DefaultThreshold = 0.6

// MinListedQuestionLen is the shortest question included in AllQuestions.
const MinListedQuestionLen = 15

// Service answers queries against an immutable knowledge base.
type Service struct {
	kb           Knowledge
	classifier   Classifier
	resolver     Resolver
	units        UnitConverter
	lookup       SummaryLookup
	rand         Picker
	placeholders Placeholders
	threshold    float64
}

// New creates a chat service.
func New(
	kb Knowledge,
	classifier Classifier,
	resolver Resolver,
	units UnitConverter,
	lookup SummaryLookup,
	placeholders Placeholders,
) *Service {
	return &Service{
		kb:           kb,
		classifier:   classifier,
		resolver:     resolver,
		units:        units,
		lookup:       lookup,
		rand:         globalRand{},
		placeholders: placeholders,
		threshold:    DefaultThreshold,
	}
}

// WithPicker replaces the randomness source.
func (s *Service) WithPicker(p Picker) *Service {
	s.rand = p
	return s
}

// WithThreshold overrides the match threshold for chat intents.
func (s *Service) WithThreshold(t float64) *Service {
	if t > 0 {
		s.threshold = t
	}
	return s
}

// Answer runs the full pipeline for one raw query.
func (s *Service) Answer(ctx context.Context, raw string) (reply.Reply, error) {
	query, input := Normalize(raw)

	in := s.classifier.Classify(input)
	best, err := s.resolver.BestMatch(input, s.kb.Candidates(in))
	if err != nil {
		return reply.Reply{}, fmt.Errorf("resolve %s: %w", in, err)
	}
	metrics.MatchScore.WithLabelValues(in.String()).Observe(best.Score())

	r := reply.Reply{
		Query:           query,
		Action:          in,
		SimilarQuestion: best.Target(),
	}

	switch {
	case in == intent.UnitConverter:
		s.convertUnits(ctx, &r, input, best)
	case in == intent.Wikipedia:
		s.summarize(ctx, &r, input, best)
		s.record(r)
		return r, nil
	case in.AnswersFromPool():
		s.answerChat(&r, in, query, best)
	}

	if r.Text == "" {
		s.applyFallback(&r, input)
	}
	r.Text = s.placeholders.replacer().Replace(r.Text)

	s.record(r)
	return r, nil
}

// Welcome returns a random welcome message.
func (s *Service) Welcome() string {
	return s.placeholders.replacer().Replace(s.pick(s.kb.Welcome()))
}

// AllQuestions returns the humanized corpus questions of at least MinListedQuestionLen
// characters in random order.
func (s *Service) AllQuestions() []string {
	out := make([]string, 0, len(s.kb.Corpus()))
	for _, q := range s.kb.Corpus() {
		if len([]rune(q)) < MinListedQuestionLen {
			continue
		}
		out = append(out, knowledge.Humanize(q))
	}
	s.shuffle(out)
	return out
}

func (s *Service) record(r reply.Reply) {
	metrics.AnswersTotal.WithLabelValues(r.Action.String(), strconv.FormatBool(r.IsFallback)).Inc()
}

func (s *Service) pick(pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	return pool[s.rand.IntN(len(pool))]
}

// shuffle is a Fisher-Yates shuffle driven by the injected picker.
func (s *Service) shuffle(items []string) {
	for i := len(items) - 1; i > 0; i-- {
		j := s.rand.IntN(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// globalRand uses the goroutine-safe top-level math/rand/v2 generator.
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }
