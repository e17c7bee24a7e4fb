// Package resolve finds the known question closest to a user input.
package resolve

import (
	"fmt"

	"github.com/kailas-cloud/askbot/internal/domain"
	"github.com/kailas-cloud/askbot/internal/domain/match"
)

// Scorer computes a similarity in [0,1] between two strings.
type Scorer func(a, b string) float64

// Resolver picks the best-scoring candidate for an input.
type Resolver struct {
	score Scorer
}

// New creates a Resolver using the Dice bigram similarity.
func New() *Resolver {
	return &Resolver{score: Similarity}
}

// WithScorer replaces the similarity metric.
func (r *Resolver) WithScorer(s Scorer) *Resolver {
	r.score = s
	return r
}

// BestMatch scores input against every candidate and returns the highest one.
// Ties keep the earliest candidate. An empty candidate set is an error.
func (r *Resolver) BestMatch(input string, candidates []string) (match.Result, error) {
	if len(candidates) == 0 {
		return match.Result{}, fmt.Errorf("best match for %q: %w", input, domain.ErrNoCandidates)
	}

	best := 0
	bestScore := r.score(input, candidates[0])
	for i := 1; i < len(candidates); i++ {
		if s := r.score(input, candidates[i]); s > bestScore {
			best, bestScore = i, s
		}
	}
	return match.New(candidates[best], best, bestScore), nil
}
