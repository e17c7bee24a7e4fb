package askbot

import "github.com/kailas-cloud/askbot/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	// ErrArticleNotFound is what a custom Lookup returns when no article exists for a title.
	ErrArticleNotFound  = domain.ErrArticleNotFound
	ErrLookup           = domain.ErrLookup
	ErrInvalidKnowledge = domain.ErrInvalidKnowledge
	ErrNoCandidates     = domain.ErrNoCandidates
)
