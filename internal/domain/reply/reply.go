package reply

import "github.com/kailas-cloud/askbot/internal/domain/intent"

// Reply is the outcome of answering one query.
type Reply struct {
	Text            string
	Query           string
	Rating          float64
	Action          intent.Intent
	IsFallback      bool
	SimilarQuestion string
}
