package askbot

import "context"

// Action names the pipeline that produced an answer.
type Action string

// Action constants.
const (
	ActionUnitConverter Action = "unit_converter"
	ActionWikipedia     Action = "wikipedia"
	ActionSupport       Action = "support"
	ActionDomainChat    Action = "domain_chat"
	ActionGeneralChat   Action = "general_chat"
)

// Answer is the bot's reply to one query.
type Answer struct {
	Text            string
	Query           string  // normalized query as displayed back to the user
	Rating          float64 // similarity of the best match in [0,1]
	Action          Action
	IsFallback      bool
	SimilarQuestion string
}

// HealthStatus represents the aggregated bot health.
type HealthStatus struct {
	Status string            // "ok", "degraded", "error"
	Checks map[string]string // component → "ok"/"error"
}

// Lookup fetches an encyclopedia summary for a title.
// Implementations return ErrArticleNotFound when there is no article.
type Lookup interface {
	Summary(ctx context.Context, title string) (string, error)
}
