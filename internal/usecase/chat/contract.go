package chat

import (
	"context"

	"github.com/kailas-cloud/askbot/internal/domain/intent"
	"github.com/kailas-cloud/askbot/internal/domain/match"
	"github.com/kailas-cloud/askbot/internal/domain/template"
	"github.com/kailas-cloud/askbot/internal/domain/unit"
)

// Classifier selects the intent of a normalized query. Topic returns the text following
// an encyclopedia lookup phrase.
type Classifier interface {
	Classify(input string) intent.Intent
	Topic(input string) (string, bool)
}

// Resolver finds the closest candidate question.
type Resolver interface {
	BestMatch(input string, candidates []string) (match.Result, error)
}

// Knowledge is the read-only question/answer data.
type Knowledge interface {
	Candidates(i intent.Intent) []string
	Template(i intent.Intent, idx int) (template.Template, bool)
	Answers(i intent.Intent, idx int) []string
	Welcome() []string
	Fallback() []string
	Corpus() []string
}

// UnitConverter converts an amount between two units.
type UnitConverter interface {
	Convert(amount float64, from, to string) (unit.Conversion, error)
}

// SummaryLookup fetches an encyclopedia summary for a title.
// It returns domain.ErrArticleNotFound when no article exists.
type SummaryLookup interface {
	Summary(ctx context.Context, title string) (string, error)
}

// Picker is a source of uniform random indexes in [0,n).
type Picker interface {
	IntN(n int) int
}
