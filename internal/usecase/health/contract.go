package health

import "context"

// CachePinger checks summary cache availability.
type CachePinger interface {
	Ping(ctx context.Context) error
}

// KnowledgeSource exposes the loaded question corpus.
type KnowledgeSource interface {
	Corpus() []string
}
