package suggest

// Corpus exposes the known questions.
type Corpus interface {
	Corpus() []string
}
