package match

// Result is the best candidate found for an input and its similarity score in [0,1].
type Result struct {
	target string
	index  int
	score  float64
}

// New creates a match result.
func New(target string, index int, score float64) Result {
	return Result{target: target, index: index, score: score}
}

// Target returns the best-matching candidate.
func (r Result) Target() string { return r.target }

// Index returns the candidate's position in the candidate set.
func (r Result) Index() int { return r.index }

// Score returns the similarity score.
func (r Result) Score() float64 { return r.score }

// Exceeds reports whether the score is strictly above threshold.
func (r Result) Exceeds(threshold float64) bool { return r.score > threshold }
