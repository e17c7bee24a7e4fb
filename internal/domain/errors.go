package domain

import "errors"

var (
	// ErrDecoding signals a malformed percent-encoded query.
	ErrDecoding = errors.New("decoding error")
	// ErrNoCandidates signals a best-match call with an empty candidate set.
	ErrNoCandidates = errors.New("no candidates to match against")

	// ErrConversion signals a failed unit conversion.
	ErrConversion = errors.New("unit conversion failed")
	// ErrUnknownUnit signals a unit missing from the catalog.
	ErrUnknownUnit = errors.New("unknown unit")
	// ErrIncompatibleUnits signals units from different measures.
	ErrIncompatibleUnits = errors.New("incompatible units")
	// ErrMissingSlot signals a template slot the input did not fill.
	ErrMissingSlot = errors.New("missing slot value")

	// ErrLookup signals an encyclopedia lookup failure.
	ErrLookup = errors.New("summary lookup failed")
	// ErrArticleNotFound signals that the encyclopedia has no article for a topic.
	ErrArticleNotFound = errors.New("article not found")

	// ErrInvalidKnowledge signals inconsistent intent data.
	ErrInvalidKnowledge = errors.New("invalid knowledge base")
)

// DecodingError wraps ErrDecoding with the decoder's own message, which is shown to the client.
type DecodingError struct {
	Err error
}

func (e *DecodingError) Error() string { return e.Err.Error() }

func (e *DecodingError) Unwrap() []error { return []error{ErrDecoding, e.Err} }

// NewDecodingError creates a decoding error.
func NewDecodingError(err error) error {
	return &DecodingError{Err: err}
}
