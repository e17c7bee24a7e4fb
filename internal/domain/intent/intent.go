package intent

// Intent is the classified purpose of a query. Its value is reported as the response action.
type Intent string

// Intent constants.
const (
	UnitConverter Intent = "unit_converter"
	Wikipedia     Intent = "wikipedia"
	Support       Intent = "support"
	DomainChat    Intent = "domain_chat"
	GeneralChat   Intent = "general_chat"
	// Fallback marks a response produced without a confident match.
	Fallback Intent = "fallback"
)

// AnswersFromPool reports whether the intent answers from a canned answer pool.
func (i Intent) AnswersFromPool() bool {
	return i == Support || i == DomainChat || i == GeneralChat
}

// String implements fmt.Stringer.
func (i Intent) String() string { return string(i) }
