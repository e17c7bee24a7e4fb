package unit

// Unit describes a unit of measure.
type Unit struct {
	Abbr     string
	Singular string
	Plural   string
	Measure  string
}

// Conversion is the outcome of converting an amount between two units.
type Conversion struct {
	From  Unit
	To    Unit
	Value float64
}
