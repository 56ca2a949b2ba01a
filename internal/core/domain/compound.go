package domain

import "strings"

// Compound is an atomic unit of an alphabet. Two compounds are considered
// equivalent when their string values match case-insensitively.
type Compound struct {
	// Value is the string form of the compound as it appears in a sequence.
	Value string
	// Name is the long-form name, e.g. "alanine". May be empty.
	Name string
}

// EqualsIgnoreCase reports case-insensitive value equality.
func (c Compound) EqualsIgnoreCase(other Compound) bool {
	return strings.EqualFold(c.Value, other.Value)
}

// String returns the compound's string form.
func (c Compound) String() string {
	return c.Value
}

// Alphabet resolves substrings to compounds. Implementations must be
// comparable by identity; sequence equality requires the same alphabet
// instance on both sides.
type Alphabet interface {
	// CompoundFor returns the compound for a string of length 1..MaxCompoundLength.
	CompoundFor(s string) (Compound, bool)

	// MaxCompoundLength returns the longest string form any compound has.
	MaxCompoundLength() int
}
