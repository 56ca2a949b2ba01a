// Package alphabet provides compound sets implementing domain.Alphabet.
package alphabet

import (
	"strings"

	"uniseq/internal/core/domain"
)

// CompoundSet is a fixed alphabet of single-character compounds.
type CompoundSet struct {
	name      string
	compounds map[string]domain.Compound
	maxLen    int
}

// aminoAcids is the shared amino-acid set: the twenty standard residues plus
// the ambiguity codes B, Z, J, X, the rare U (selenocysteine) and
// O (pyrrolysine), and the stop marker.
var aminoAcids = newCompoundSet("amino acid", []domain.Compound{
	{Value: "A", Name: "alanine"},
	{Value: "R", Name: "arginine"},
	{Value: "N", Name: "asparagine"},
	{Value: "D", Name: "aspartic acid"},
	{Value: "C", Name: "cysteine"},
	{Value: "E", Name: "glutamic acid"},
	{Value: "Q", Name: "glutamine"},
	{Value: "G", Name: "glycine"},
	{Value: "H", Name: "histidine"},
	{Value: "I", Name: "isoleucine"},
	{Value: "L", Name: "leucine"},
	{Value: "K", Name: "lysine"},
	{Value: "M", Name: "methionine"},
	{Value: "F", Name: "phenylalanine"},
	{Value: "P", Name: "proline"},
	{Value: "S", Name: "serine"},
	{Value: "T", Name: "threonine"},
	{Value: "W", Name: "tryptophan"},
	{Value: "Y", Name: "tyrosine"},
	{Value: "V", Name: "valine"},
	{Value: "B", Name: "asparagine or aspartic acid"},
	{Value: "Z", Name: "glutamine or glutamic acid"},
	{Value: "J", Name: "leucine or isoleucine"},
	{Value: "X", Name: "unknown"},
	{Value: "U", Name: "selenocysteine"},
	{Value: "O", Name: "pyrrolysine"},
	{Value: "*", Name: "stop"},
})

// AminoAcid returns the shared amino-acid compound set. Callers comparing
// sequences must use the same instance; this accessor always returns it.
func AminoAcid() *CompoundSet {
	return aminoAcids
}

func newCompoundSet(name string, compounds []domain.Compound) *CompoundSet {
	set := &CompoundSet{
		name:      name,
		compounds: make(map[string]domain.Compound, len(compounds)),
	}
	for _, c := range compounds {
		set.compounds[strings.ToUpper(c.Value)] = c
		if len(c.Value) > set.maxLen {
			set.maxLen = len(c.Value)
		}
	}
	return set
}

// CompoundFor resolves a string to a compound, case-insensitively.
func (s *CompoundSet) CompoundFor(str string) (domain.Compound, bool) {
	c, ok := s.compounds[strings.ToUpper(str)]
	return c, ok
}

// MaxCompoundLength returns the longest string form in the set.
func (s *CompoundSet) MaxCompoundLength() int {
	return s.maxLen
}

// Name returns the set's descriptive name.
func (s *CompoundSet) Name() string {
	return s.name
}
