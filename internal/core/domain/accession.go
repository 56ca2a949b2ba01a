// Package domain contains the pure types of the uniseq core: accessions,
// compounds, alphabets, tokenization and shared settings.
package domain

import (
	"regexp"
	"strings"

	"go.trai.ch/zerr"
)

// Patterns taken from https://www.uniprot.org/help/accession_numbers.
const (
	swissProtPattern = "[OPQ][0-9][A-Z0-9]{3}[0-9]"
	tremblPattern    = "[A-NR-Z][0-9]([A-Z][A-Z0-9]{2}[0-9]){1,2}"
)

var accessionPattern = regexp.MustCompile("^(" + swissProtPattern + "|" + tremblPattern + ")$")

// Accession is a validated UniProt accession. It is immutable once parsed.
type Accession string

// ParseAccession validates an identifier against the two known accession
// shapes, upper-casing it first. It performs no I/O.
func ParseAccession(id string) (Accession, error) {
	upper := strings.ToUpper(id)
	if !accessionPattern.MatchString(upper) {
		return "", zerr.With(ErrInvalidAccession, "accession", id)
	}
	return Accession(upper), nil
}

// IsValidAccession reports whether id matches a known accession shape.
func IsValidAccession(id string) bool {
	_, err := ParseAccession(id)
	return err == nil
}

// String returns the upper-cased accession string.
func (a Accession) String() string {
	return string(a)
}

// DataSourceUniprot identifies UniProt as the origin of an AccessionID.
const DataSourceUniprot = "uniprot"

// AccessionID pairs an identifier with the data source it came from.
type AccessionID struct {
	ID     string
	Source string
}
