package sequence

import (
	"context"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
	"uniseq/internal/core/domain"
	"uniseq/internal/core/ports"
)

// Sequence is the read interface shared by proxy sequences and their views.
// Positions are 1-based.
type Sequence interface {
	// Length returns the number of compounds.
	Length() int

	// CompoundAt returns the compound at a 1-based position, failing with
	// domain.ErrPositionOutOfRange outside [1, Length].
	CompoundAt(position int) (domain.Compound, error)

	// Alphabet returns the alphabet the sequence was tokenized against.
	Alphabet() domain.Alphabet
}

// ProxySequence is a sequence whose content is derived from a remote record.
// It is immutable once constructed: the record, metadata and compound
// sequence never change.
type ProxySequence struct {
	record    *Record
	alphabet  domain.Alphabet
	compounds []domain.Compound
}

// New retrieves the record for an accession and builds a proxy sequence
// over it. The identifier is validated before any I/O; fetching, parsing
// and tokenization errors all abort construction.
func New(ctx context.Context, id string, alphabet domain.Alphabet, fetcher ports.RecordFetcher, parser ports.DocumentParser, log ports.Logger) (*ProxySequence, error) {
	accession, err := domain.ParseAccession(id)
	if err != nil {
		return nil, err
	}

	raw, err := fetcher.Fetch(ctx, accession)
	if err != nil {
		return nil, err
	}

	return NewFromXML(raw, alphabet, parser, log)
}

// NewFromXML builds a proxy sequence from record bytes already in hand.
// Parse failure aborts construction; no compounds can be derived from a
// record that failed to parse.
func NewFromXML(data []byte, alphabet domain.Alphabet, parser ports.DocumentParser, log ports.Logger) (*ProxySequence, error) {
	root, err := parser.Parse(data)
	if err != nil {
		return nil, err
	}
	return NewFromRecord(NewRecord(root, log), alphabet)
}

// NewFromRecord builds a proxy sequence over an already parsed record.
func NewFromRecord(record *Record, alphabet domain.Alphabet) (*ProxySequence, error) {
	compounds, err := domain.Tokenize(record.SequenceText(), alphabet)
	if err != nil {
		return nil, err
	}
	return &ProxySequence{
		record:    record,
		alphabet:  alphabet,
		compounds: compounds,
	}, nil
}

// Length returns the number of compounds.
func (s *ProxySequence) Length() int {
	return len(s.compounds)
}

// CompoundAt returns the compound at a 1-based position.
func (s *ProxySequence) CompoundAt(position int) (domain.Compound, error) {
	if position < 1 || position > len(s.compounds) {
		return domain.Compound{}, zerr.With(domain.ErrPositionOutOfRange, "position", position)
	}
	return s.compounds[position-1], nil
}

// IndexOf returns the 1-based position of the first compound equal to c
// (case-insensitively), or 0 when absent.
func (s *ProxySequence) IndexOf(c domain.Compound) int {
	for i, compound := range s.compounds {
		if compound.EqualsIgnoreCase(c) {
			return i + 1
		}
	}
	return 0
}

// LastIndexOf returns the 1-based position of the last compound equal to c
// (case-insensitively), or 0 when absent.
func (s *ProxySequence) LastIndexOf(c domain.Compound) int {
	for i := len(s.compounds) - 1; i >= 0; i-- {
		if s.compounds[i].EqualsIgnoreCase(c) {
			return i + 1
		}
	}
	return 0
}

// String reconstructs the sequence from its compounds. Whitespace removed
// during tokenization is not restored.
func (s *ProxySequence) String() string {
	var b strings.Builder
	for _, c := range s.compounds {
		b.WriteString(c.Value)
	}
	return b.String()
}

// Compounds returns a copy of the compound sequence in order.
func (s *ProxySequence) Compounds() []domain.Compound {
	out := make([]domain.Compound, len(s.compounds))
	copy(out, s.compounds)
	return out
}

// Alphabet returns the alphabet the sequence was tokenized against.
func (s *ProxySequence) Alphabet() domain.Alphabet {
	return s.alphabet
}

// SubSequence returns a lazy 1-based window [begin, end] over the sequence.
// The view holds no copy; every access re-reads this sequence.
func (s *ProxySequence) SubSequence(begin, end int) *View {
	return &View{parent: s, begin: begin, end: end}
}

// Inverse returns a lazy reversed view over the whole sequence.
func (s *ProxySequence) Inverse() *View {
	return &View{parent: s, begin: 1, end: s.Length(), inverse: true}
}

// Equal reports sequence equality: both sequences must share the identical
// alphabet instance and hold pairwise case-insensitively equal compounds.
func (s *ProxySequence) Equal(other *ProxySequence) bool {
	if other == nil {
		return false
	}
	if s.alphabet != other.alphabet {
		return false
	}
	if len(s.compounds) != len(other.compounds) {
		return false
	}
	for i := range s.compounds {
		if !s.compounds[i].EqualsIgnoreCase(other.compounds[i]) {
			return false
		}
	}
	return true
}

// Hash returns a 64-bit digest of the reconstructed sequence string.
func (s *ProxySequence) Hash() uint64 {
	return xxhash.Sum64String(s.String())
}

// CountCompounds is not supported; callers must treat counting as
// unavailable rather than zero.
func (s *ProxySequence) CountCompounds(_ ...domain.Compound) (int, error) {
	return 0, domain.ErrCountingUnsupported
}

// Record returns the underlying record for metadata access.
func (s *ProxySequence) Record() *Record {
	return s.record
}

// Name returns the record's name as an AccessionID.
func (s *ProxySequence) Name() domain.AccessionID {
	return s.record.Name()
}

// Accessions returns every accession associated with the record.
func (s *ProxySequence) Accessions() []domain.AccessionID {
	return s.record.Accessions()
}

// Keywords returns the record's keyword list.
func (s *ProxySequence) Keywords() []string {
	return s.record.Keywords()
}

// GeneName returns the record's primary gene name.
func (s *ProxySequence) GeneName() string {
	return s.record.GeneName()
}

// OrganismName returns the organism name assigned to the record.
func (s *ProxySequence) OrganismName() string {
	return s.record.OrganismName()
}

// ProteinAliases returns the record's flattened protein alias list.
func (s *ProxySequence) ProteinAliases() []string {
	return s.record.ProteinAliases()
}

// GeneAliases returns the record's flattened gene alias list.
func (s *ProxySequence) GeneAliases() []string {
	return s.record.GeneAliases()
}

// DatabaseReferences returns the record's cross-references grouped by type.
func (s *ProxySequence) DatabaseReferences() *domain.DBReferences {
	return s.record.DatabaseReferences()
}

var _ Sequence = (*ProxySequence)(nil)
