// Package sequence implements the remote-backed proxy sequence: record
// extraction, compound tokenization and lazy sequence views.
package sequence

import (
	"strings"

	"uniseq/internal/core/domain"
	"uniseq/internal/core/ports"
)

// Record wraps a parsed record document and extracts the sequence text and
// metadata fields from it. Every metadata accessor is best-effort: missing
// or malformed structure degrades to an empty value and a logged warning,
// never an error. Absence of metadata is common and non-fatal.
type Record struct {
	root ports.Element
	log  ports.Logger
}

// NewRecord creates a Record over a parsed document root. A nil root is
// allowed; every accessor then returns its empty value.
func NewRecord(root ports.Element, log ports.Logger) *Record {
	return &Record{root: root, log: log}
}

// entry returns the record's entry element.
func (r *Record) entry() (ports.Element, bool) {
	if r.root == nil {
		return nil, false
	}
	entry, err := r.root.SelectSingle("entry")
	if err != nil {
		return nil, false
	}
	return entry, true
}

// SequenceText returns the raw sequence text, possibly containing embedded
// whitespace. Failure to locate the sequence degrades to "".
func (r *Record) SequenceText() string {
	entry, ok := r.entry()
	if !ok {
		r.log.Warn("no entry element in record, sequence will be blank")
		return ""
	}
	seq, err := entry.SelectSingle("sequence")
	if err != nil {
		r.log.Warn("problems while locating sequence in record, sequence will be blank")
		return ""
	}
	return seq.Text()
}

// Name returns the record's name as an AccessionID, empty when absent.
func (r *Record) Name() domain.AccessionID {
	entry, ok := r.entry()
	if !ok {
		return domain.AccessionID{}
	}
	name, err := entry.SelectSingle("name")
	if err != nil {
		return domain.AccessionID{}
	}
	return domain.AccessionID{ID: name.Text(), Source: domain.DataSourceUniprot}
}

// Accessions returns every accession associated with the record.
func (r *Record) Accessions() []domain.AccessionID {
	accessions := []domain.AccessionID{}
	entry, ok := r.entry()
	if !ok {
		return accessions
	}
	for _, el := range entry.SelectAll("accession") {
		accessions = append(accessions, domain.AccessionID{ID: el.Text(), Source: domain.DataSourceUniprot})
	}
	return accessions
}

// Keywords returns the record's keyword list.
func (r *Record) Keywords() []string {
	keywords := []string{}
	entry, ok := r.entry()
	if !ok {
		return keywords
	}
	for _, el := range entry.SelectAll("keyword") {
		keywords = append(keywords, el.Text())
	}
	return keywords
}

// GeneName returns the record's primary gene name, "" when absent.
func (r *Record) GeneName() string {
	entry, ok := r.entry()
	if !ok {
		return ""
	}
	gene, err := entry.SelectSingle("gene")
	if err != nil {
		r.log.Warn("problems while locating gene name in record, gene name will be blank")
		return ""
	}
	name, err := gene.SelectSingle("name")
	if err != nil {
		return ""
	}
	return name.Text()
}

// OrganismName returns the organism name assigned to the record, "" when absent.
func (r *Record) OrganismName() string {
	entry, ok := r.entry()
	if !ok {
		return ""
	}
	organism, err := entry.SelectSingle("organism")
	if err != nil {
		r.log.Warn("problems while locating organism name in record, organism name will be blank")
		return ""
	}
	name, err := organism.SelectSingle("name")
	if err != nil {
		return ""
	}
	return name.Text()
}

// ProteinAliases flattens every protein name in the record into one list:
// the top-level name groups, then those of each component, domain and
// submittedName child, then the cdAntigenName, innName, biotechName and
// allergenName leaves. Duplicates are kept.
func (r *Record) ProteinAliases() []string {
	aliases := []string{}
	entry, ok := r.entry()
	if !ok {
		return aliases
	}
	protein, err := entry.SelectSingle("protein")
	if err != nil {
		r.log.Warn("problems while locating protein aliases in record, aliases will be empty")
		return aliases
	}

	aliases = appendNameGroups(aliases, protein)
	for _, tag := range []string{"component", "domain", "submittedName"} {
		for _, el := range protein.SelectAll(tag) {
			aliases = appendNameGroups(aliases, el)
		}
	}
	for _, tag := range []string{"cdAntigenName", "innName", "biotechName", "allergenName"} {
		for _, el := range protein.SelectAll(tag) {
			if text := el.Text(); strings.TrimSpace(text) != "" {
				aliases = append(aliases, text)
			}
		}
	}
	return aliases
}

// appendNameGroups collects the alternativeName and recommendedName groups
// of a protein-like element. Each group yields its full name and, when
// present and non-empty, its short name.
func appendNameGroups(aliases []string, parent ports.Element) []string {
	for _, tag := range []string{"alternativeName", "recommendedName"} {
		for _, group := range parent.SelectAll(tag) {
			full, err := group.SelectSingle("fullName")
			if err != nil {
				continue
			}
			aliases = append(aliases, full.Text())

			short, err := group.SelectSingle("shortName")
			if err != nil {
				continue
			}
			if text := short.Text(); strings.TrimSpace(text) != "" {
				aliases = append(aliases, text)
			}
		}
	}
	return aliases
}

// GeneAliases flattens every gene's name children into one ordered list.
func (r *Record) GeneAliases() []string {
	aliases := []string{}
	entry, ok := r.entry()
	if !ok {
		return aliases
	}
	for _, gene := range entry.SelectAll("gene") {
		for _, name := range gene.SelectAll("name") {
			aliases = append(aliases, name.Text())
		}
	}
	return aliases
}

// DatabaseReferences groups the record's cross-references by database type,
// preserving first-appearance order of the types.
func (r *Record) DatabaseReferences() *domain.DBReferences {
	refs := domain.NewDBReferences()
	entry, ok := r.entry()
	if !ok {
		return refs
	}
	for _, el := range entry.SelectAll("dbReference") {
		ref := domain.DBReference{
			Type:       el.Attr("type"),
			ID:         el.Attr("id"),
			Properties: map[string]string{},
		}
		for _, prop := range el.SelectAll("property") {
			ref.Properties[prop.Attr("type")] = prop.Attr("value")
		}
		refs.Add(ref)
	}
	return refs
}
