package app

import (
	"fmt"
	"io"
	"strings"

	"uniseq/internal/sequence"
	"uniseq/internal/ui/style"
)

// fastaLineWidth is the column at which sequence lines wrap.
const fastaLineWidth = 60

// writeFasta writes one sequence in FASTA form. The header prefers the
// record's name and falls back to the accession the caller asked for.
func writeFasta(w io.Writer, accession string, seq *sequence.ProxySequence) error {
	header := seq.Name().ID
	if header == "" {
		header = strings.ToUpper(accession)
	}
	if organism := seq.OrganismName(); organism != "" {
		header += " " + organism
	}
	if _, err := fmt.Fprintln(w, ">"+header); err != nil {
		return err
	}

	s := seq.String()
	for start := 0; start < len(s); start += fastaLineWidth {
		end := start + fastaLineWidth
		if end > len(s) {
			end = len(s)
		}
		if _, err := fmt.Fprintln(w, s[start:end]); err != nil {
			return err
		}
	}
	return nil
}

// renderInfo writes a metadata summary for one sequence.
func renderInfo(w io.Writer, accession string, seq *sequence.ProxySequence) error {
	name := seq.Name()
	title := name.ID
	if title == "" {
		title = strings.ToUpper(accession)
	}

	var b strings.Builder
	b.WriteString(style.Header.Render(title) + "\n")

	writeField(&b, "Source", name.Source)
	writeField(&b, "Organism", seq.OrganismName())
	writeField(&b, "Gene", seq.GeneName())
	writeField(&b, "Length", fmt.Sprintf("%d", seq.Length()))

	if accessions := seq.Accessions(); len(accessions) > 0 {
		ids := make([]string, len(accessions))
		for i, a := range accessions {
			ids[i] = a.ID
		}
		writeField(&b, "Accessions", strings.Join(ids, ", "))
	}
	if keywords := seq.Keywords(); len(keywords) > 0 {
		writeField(&b, "Keywords", strings.Join(keywords, ", "))
	}
	if aliases := seq.ProteinAliases(); len(aliases) > 0 {
		writeField(&b, "Protein aliases", strings.Join(aliases, ", "))
	}
	if aliases := seq.GeneAliases(); len(aliases) > 0 {
		writeField(&b, "Gene aliases", strings.Join(aliases, ", "))
	}

	refs := seq.DatabaseReferences()
	if types := refs.Types(); len(types) > 0 {
		b.WriteString(style.Label.Render("Database references:") + "\n")
		for _, t := range types {
			b.WriteString(fmt.Sprintf("  %s: %d\n", t, len(refs.ByType(t))))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// writeField writes one aligned "label: value" line, skipping empty values.
func writeField(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	b.WriteString(style.Label.Render(fmt.Sprintf("%-16s", label+":")) + " " + value + "\n")
}
