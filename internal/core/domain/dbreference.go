package domain

// DBReference is a cross-reference from a record to another database.
type DBReference struct {
	// Type is the referenced database, e.g. "GO" or "PDB".
	Type string
	// ID is the identifier within the referenced database.
	ID string
	// Properties holds the reference's property type/value pairs.
	Properties map[string]string
}

// DBReferences groups cross-references by database type while preserving the
// order in which types first appear in the record.
type DBReferences struct {
	types  []string
	byType map[string][]DBReference
}

// NewDBReferences returns an empty reference grouping.
func NewDBReferences() *DBReferences {
	return &DBReferences{byType: make(map[string][]DBReference)}
}

// Add appends ref to its type bucket, creating the bucket on first use.
func (d *DBReferences) Add(ref DBReference) {
	if _, ok := d.byType[ref.Type]; !ok {
		d.types = append(d.types, ref.Type)
	}
	d.byType[ref.Type] = append(d.byType[ref.Type], ref)
}

// Types returns the database types in insertion order.
func (d *DBReferences) Types() []string {
	out := make([]string, len(d.types))
	copy(out, d.types)
	return out
}

// ByType returns the references recorded for a database type.
func (d *DBReferences) ByType(t string) []DBReference {
	return d.byType[t]
}

// Len returns the total number of references across all types.
func (d *DBReferences) Len() int {
	n := 0
	for _, refs := range d.byType {
		n += len(refs)
	}
	return n
}
