package records

// DocumentRow is one row of a parcel's document history, in the column order of
// the source table: [entry, field2, recorded date, type, ...].
type DocumentRow []string

func (d DocumentRow) field(i int) string {
	if i < len(d) {
		return d[i]
	}
	return ""
}

func (d DocumentRow) ID() string   { return d.field(0) }
func (d DocumentRow) Date() string { return d.field(2) }
func (d DocumentRow) Type() string { return d.field(3) }

type Property struct {
	Address string        `json:"address"`
	Owner   string        `json:"owner"`
	URL     string        `json:"url"`
	Docs    []DocumentRow `json:"docs"`
}

// WithDocs returns a copy of the property holding only the given documents.
func (p Property) WithDocs(docs []DocumentRow) Property {
	p.Docs = docs
	return p
}
