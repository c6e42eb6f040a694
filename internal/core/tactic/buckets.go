package tactic

// Buckets collects display names per tactic column for a single conversion.
// Create one per run with NewBuckets; the zero value is not usable.
type Buckets struct {
	columns map[Tactic][]string
}

// NewBuckets returns twelve empty columns.
func NewBuckets() *Buckets {
	columns := make(map[Tactic][]string, len(All()))
	for _, t := range All() {
		columns[t] = nil
	}
	return &Buckets{columns: columns}
}

// Place normalises rawTactic and appends display to the matching column.
// An unknown tactic is returned as *UnknownTacticError and nothing is added.
func (b *Buckets) Place(techniqueID, rawTactic, display string) (Tactic, error) {
	t, ok := Normalize(rawTactic)
	if !ok {
		return "", &UnknownTacticError{TechniqueID: techniqueID, Tactic: rawTactic}
	}
	b.columns[t] = append(b.columns[t], display)
	return t, nil
}

// Column returns a copy of the display names placed in t.
func (b *Buckets) Column(t Tactic) []string {
	src := b.columns[t]
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// Depth is the length of the longest column.
func (b *Buckets) Depth() int {
	depth := 0
	for _, col := range b.columns {
		if len(col) > depth {
			depth = len(col)
		}
	}
	return depth
}

// Grid lays the columns out row-major: every row has one cell per tactic,
// exhausted columns are padded with "", and rows stop at the longest column.
func (b *Buckets) Grid() Grid {
	order := All()

	header := make([]string, len(order))
	for i, t := range order {
		header[i] = string(t)
	}

	depth := b.Depth()
	rows := make([][]string, depth)
	for r := 0; r < depth; r++ {
		row := make([]string, len(order))
		for c, t := range order {
			if col := b.columns[t]; r < len(col) {
				row[c] = col[r]
			}
		}
		rows[r] = row
	}

	return Grid{Header: header, Rows: rows}
}

// Grid is the tabular form written to CSV or XLSX.
type Grid struct {
	Header []string
	Rows   [][]string
}

// Records returns the header followed by the data rows.
func (g Grid) Records() [][]string {
	records := make([][]string, 0, len(g.Rows)+1)
	records = append(records, g.Header)
	return append(records, g.Rows...)
}
