package table

// Row maps a column name to its cell value. A column that is absent from the
// map (or present with an empty string) is a missing cell.
type Row map[string]string

// Table represents raw tabular data as read from a delimited-text or
// spreadsheet source. Column order follows Headers; Rows never carry keys
// outside Headers.
type Table struct {
	Headers []string
	Rows    []Row
}

// HasColumn reports whether the table carries a column with the given name.
func (t *Table) HasColumn(name string) bool {
	for _, h := range t.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// MissingColumns returns the subset of required column names that the table
// does not carry, in the order given.
func (t *Table) MissingColumns(required ...string) []string {
	var missing []string
	for _, name := range required {
		if !t.HasColumn(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// IsComplete reports whether the row has a non-empty cell for every header.
func (r Row) IsComplete(headers []string) bool {
	for _, h := range headers {
		if v, ok := r[h]; !ok || v == "" {
			return false
		}
	}
	return true
}
