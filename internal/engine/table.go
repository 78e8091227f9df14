package engine

// Record is one input row: a mapping from column name to cell value.
// Columns absent from the map read as missing.
type Record map[string]Cell

// Get returns the cell for col, or a missing cell when the column is absent.
func (r Record) Get(col string) Cell {
	if c, ok := r[col]; ok {
		return c
	}
	return Missing()
}

// Clone returns a shallow copy of the record. Cells are values, so the copy
// is independent of the original.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Table is an ordered sequence of records sharing a column schema.
// Columns preserves the source header order; Rows preserves input row order.
type Table struct {
	Columns []string
	Rows    []Record
}

// HasColumn reports whether col is part of the table schema.
func (t *Table) HasColumn(col string) bool {
	for _, c := range t.Columns {
		if c == col {
			return true
		}
	}
	return false
}

// AddColumn appends col to the schema. Existing rows read the new column as
// missing; no backfill is needed because Record.Get defaults to missing.
func (t *Table) AddColumn(col string) {
	if !t.HasColumn(col) {
		t.Columns = append(t.Columns, col)
	}
}
