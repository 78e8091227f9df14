package engine

import "github.com/YasserHifzy202/poultry-backend/internal/schema"

// IsOperational reports whether a row is an operational (husbandry metrics)
// record: at least one qualifying operational column carries a truthy value.
// Flock, Date and the optional measurement columns never qualify, so a row of
// identifiers alone still classifies as a care record.
func IsOperational(row Record) bool {
	for _, col := range schema.QualifyingOperationalCols() {
		if row.Get(col).Truthy() {
			return true
		}
	}
	return false
}

// Partition splits the normalized table into operational and care rows,
// preserving input order within each category (stable partition). Every row
// lands in exactly one of the two slices.
func Partition(t *Table) (operational, care []Record) {
	for _, row := range t.Rows {
		if IsOperational(row) {
			operational = append(operational, row)
		} else {
			care = append(care, row)
		}
	}
	return operational, care
}
