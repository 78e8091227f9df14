package engine

import (
	"strings"

	"github.com/YasserHifzy202/poultry-backend/internal/schema"
)

// Normalize prepares a raw parsed table for classification:
//
//  1. Every column header is whitespace-trimmed.
//  2. Every catalog column absent from the source is added as all-missing.
//  3. Numeric operational columns are coerced; unparsable values degrade to
//     missing rather than producing a finding.
//
// Normalize always succeeds and never mutates its input.
func Normalize(in *Table) *Table {
	out := &Table{
		Columns: make([]string, 0, len(in.Columns)),
		Rows:    make([]Record, 0, len(in.Rows)),
	}

	// Header trim. When two headers trim to the same name, the later declared
	// column wins; resolution follows schema order, never map order, so the
	// output is stable across runs.
	rename := make(map[string]string, len(in.Columns))
	for _, col := range in.Columns {
		trimmed := strings.TrimSpace(col)
		rename[col] = trimmed
		if !out.HasColumn(trimmed) {
			out.Columns = append(out.Columns, trimmed)
		}
	}

	for _, row := range in.Rows {
		nr := make(Record, len(row))
		for _, col := range in.Columns {
			if cell, ok := row[col]; ok {
				nr[rename[col]] = cell
			}
		}
		out.Rows = append(out.Rows, nr)
	}

	for _, col := range schema.AllCols() {
		out.AddColumn(col)
	}

	for _, col := range schema.RequiredOperationalCols {
		if !schema.IsNumericOperational(col) {
			continue
		}
		for _, row := range out.Rows {
			row[col] = row.Get(col).Coerce()
		}
	}

	return out
}
