package engine

// Duplicate suffixes appended to Error Details. The separator is part of the
// suffix, so a duplicate row with no other findings ends up with details that
// begin "; " — downstream consumers rely on the literal form.
const (
	operationalDupSuffix = "; Duplicate Flock/Date"
	careDupSuffix        = "; Duplicate Flock/Date/Vaccination/Medication"
)

// Row is one annotated output record: every schema column rendered JSON-safe
// plus the validation outcome fields.
type Row map[string]any

// assembleRow flattens one record into its output form. details is the joined
// finding string ("" when clean); dupSuffix is appended when dup is set.
// note is attached only when non-nil (care rows).
func assembleRow(row Record, cols []string, dup bool, details, dupSuffix string, note *string) Row {
	out := make(Row, len(cols)+4)
	for _, col := range cols {
		out[col] = row.Get(col).JSONValue()
	}

	hasError := details != "" || dup
	if dup {
		details += dupSuffix
	}

	out["Duplicate Error"] = dup
	if details != "" {
		out["Error Details"] = details
	} else {
		out["Error Details"] = nil
	}
	out["has_error"] = hasError

	if note != nil {
		if *note != "" {
			out["note"] = *note
		} else {
			out["note"] = nil
		}
	}

	return out
}
