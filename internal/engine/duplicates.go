package engine

import "strings"

// KeyFunc derives the duplicate-grouping key for one row.
type KeyFunc func(Record) string

// MarkDuplicates returns, for each row, whether its key occurs more than once
// in rows. All rows sharing a colliding key are flagged, not just the later
// occurrences. An empty input yields an empty (all-false) result.
func MarkDuplicates(rows []Record, key KeyFunc) []bool {
	flags := make([]bool, len(rows))
	if len(rows) < 2 {
		return flags
	}

	counts := make(map[string]int, len(rows))
	keys := make([]string, len(rows))
	for i, row := range rows {
		keys[i] = key(row)
		counts[keys[i]]++
	}
	for i := range rows {
		flags[i] = counts[keys[i]] > 1
	}
	return flags
}

// OperationalKey groups operational rows by the exact (Flock, Date) pair.
// Values are compared as-is; a missing cell compares equal only to other
// missing cells.
func OperationalKey(row Record) string {
	return row.Get("Flock").keyPart() + "\x1f" + row.Get("Date").keyPart()
}

// careKeyCols lists the ten columns of the care duplicate key in order.
// Date and Medication Exp Date are trimmed but keep their case; every other
// field is trimmed and upper-cased, with missing normalized to "".
var careKeyCols = []struct {
	name      string
	caseExact bool
}{
	{"Flock", false},
	{"Date", true},
	{"Vaccination", false},
	{"Vacc Method", false},
	{"Vacc Type", false},
	{"VaccinevDoze", false},
	{"Medication", false},
	{"Medication Dose", false},
	{"Medication Batch", false},
	{"Medication Exp Date", true},
}

// CareKey builds the normalized ten-field duplicate key for a care row.
func CareKey(row Record) string {
	parts := make([]string, len(careKeyCols))
	for i, kc := range careKeyCols {
		v := row.Get(kc.name).TrimmedString()
		if !kc.caseExact {
			v = strings.ToUpper(v)
		}
		parts[i] = v
	}
	return strings.Join(parts, "\x1f")
}
