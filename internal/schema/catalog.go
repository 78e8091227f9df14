// Package schema defines the column catalogs for poultry flock records.
//
// The catalogs are fixed at build time and shared read-only across requests.
// Column names must match the spreadsheet headers exactly (after trimming).
package schema

// RequiredOperationalCols lists every column an operational record must carry.
// Order matters: validation messages are emitted in catalog order.
var RequiredOperationalCols = []string{
	"Flock", "Date", "Animal Mortality", "Animals Culled", "Table Eggs Prod",
	"Animal Feed Formula Name", "Supplied Feed", "Feed Received (Kg)",
	"Animal Feed Consumed", "Water Consumption",
	"Animal Weight", "Animal Uniformity", "Animal CV Uniformity",
	"Female Feed Formula ID", "Temperature Low", "Ammonia Level",
	"Animal Feed Inventory", "Female Feed Type ID",
	"Light_Duration (HU)", "Light intensity %",
}

// OptionalOperationalCols may be legitimately absent from an operational
// record without producing a finding.
var OptionalOperationalCols = []string{
	"Animal Weight", "Animal Uniformity", "Animal CV Uniformity",
}

// RequiredCareCols lists every column a care (vaccination/medication) record
// must carry. Order matters for message ordering, same as the operational set.
var RequiredCareCols = []string{
	"Vaccination", "Creation User ID", "Medication", "Vacc Method",
	"Vacc Type", "VaccinevDoze", "Medication Batch", "Concentration %",
	"Record Source Type", "Medication Dose", "Medication Exp Date",
	"Doctor Name", "Doses Unit", "Produced PS_Nest_HE", "Vaccine Name",
}

// TextOperationalCols are the operational columns that hold categorical or
// free-text values and are therefore exempt from numeric coercion.
var TextOperationalCols = []string{
	"Flock", "Date", "Animal Feed Formula Name", "Supplied Feed",
	"Female Feed Formula ID", "Female Feed Type ID",
}

var (
	optionalOperational = toSet(OptionalOperationalCols)
	textOperational     = toSet(TextOperationalCols)
)

func toSet(cols []string) map[string]struct{} {
	s := make(map[string]struct{}, len(cols))
	for _, c := range cols {
		s[c] = struct{}{}
	}
	return s
}

// IsOptionalOperational reports whether col is in the optional operational set.
func IsOptionalOperational(col string) bool {
	_, ok := optionalOperational[col]
	return ok
}

// IsNumericOperational reports whether col is an operational column whose
// values are coerced to numbers during normalization.
func IsNumericOperational(col string) bool {
	if _, text := textOperational[col]; text {
		return false
	}
	if IsOptionalOperational(col) {
		return false
	}
	return true
}

// QualifyingOperationalCols returns the operational columns that participate
// in classification and in the operational required-field rule: the required
// set minus the optional columns and minus Flock/Date, in catalog order.
func QualifyingOperationalCols() []string {
	out := make([]string, 0, len(RequiredOperationalCols))
	for _, col := range RequiredOperationalCols {
		if col == "Flock" || col == "Date" || IsOptionalOperational(col) {
			continue
		}
		out = append(out, col)
	}
	return out
}

// AllCols returns the union of both required catalogs, operational first,
// with care columns appended in catalog order and duplicates skipped.
func AllCols() []string {
	seen := make(map[string]struct{}, len(RequiredOperationalCols)+len(RequiredCareCols))
	out := make([]string, 0, len(RequiredOperationalCols)+len(RequiredCareCols))
	for _, col := range RequiredOperationalCols {
		if _, ok := seen[col]; ok {
			continue
		}
		seen[col] = struct{}{}
		out = append(out, col)
	}
	for _, col := range RequiredCareCols {
		if _, ok := seen[col]; ok {
			continue
		}
		seen[col] = struct{}{}
		out = append(out, col)
	}
	return out
}
