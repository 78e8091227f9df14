package engine

import (
	"strings"

	"github.com/YasserHifzy202/poultry-backend/internal/schema"
)

// Finding messages. These strings are part of the response contract and must
// not be reworded.
const (
	msgMissingVaccAndMed = "Missing Vaccination and Medication"
	noteVaccOnly         = "Note: Only vaccination recorded, no medication data entered."
	noteMedOnly          = "Note: Only medication recorded, no vaccination data entered."
)

// CheckOperationalRow applies the operational field rules and returns the
// findings joined with "; ", or "" when the row is clean. Qualifying columns
// are checked in catalog order; Flock and Date are checked last.
func CheckOperationalRow(row Record) string {
	var findings []string

	for _, col := range schema.QualifyingOperationalCols() {
		cell := row.Get(col)
		switch {
		case cell.IsMissing() || cell.TrimmedString() == "":
			findings = append(findings, "Missing "+col)
		case cell.Kind == KindNumber && cell.Num < 0:
			findings = append(findings, "Negative value in "+col)
		}
	}

	for _, col := range []string{"Flock", "Date"} {
		cell := row.Get(col)
		if cell.IsMissing() || cell.TrimmedString() == "" {
			findings = append(findings, "Missing "+col)
		}
	}

	return strings.Join(findings, "; ")
}

// CheckCareRow applies the care field rules. It returns the joined findings
// ("" when clean) and an informational note ("" when both or neither of
// Vaccination/Medication are recorded).
func CheckCareRow(row Record) (details, note string) {
	var findings []string

	vacc := row.Get("Vaccination").TrimmedString()
	med := row.Get("Medication").TrimmedString()

	switch {
	case vacc == "" && med == "":
		findings = append(findings, msgMissingVaccAndMed)
	case vacc != "" && med == "":
		note = noteVaccOnly
	case med != "" && vacc == "":
		note = noteMedOnly
	}

	for _, col := range schema.RequiredCareCols {
		if col == "Vaccination" || col == "Medication" {
			continue
		}
		cell := row.Get(col)
		if cell.IsMissing() || cell.TrimmedString() == "" {
			findings = append(findings, "Missing "+col)
		}
	}

	return strings.Join(findings, "; "), note
}
