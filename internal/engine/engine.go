package engine

// Result is the analysis output: two ordered sequences of annotated rows.
// Both slices are always non-nil so the response serializes as [] rather
// than null.
type Result struct {
	OperationalData []Row `json:"operational_data"`
	CareData        []Row `json:"care_data"`
}

// Counts summarizes a result for logging and auditing.
type Counts struct {
	Operational int
	Care        int
	WithErrors  int
}

// Counts tallies the result rows and how many carry an error.
func (r *Result) Counts() Counts {
	c := Counts{
		Operational: len(r.OperationalData),
		Care:        len(r.CareData),
	}
	for _, row := range r.OperationalData {
		if row["has_error"] == true {
			c.WithErrors++
		}
	}
	for _, row := range r.CareData {
		if row["has_error"] == true {
			c.WithErrors++
		}
	}
	return c
}

// Analyze runs the full pipeline over a parsed table: schema normalization,
// classification, per-category duplicate detection, field validation, and
// result assembly. It is deterministic and never fails; every domain finding
// is attached to its row rather than raised.
func Analyze(in *Table) *Result {
	t := Normalize(in)
	operational, care := Partition(t)

	opDup := MarkDuplicates(operational, OperationalKey)
	careDup := MarkDuplicates(care, CareKey)

	result := &Result{
		OperationalData: make([]Row, 0, len(operational)),
		CareData:        make([]Row, 0, len(care)),
	}

	for i, row := range operational {
		details := CheckOperationalRow(row)
		result.OperationalData = append(result.OperationalData,
			assembleRow(row, t.Columns, opDup[i], details, operationalDupSuffix, nil))
	}

	for i, row := range care {
		details, note := CheckCareRow(row)
		result.CareData = append(result.CareData,
			assembleRow(row, t.Columns, careDup[i], details, careDupSuffix, &note))
	}

	return result
}
