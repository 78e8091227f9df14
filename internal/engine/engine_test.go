package engine

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/YasserHifzy202/poultry-backend/internal/schema"
)

// tableOf builds an input table whose schema is the union of the given
// records' columns, in first-seen order.
func tableOf(rows ...Record) *Table {
	t := &Table{}
	for _, r := range rows {
		for col := range r {
			t.AddColumn(col)
		}
	}
	t.Rows = rows
	return t
}

func TestAnalyze_ValidOperationalRow(t *testing.T) {
	result := Analyze(tableOf(validOperational()))

	if len(result.OperationalData) != 1 || len(result.CareData) != 0 {
		t.Fatalf("partition = %d/%d, want 1 operational", len(result.OperationalData), len(result.CareData))
	}

	row := result.OperationalData[0]
	if row["has_error"] != false {
		t.Errorf("has_error = %v, want false", row["has_error"])
	}
	if row["Duplicate Error"] != false {
		t.Errorf("Duplicate Error = %v, want false", row["Duplicate Error"])
	}
	if row["Error Details"] != nil {
		t.Errorf("Error Details = %v, want nil", row["Error Details"])
	}
	if _, hasNote := row["note"]; hasNote {
		t.Error("operational rows must not carry a note field")
	}
}

func TestAnalyze_ZeroMetricsClassifyAsCare(t *testing.T) {
	r := Record{
		"Flock":            Text("A1"),
		"Date":             Text("2024-01-01"),
		"Animal Mortality": Number(0),
	}

	result := Analyze(tableOf(r))

	if len(result.CareData) != 1 {
		t.Fatalf("row with no truthy operational signal should be care, got %d/%d",
			len(result.OperationalData), len(result.CareData))
	}

	row := result.CareData[0]
	details, _ := row["Error Details"].(string)
	if !strings.Contains(details, "Missing Vaccination and Medication") {
		t.Errorf("Error Details = %q, want vacc/med finding", details)
	}
	for _, col := range schema.RequiredCareCols {
		if col == "Vaccination" || col == "Medication" {
			continue
		}
		if !strings.Contains(details, "Missing "+col) {
			t.Errorf("Error Details lacks %q: %q", "Missing "+col, details)
		}
	}
}

func TestAnalyze_DuplicateOperationalRows(t *testing.T) {
	a := validOperational()
	b := validOperational()
	result := Analyze(tableOf(a, b))

	if len(result.OperationalData) != 2 {
		t.Fatalf("want 2 operational rows, got %d", len(result.OperationalData))
	}

	for i, row := range result.OperationalData {
		if row["Duplicate Error"] != true {
			t.Errorf("row %d Duplicate Error = %v, want true", i, row["Duplicate Error"])
		}
		if row["has_error"] != true {
			t.Errorf("row %d has_error = %v, want true", i, row["has_error"])
		}
		details, _ := row["Error Details"].(string)
		if !strings.HasSuffix(details, "; Duplicate Flock/Date") {
			t.Errorf("row %d Error Details = %q, want duplicate suffix", i, details)
		}
		// The rows were otherwise valid: the suffix is the whole string,
		// leading separator included.
		if details != "; Duplicate Flock/Date" {
			t.Errorf("row %d Error Details = %q, want literal %q", i, details, "; Duplicate Flock/Date")
		}
	}
}

func TestAnalyze_DuplicateSuffixAfterFindings(t *testing.T) {
	a := validOperational()
	b := validOperational()
	a["Animal Feed Consumed"] = Number(-5)
	b["Animal Feed Consumed"] = Number(-5)

	result := Analyze(tableOf(a, b))

	details, _ := result.OperationalData[0]["Error Details"].(string)
	want := "Negative value in Animal Feed Consumed; Duplicate Flock/Date"
	if details != want {
		t.Errorf("Error Details = %q, want %q", details, want)
	}
}

func TestAnalyze_DuplicateCareRows(t *testing.T) {
	a := validCare()
	b := validCare()
	result := Analyze(tableOf(a, b))

	if len(result.CareData) != 2 {
		t.Fatalf("want 2 care rows, got %d", len(result.CareData))
	}
	for i, row := range result.CareData {
		details, _ := row["Error Details"].(string)
		if details != "; Duplicate Flock/Date/Vaccination/Medication" {
			t.Errorf("row %d Error Details = %q", i, details)
		}
		if row["has_error"] != true {
			t.Errorf("row %d has_error = %v, want true", i, row["has_error"])
		}
	}
}

func TestAnalyze_NegativeValue(t *testing.T) {
	r := validOperational()
	r["Animal Feed Consumed"] = Number(-5)

	result := Analyze(tableOf(r))
	row := result.OperationalData[0]

	if row["Error Details"] != "Negative value in Animal Feed Consumed" {
		t.Errorf("Error Details = %v", row["Error Details"])
	}
	if row["has_error"] != true {
		t.Errorf("has_error = %v, want true", row["has_error"])
	}
}

func TestAnalyze_CareNoteVaccinationOnly(t *testing.T) {
	r := validCare()
	r["Medication"] = Missing()

	result := Analyze(tableOf(r))
	row := result.CareData[0]

	if row["Error Details"] != nil {
		t.Errorf("Error Details = %v, want nil", row["Error Details"])
	}
	if row["note"] != "Note: Only vaccination recorded, no medication data entered." {
		t.Errorf("note = %v", row["note"])
	}
	if row["has_error"] != false {
		t.Errorf("has_error = %v, want false", row["has_error"])
	}
}

func TestAnalyze_CareNoteNullWhenAbsent(t *testing.T) {
	result := Analyze(tableOf(validCare()))
	row := result.CareData[0]

	note, present := row["note"]
	if !present {
		t.Fatal("care rows must always carry a note field")
	}
	if note != nil {
		t.Errorf("note = %v, want nil", note)
	}
}

func TestAnalyze_PartitionCompleteness(t *testing.T) {
	rows := []Record{
		validOperational(),
		validCare(),
		{"Flock": Text("X")},
		validOperational(),
	}

	result := Analyze(tableOf(rows...))

	total := len(result.OperationalData) + len(result.CareData)
	if total != len(rows) {
		t.Errorf("output rows = %d, want %d", total, len(rows))
	}
}

func TestAnalyze_StablePartitionOrder(t *testing.T) {
	// Interleave operational and care rows; within each category the output
	// must keep the input order. Dates differ so duplicate flags stay out of
	// the picture.
	mk := func(flock, date string, operational bool) Record {
		r := validOperational()
		if !operational {
			r = validCare()
		}
		r["Flock"] = Text(flock)
		r["Date"] = Text(date)
		return r
	}

	result := Analyze(tableOf(
		mk("OP-1", "2024-01-01", true),
		mk("CARE-1", "2024-01-02", false),
		mk("OP-2", "2024-01-03", true),
		mk("CARE-2", "2024-01-04", false),
		mk("OP-3", "2024-01-05", true),
	))

	wantOp := []string{"OP-1", "OP-2", "OP-3"}
	if len(result.OperationalData) != len(wantOp) {
		t.Fatalf("operational rows = %d, want %d", len(result.OperationalData), len(wantOp))
	}
	for i, want := range wantOp {
		if got := result.OperationalData[i]["Flock"]; got != want {
			t.Errorf("operational[%d] Flock = %v, want %q", i, got, want)
		}
	}

	wantCare := []string{"CARE-1", "CARE-2"}
	if len(result.CareData) != len(wantCare) {
		t.Fatalf("care rows = %d, want %d", len(result.CareData), len(wantCare))
	}
	for i, want := range wantCare {
		if got := result.CareData[i]["Flock"]; got != want {
			t.Errorf("care[%d] Flock = %v, want %q", i, got, want)
		}
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	in := tableOf(validOperational(), validCare(), Record{"Flock": Text("X")})

	first := Analyze(in)
	second := Analyze(in)

	if !reflect.DeepEqual(first, second) {
		t.Error("Analyze is not idempotent over an identical table")
	}
}

func TestAnalyze_NonFiniteValuesScrubbed(t *testing.T) {
	r := validOperational()
	r["Ammonia Level"] = Number(math.Inf(1))
	r["Temperature Low"] = Number(math.NaN())

	result := Analyze(tableOf(r))

	// NaN coerces to missing before classification; Inf survives as a
	// number but must never reach the output.
	for _, row := range append(result.OperationalData, result.CareData...) {
		if v := row["Ammonia Level"]; v != nil {
			t.Errorf("Ammonia Level = %v, want nil", v)
		}
		if v := row["Temperature Low"]; v != nil {
			t.Errorf("Temperature Low = %v, want nil", v)
		}
	}
}

func TestAnalyze_MissingColumnsRobust(t *testing.T) {
	// A table with a single unknown column must not fail; every catalog
	// column scores as missing.
	result := Analyze(&Table{
		Columns: []string{"Comment"},
		Rows:    []Record{{"Comment": Text("hello")}},
	})

	if len(result.CareData) != 1 {
		t.Fatalf("want 1 care row, got %d", len(result.CareData))
	}
	row := result.CareData[0]
	if row["Comment"] != "hello" {
		t.Errorf("original column lost: %v", row["Comment"])
	}
	if row["Flock"] != nil {
		t.Errorf("backfilled Flock = %v, want nil", row["Flock"])
	}
	if row["has_error"] != true {
		t.Error("row with every care field missing must have an error")
	}
}

func TestResult_Counts(t *testing.T) {
	bad := validOperational()
	bad["Date"] = Text("2024-01-02")
	bad["Animal Feed Consumed"] = Number(-1)

	result := Analyze(tableOf(validOperational(), bad, validCare()))
	counts := result.Counts()

	if counts.Operational != 2 || counts.Care != 1 {
		t.Errorf("Counts = %+v, want 2 operational / 1 care", counts)
	}
	if counts.WithErrors != 1 {
		t.Errorf("WithErrors = %d, want 1", counts.WithErrors)
	}
}
