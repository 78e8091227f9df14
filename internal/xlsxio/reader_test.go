package xlsxio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/YasserHifzy202/poultry-backend/internal/engine"
)

func TestAllowedExtension(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"flock.xlsx", true},
		{"flock.xls", true},
		{"FLOCK.XLSX", true},
		{"flock.csv", false},
		{"flock.xlsx.exe", false},
		{"flock", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := AllowedExtension(tt.filename); got != tt.want {
			t.Errorf("AllowedExtension(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

// workbook builds an in-memory xlsx from a header and string rows.
func workbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf
}

func TestRead_TypesCells(t *testing.T) {
	buf := workbook(t, [][]any{
		{"Flock", "Date", "Animal Mortality", "Supplied Feed"},
		{"A1", "2024-01-01", 3, "starter mix"},
		{"B2", "2024-01-02", nil, ""},
	})

	table, err := Read(buf)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if len(table.Columns) != 4 {
		t.Fatalf("columns = %v, want 4", table.Columns)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(table.Rows))
	}

	first := table.Rows[0]
	if got := first.Get("Flock"); got != engine.Text("A1") {
		t.Errorf("Flock = %+v, want Text(A1)", got)
	}
	if got := first.Get("Animal Mortality"); got != engine.Number(3) {
		t.Errorf("Animal Mortality = %+v, want Number(3)", got)
	}
	if got := first.Get("Supplied Feed"); got != engine.Text("starter mix") {
		t.Errorf("Supplied Feed = %+v, want text", got)
	}

	second := table.Rows[1]
	if !second.Get("Animal Mortality").IsMissing() {
		t.Error("empty numeric cell should be missing")
	}
	if !second.Get("Supplied Feed").IsMissing() {
		t.Error("empty text cell should be missing")
	}
}

func TestRead_ShortRowsPadAsMissing(t *testing.T) {
	buf := workbook(t, [][]any{
		{"Flock", "Date", "Animal Mortality"},
		{"A1"},
	})

	table, err := Read(buf)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	row := table.Rows[0]
	if !row.Get("Date").IsMissing() || !row.Get("Animal Mortality").IsMissing() {
		t.Error("cells beyond the row length should read as missing")
	}
}

func TestRead_HeaderOnly(t *testing.T) {
	buf := workbook(t, [][]any{
		{"Flock", "Date"},
	})

	table, err := Read(buf)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(table.Rows) != 0 {
		t.Errorf("rows = %d, want 0", len(table.Rows))
	}
	if len(table.Columns) != 2 {
		t.Errorf("columns = %v, want 2", table.Columns)
	}
}

func TestRead_EmptyHeaderCellsDropped(t *testing.T) {
	buf := workbook(t, [][]any{
		{"Flock", "", "Date"},
		{"A1", "ignored", "2024-01-01"},
	})

	table, err := Read(buf)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if len(table.Columns) != 2 {
		t.Fatalf("columns = %v, want [Flock Date]", table.Columns)
	}
	if got := table.Rows[0].Get("Date"); got != engine.Text("2024-01-01") {
		t.Errorf("Date = %+v, misaligned after dropped header", got)
	}
}

func TestRead_GarbageInput(t *testing.T) {
	if _, err := Read(strings.NewReader("this is not a workbook")); err == nil {
		t.Error("Read(garbage) should fail")
	}
}
