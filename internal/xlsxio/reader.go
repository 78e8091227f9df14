// Package xlsxio parses uploaded Excel workbooks into engine tables.
//
// Only the first sheet is read: row 1 is the header, every following row is a
// record. Cell typing follows the engine's tagged-value model: empty cells are
// missing, cells that parse as numbers are numeric, everything else is text.
package xlsxio

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/YasserHifzy202/poultry-backend/internal/engine"
)

// AllowedExtension reports whether filename has an accepted Excel extension.
func AllowedExtension(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xls", ".xlsx":
		return true
	}
	return false
}

// Read parses a workbook from r into a table. A workbook that cannot be
// opened, or that contains no sheets, is a transport-tier failure: the caller
// rejects the request and the engine never runs.
func Read(r io.Reader) (*engine.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return &engine.Table{}, nil
	}

	return buildTable(rows[0], rows[1:]), nil
}

// buildTable converts a header row plus data rows into an engine table.
// Columns with an empty header are dropped; duplicate headers keep the last
// occurrence, matching map-based column resolution downstream.
func buildTable(header []string, data [][]string) *engine.Table {
	t := &engine.Table{}
	colIdx := make([]int, 0, len(header))
	for i, name := range header {
		if strings.TrimSpace(name) == "" {
			continue
		}
		t.AddColumn(name)
		colIdx = append(colIdx, i)
	}

	names := make([]string, len(colIdx))
	for j, i := range colIdx {
		names[j] = header[i]
	}

	for _, raw := range data {
		row := make(engine.Record, len(names))
		for j, i := range colIdx {
			var v string
			if i < len(raw) {
				v = raw[i]
			}
			row[names[j]] = typeCell(v)
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// typeCell maps a formatted cell string to the tagged value model.
func typeCell(v string) engine.Cell {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" {
		return engine.Missing()
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return engine.Number(f)
	}
	return engine.Text(v)
}
