// Package engine implements the flock-record validation engine: a single-pass
// batch transform that normalizes a parsed spreadsheet, partitions rows into
// operational and care records, flags duplicates, and attaches per-row
// validation findings. The engine is pure and holds no cross-request state.
package engine

import (
	"math"
	"strconv"
	"strings"
)

// CellKind discriminates the three value states a spreadsheet cell can hold.
type CellKind int

const (
	KindMissing CellKind = iota
	KindNumber
	KindText
)

// Cell is a tagged spreadsheet value: missing, a float64, or a string.
// The zero value is a missing cell.
type Cell struct {
	Kind CellKind
	Num  float64
	Str  string
}

// Missing returns the missing cell.
func Missing() Cell { return Cell{} }

// Number returns a numeric cell.
func Number(f float64) Cell { return Cell{Kind: KindNumber, Num: f} }

// Text returns a text cell.
func Text(s string) Cell { return Cell{Kind: KindText, Str: s} }

// IsMissing reports whether the cell carries no value. A numeric NaN counts
// as missing so that coercion leftovers never pass truthiness or validation.
func (c Cell) IsMissing() bool {
	return c.Kind == KindMissing || (c.Kind == KindNumber && math.IsNaN(c.Num))
}

// Truthy reports whether the cell carries real data for classification
// purposes: a non-zero number, or a string whose trimmed form is not one of
// the empty/zero/nan placeholders.
func (c Cell) Truthy() bool {
	switch c.Kind {
	case KindNumber:
		return !math.IsNaN(c.Num) && c.Num != 0
	case KindText:
		s := strings.TrimSpace(c.Str)
		return s != "" && s != "0" && !strings.EqualFold(s, "nan")
	default:
		return false
	}
}

// TrimmedString renders the cell the way the validator compares it: missing
// becomes the empty string, numbers print in their shortest form, text is
// whitespace-trimmed.
func (c Cell) TrimmedString() string {
	switch c.Kind {
	case KindNumber:
		if math.IsNaN(c.Num) {
			return ""
		}
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	case KindText:
		return strings.TrimSpace(c.Str)
	default:
		return ""
	}
}

// Coerce parses the cell as a number. Text that fails to parse, NaN, and
// missing input all coerce to missing; this mirrors the "failures degrade to
// missing" normalization contract, so coercion can never raise a finding.
func (c Cell) Coerce() Cell {
	switch c.Kind {
	case KindNumber:
		if math.IsNaN(c.Num) {
			return Missing()
		}
		return c
	case KindText:
		s := strings.TrimSpace(c.Str)
		if s == "" {
			return Missing()
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) {
			return Missing()
		}
		return Number(f)
	default:
		return Missing()
	}
}

// JSONValue renders the cell for the response body: nil for missing cells and
// for non-finite numbers, which the transport format cannot represent.
func (c Cell) JSONValue() any {
	switch c.Kind {
	case KindNumber:
		if math.IsNaN(c.Num) || math.IsInf(c.Num, 0) {
			return nil
		}
		return c.Num
	case KindText:
		return c.Str
	default:
		return nil
	}
}

// keyPart encodes the cell for duplicate grouping: type-tagged so that a
// missing cell compares equal to other missing cells and to nothing else.
func (c Cell) keyPart() string {
	switch c.Kind {
	case KindNumber:
		if math.IsNaN(c.Num) {
			return "m|"
		}
		return "n|" + strconv.FormatFloat(c.Num, 'g', -1, 64)
	case KindText:
		return "t|" + c.Str
	default:
		return "m|"
	}
}
