// Package models defines data structures for assignment analysis.
package models

import (
	"strconv"
	"strings"
	"time"
)

// CellKind identifies which variant a Cell holds.
type CellKind int

const (
	// CellEmpty is an absent or blank cell.
	CellEmpty CellKind = iota
	// CellText is a string cell (shared, inline, boolean or formula text).
	CellText
	// CellNumber is a plain numeric cell.
	CellNumber
	// CellDate is a cell the workbook marks as a date.
	CellDate
)

// String returns the kind name used in logs and test output.
func (k CellKind) String() string {
	switch k {
	case CellText:
		return "text"
	case CellNumber:
		return "number"
	case CellDate:
		return "date"
	default:
		return "empty"
	}
}

// Cell is a single grid value. Only the field matching Kind is meaningful.
type Cell struct {
	Kind CellKind
	Str  string
	Num  float64
	Time time.Time
}

// Empty returns the empty cell.
func Empty() Cell { return Cell{} }

// Text returns a text cell. The empty string yields an empty cell.
func Text(s string) Cell {
	if s == "" {
		return Cell{}
	}
	return Cell{Kind: CellText, Str: s}
}

// Number returns a numeric cell.
func Number(v float64) Cell { return Cell{Kind: CellNumber, Num: v} }

// Date returns a date cell.
func Date(t time.Time) Cell { return Cell{Kind: CellDate, Time: t} }

// IsEmpty reports whether the cell holds no value.
func (c Cell) IsEmpty() bool {
	return c.Kind == CellEmpty
}

// String renders the cell as display text.
// Numbers use the shortest round-trip form (1, 2.5); dates use YYYY-MM-DD.
func (c Cell) String() string {
	switch c.Kind {
	case CellText:
		return c.Str
	case CellNumber:
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	case CellDate:
		return c.Time.Format(time.DateOnly)
	default:
		return ""
	}
}

// Normalized returns the lower-cased, trimmed display text.
func (c Cell) Normalized() string {
	return strings.ToLower(strings.TrimSpace(c.String()))
}
