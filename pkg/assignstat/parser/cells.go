package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/assignstat-go/pkg/assignstat/models"
	"github.com/xuri/excelize/v2"
)

// LoadGrid reads every populated cell of a sheet into a typed grid.
// The grid's used range starts at the top-left of the declared dimension
// (or of the populated cells, whichever is further up and left) and ends at
// the last populated row and column.
func LoadGrid(f *excelize.File, sheetName string) (*models.Grid, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	declared, hasDeclared := declaredRange(f, sheetName)
	bounds, found := findDataBounds(rows)
	rng := usedRange(declared, hasDeclared, bounds, found)

	dec := newCellDecoder(f, sheetName)
	grid := models.NewGrid(rng)
	for rowIdx, row := range rows {
		for colIdx, raw := range row {
			if raw == "" {
				continue
			}
			cell, err := dec.decode(colIdx, rowIdx, raw)
			if err != nil {
				return nil, err
			}
			grid.Set(rowIdx, colIdx, cell)
		}
	}

	return grid, nil
}

// declaredRange decodes the sheet's <dimension ref>, if any.
// A single-cell reference is the writer's placeholder and carries no information.
func declaredRange(f *excelize.File, sheetName string) (models.CellRange, bool) {
	ref, err := f.GetSheetDimension(sheetName)
	if err != nil || ref == "" {
		return models.CellRange{}, false
	}
	rng, err := ParseRange(ref)
	if err != nil {
		return models.CellRange{}, false
	}
	if rng.MinRow == rng.MaxRow && rng.MinCol == rng.MaxCol {
		return models.CellRange{}, false
	}
	return rng, true
}

// usedRange combines the declared dimension with the populated bounds.
// The declared bounds only move the start; the end never extends past
// the populated cells.
func usedRange(declared models.CellRange, hasDeclared bool, bounds models.CellRange, found bool) models.CellRange {
	switch {
	case !found:
		return models.CellRange{}
	case !hasDeclared:
		return bounds
	}
	rng := unionRange(declared, bounds)
	rng.MaxRow, rng.MaxCol = bounds.MaxRow, bounds.MaxCol
	return rng
}

// cellDecoder turns raw cell strings into typed values.
type cellDecoder struct {
	f         *excelize.File
	sheetName string
	date1904  bool
	// dateStyles caches whether a style index renders numbers as dates.
	dateStyles map[int]bool
}

func newCellDecoder(f *excelize.File, sheetName string) *cellDecoder {
	d := &cellDecoder{
		f:          f,
		sheetName:  sheetName,
		dateStyles: make(map[int]bool),
	}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		d.date1904 = *props.Date1904
	}
	return d
}

// decode converts the raw value at 0-based (col, row).
func (d *cellDecoder) decode(col, row int, raw string) (models.Cell, error) {
	cellName, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return models.Cell{}, fmt.Errorf("cell %d,%d: %w", row, col, err)
	}

	cellType, err := d.f.GetCellType(d.sheetName, cellName)
	if err != nil {
		return models.Cell{}, fmt.Errorf("cell %s: %w", cellName, err)
	}

	switch cellType {
	case excelize.CellTypeBool:
		return parseBool(raw), nil
	case excelize.CellTypeDate:
		if t, ok := parseISOTimestamp(raw); ok {
			return models.Date(t), nil
		}
		return models.Text(raw), nil
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeError:
		return models.Text(raw), nil
	}

	cell := parseValue(raw)
	if cell.Kind == models.CellNumber && d.isDateStyled(cellName) {
		if t, err := excelize.ExcelDateToTime(cell.Num, d.date1904); err == nil {
			return models.Date(t), nil
		}
	}
	return cell, nil
}

// isDateStyled reports whether the cell's number format renders a date.
func (d *cellDecoder) isDateStyled(cellName string) bool {
	styleID, err := d.f.GetCellStyle(d.sheetName, cellName)
	if err != nil || styleID == 0 {
		return false
	}
	if v, ok := d.dateStyles[styleID]; ok {
		return v
	}
	isDate := false
	if style, err := d.f.GetStyle(styleID); err == nil && style != nil {
		isDate = isDateFormat(style.NumFmt, style.CustomNumFmt)
	}
	d.dateStyles[styleID] = isDate
	return isDate
}

// parseValue attempts to parse a raw string value as a number.
// Returns a Number cell for numeric input, otherwise a Text cell.
func parseValue(s string) models.Cell {
	if s == "" {
		return models.Empty()
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return models.Number(f)
	}
	return models.Text(s)
}

// parseBool maps the raw boolean forms ("1", "0", "TRUE", "FALSE") to text.
func parseBool(raw string) models.Cell {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "1", "TRUE":
		return models.Text("true")
	case "0", "FALSE":
		return models.Text("false")
	}
	return models.Text(raw)
}

// isoLayouts are the forms used by t="d" cells.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	time.DateOnly,
}

func parseISOTimestamp(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
