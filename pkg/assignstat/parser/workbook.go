package parser

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ErrNoSheets indicates the workbook has no worksheets.
var ErrNoSheets = errors.New("workbook has no worksheets")

// OpenReader opens a workbook from r.
func OpenReader(r io.Reader) (*excelize.File, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	return f, nil
}

// FirstSheet returns the name of the first worksheet.
func FirstSheet(f *excelize.File) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", ErrNoSheets
	}
	return sheets[0], nil
}
