package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// ColumnLabel returns the letter label (A, B, ..., AA) of a 0-based column index.
// Out-of-range indices yield an empty label.
func ColumnLabel(idx int) string {
	name, err := excelize.ColumnNumberToName(idx + 1)
	if err != nil {
		return ""
	}
	return name
}

// ColumnIndex returns the 0-based index of a letter label.
func ColumnIndex(label string) (int, error) {
	n, err := excelize.ColumnNameToNumber(strings.TrimSpace(label))
	if err != nil {
		return 0, err
	}
	return n - 1, nil
}
