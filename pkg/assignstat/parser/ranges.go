package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/assignstat-go/pkg/assignstat/models"
	"github.com/xuri/excelize/v2"
)

// ParseRange parses a reference string like "A1:D10", "$A$1:$D$10",
// "Sheet1!A1:D10" or a single cell "B2" into 0-based bounds.
func ParseRange(ref string) (models.CellRange, error) {
	// Drop an optional sheet prefix
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		ref = ref[idx+1:]
	}

	// Remove $ signs
	ref = strings.ReplaceAll(strings.TrimSpace(ref), "$", "")
	if ref == "" {
		return models.CellRange{}, fmt.Errorf("empty range reference")
	}

	parts := strings.Split(ref, ":")
	if len(parts) > 2 {
		return models.CellRange{}, fmt.Errorf("invalid range reference %q", ref)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.CellRange{}, err
	}
	endCol, endRow := startCol, startRow
	if len(parts) == 2 {
		endCol, endRow, err = excelize.CellNameToCoordinates(parts[1])
		if err != nil {
			return models.CellRange{}, err
		}
	}

	if startCol > endCol {
		startCol, endCol = endCol, startCol
	}
	if startRow > endRow {
		startRow, endRow = endRow, startRow
	}

	return models.CellRange{
		MinRow: startRow - 1,
		MinCol: startCol - 1,
		MaxRow: endRow - 1,
		MaxCol: endCol - 1,
	}, nil
}

// FormatRange renders 0-based bounds as an A1-style reference.
func FormatRange(rng models.CellRange) (string, error) {
	start, err := excelize.CoordinatesToCellName(rng.MinCol+1, rng.MinRow+1)
	if err != nil {
		return "", err
	}
	end, err := excelize.CoordinatesToCellName(rng.MaxCol+1, rng.MaxRow+1)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%s", start, end), nil
}

// unionRange returns the smallest range covering a and b.
func unionRange(a, b models.CellRange) models.CellRange {
	return models.CellRange{
		MinRow: min(a.MinRow, b.MinRow),
		MinCol: min(a.MinCol, b.MinCol),
		MaxRow: max(a.MaxRow, b.MaxRow),
		MaxCol: max(a.MaxCol, b.MaxCol),
	}
}
