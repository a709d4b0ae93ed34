package parser

import "github.com/ukaji3/assignstat-go/pkg/assignstat/models"

// findDataBounds finds the bounding box of non-empty cells.
// found is false when every cell is empty.
func findDataBounds(rows [][]string) (rng models.CellRange, found bool) {
	minRow, maxRow := -1, -1
	minCol, maxCol := -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	if minRow < 0 {
		return models.CellRange{}, false
	}
	return models.CellRange{MinRow: minRow, MinCol: minCol, MaxRow: maxRow, MaxCol: maxCol}, true
}
