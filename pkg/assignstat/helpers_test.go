package assignstat

import (
	"time"

	"github.com/ukaji3/assignstat-go/pkg/assignstat/models"
)

// gridOf builds a grid whose used range spans all given rows. Values may be
// nil (empty), string, int, float64 or time.Time.
func gridOf(rows ...[]any) *models.Grid {
	maxCol := 0
	for _, row := range rows {
		if len(row)-1 > maxCol {
			maxCol = len(row) - 1
		}
	}
	maxRow := len(rows) - 1
	if maxRow < 0 {
		maxRow = 0
	}

	g := models.NewGrid(models.CellRange{MaxRow: maxRow, MaxCol: maxCol})
	for r, row := range rows {
		for c, v := range row {
			g.Set(r, c, cellOf(v))
		}
	}
	return g
}

func cellOf(v any) models.Cell {
	switch v := v.(type) {
	case nil:
		return models.Empty()
	case string:
		return models.Text(v)
	case int:
		return models.Number(float64(v))
	case float64:
		return models.Number(v)
	case time.Time:
		return models.Date(v)
	default:
		panic("unsupported cell value")
	}
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

var jan1st2025 = ReferenceDate(2025, time.January, 1, DefaultTimezone)
