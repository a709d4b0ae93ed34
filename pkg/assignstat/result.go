package assignstat

import (
	"fmt"
	"math"
	"strconv"

	"github.com/ukaji3/assignstat-go/pkg/assignstat/models"
)

// BuildResult computes percentages and assembles the result and its summary line.
func BuildResult(t Tally, cols models.ColumnsUsed, ref Reference) (models.AnalysisResult, string) {
	notes := make([]string, len(t.Notes))
	copy(notes, t.Notes)

	result := models.AnalysisResult{
		TotalRows:            t.TotalRows,
		AssignedCount:        t.AssignedCount,
		AssignedPct:          Percentage(t.AssignedCount, t.TotalRows),
		OverdueCount:         t.OverdueCount,
		OverduePctOfAssigned: Percentage(t.OverdueCount, t.AssignedCount),
		TodayISO:             ref.ISO(),
		Timezone:             ref.Timezone,
		ColumnsUsed:          cols,
		Notes:                notes,
	}
	return result, Summary(result)
}

// Percentage returns part/whole*100 rounded half away from zero to one
// decimal place, or 0 when whole is 0.
func Percentage(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	// Scale before dividing so that exact halves stay exact.
	tenths := float64(part) * 1000 / float64(whole)
	return math.Round(tenths) / 10
}

// Summary renders the one-line summary of a result.
func Summary(r models.AnalysisResult) string {
	return fmt.Sprintf("Total: %d | Assigned: %d (%s%%) | Overdue: %d (%s%%)",
		r.TotalRows,
		r.AssignedCount, formatPct(r.AssignedPct),
		r.OverdueCount, formatPct(r.OverduePctOfAssigned))
}

// formatPct prints the shortest form: 50, 33.3.
func formatPct(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
