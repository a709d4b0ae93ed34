package output

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/assignstat-go/pkg/assignstat/models"
)

func sampleReport() *models.Report {
	return &models.Report{
		BookName:  "tasks.xlsx",
		SheetName: "Sheet1",
		UsedRange: "A1:B3",
		Result: models.AnalysisResult{
			TotalRows:            2,
			AssignedCount:        1,
			AssignedPct:          50,
			OverdueCount:         1,
			OverduePctOfAssigned: 100,
			TodayISO:             "2025-01-01",
			Timezone:             "Asia/Kolkata",
			ColumnsUsed: models.ColumnsUsed{
				Action:  models.ColumnRef{Index: 0, Label: "A"},
				DueDate: models.ColumnRef{Index: 1, Label: "B"},
			},
			Notes: []string{},
		},
		Summary: "Total: 2 | Assigned: 1 (50%) | Overdue: 1 (100%)",
	}
}

func TestToJSONFieldNames(t *testing.T) {
	data, err := ToJSON(sampleReport(), false)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	result, ok := raw["result"].(map[string]any)
	require.True(t, ok, "result should be an object")
	for _, key := range []string{
		"total_rows", "assigned_count", "assigned_pct", "overdue_count",
		"overdue_pct_of_assigned", "today_iso", "timezone", "columns_used", "notes",
	} {
		assert.Contains(t, result, key)
	}

	cols := result["columns_used"].(map[string]any)
	assert.Equal(t, "B", cols["due_date"].(map[string]any)["label"])
	assert.Equal(t, []any{}, result["notes"], "empty notes must serialize as []")
	assert.Equal(t, "A1:B3", raw["used_range"])
	assert.NotContains(t, raw, "analysis_id")
}

func TestToJSONPretty(t *testing.T) {
	compact, err := ToJSON(sampleReport(), false)
	require.NoError(t, err)
	pretty, err := ToJSON(sampleReport(), true)
	require.NoError(t, err)

	assert.NotContains(t, string(compact), "\n")
	assert.Contains(t, string(pretty), "\n  \"book_name\"")
}
