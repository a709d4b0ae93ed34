package models

// ColumnRef identifies a resolved column.
type ColumnRef struct {
	// Index is the 0-based column index.
	Index int `json:"index"`
	// Label is the spreadsheet column letter (A, B, ..., AA).
	Label string `json:"label"`
}

// ColumnsUsed holds the two columns an analysis read from.
type ColumnsUsed struct {
	Action  ColumnRef `json:"action"`
	DueDate ColumnRef `json:"due_date"`
}

// AnalysisResult is the outcome of one analysis.
type AnalysisResult struct {
	// TotalRows is the number of non-empty data rows.
	TotalRows int `json:"total_rows"`
	// AssignedCount is the number of rows whose action value classifies as assigned.
	AssignedCount int `json:"assigned_count"`
	// AssignedPct is AssignedCount as a percentage of TotalRows, one decimal.
	AssignedPct float64 `json:"assigned_pct"`
	// OverdueCount is the number of assigned rows due strictly before TodayISO.
	OverdueCount int `json:"overdue_count"`
	// OverduePctOfAssigned is OverdueCount as a percentage of AssignedCount, one decimal.
	OverduePctOfAssigned float64 `json:"overdue_pct_of_assigned"`
	// TodayISO is the reference date (YYYY-MM-DD).
	TodayISO string `json:"today_iso"`
	// Timezone is the zone TodayISO was computed in.
	Timezone string `json:"timezone"`
	// ColumnsUsed records the resolved columns.
	ColumnsUsed ColumnsUsed `json:"columns_used"`
	// Notes lists non-fatal diagnostics in detection order.
	Notes []string `json:"notes"`
}
