package models

// Report is the envelope written by the CLI and HTTP layer for one analysed workbook.
type Report struct {
	// AnalysisID identifies this run in logs and responses.
	AnalysisID string `json:"analysis_id,omitempty"`
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// SheetName is the sheet that was analysed.
	SheetName string `json:"sheet_name"`
	// UsedRange is the analysed cell range in A1 form.
	UsedRange string `json:"used_range"`
	// Result holds the counts and notes.
	Result AnalysisResult `json:"result"`
	// Summary is the one-line human readable rendering of Result.
	Summary string `json:"summary"`
}
