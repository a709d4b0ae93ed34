package models

// CellRange represents cell coordinate bounds, 0-based and inclusive.
type CellRange struct {
	// MinRow is the first row.
	MinRow int `json:"min_row"`
	// MinCol is the first column.
	MinCol int `json:"min_col"`
	// MaxRow is the last row.
	MaxRow int `json:"max_row"`
	// MaxCol is the last column.
	MaxCol int `json:"max_col"`
}

// Contains reports whether (row, col) lies within the range.
func (r CellRange) Contains(row, col int) bool {
	return row >= r.MinRow && row <= r.MaxRow && col >= r.MinCol && col <= r.MaxCol
}
