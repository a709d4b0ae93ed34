package models

import "slices"

// coord addresses a cell by 0-based row and column.
type coord struct {
	row, col int
}

// Grid is a sparse, read-only view of one sheet's values plus its used range.
type Grid struct {
	// Range is the sheet's used range.
	Range CellRange
	cells map[coord]Cell
	// rows indexes the stored columns of each row.
	rows map[int]map[int]struct{}
}

// NewGrid returns an empty grid with the given used range.
func NewGrid(rng CellRange) *Grid {
	return &Grid{
		Range: rng,
		cells: make(map[coord]Cell),
		rows:  make(map[int]map[int]struct{}),
	}
}

// Set stores a value. Empty cells are not stored.
func (g *Grid) Set(row, col int, c Cell) {
	key := coord{row, col}
	if c.IsEmpty() {
		delete(g.cells, key)
		if cols, ok := g.rows[row]; ok {
			delete(cols, col)
			if len(cols) == 0 {
				delete(g.rows, row)
			}
		}
		return
	}
	g.cells[key] = c
	cols, ok := g.rows[row]
	if !ok {
		cols = make(map[int]struct{})
		g.rows[row] = cols
	}
	cols[col] = struct{}{}
}

// Cell returns the value at (row, col), or an empty cell.
func (g *Grid) Cell(row, col int) Cell {
	if g == nil {
		return Cell{}
	}
	return g.cells[coord{row, col}]
}

// Len returns the number of non-empty cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// RowHasData reports whether any stored cell of row lies inside the used range.
func (g *Grid) RowHasData(row int) bool {
	for col := range g.rows[row] {
		if g.Range.Contains(row, col) {
			return true
		}
	}
	return false
}

// Rows returns, in ascending order, the rows inside the used range that
// hold at least one value inside it. Cost is proportional to stored cells.
func (g *Grid) Rows() []int {
	rows := make([]int, 0, len(g.rows))
	for row := range g.rows {
		if g.RowHasData(row) {
			rows = append(rows, row)
		}
	}
	slices.Sort(rows)
	return rows
}
