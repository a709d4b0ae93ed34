package assignstat

import "github.com/ukaji3/assignstat-go/pkg/assignstat/models"

// Diagnostic notes attached to a result.
const (
	NoteDueDateMissing  = "Due Date column is missing or empty - only computing assigned percentage"
	NoteUnparsableDates = "Some due dates could not be parsed - they are excluded from overdue calculation"
	NoteNoDataRows      = "No data rows found in the Excel file"
)

// Tally holds the raw counts of one analysis.
type Tally struct {
	TotalRows     int
	AssignedCount int
	OverdueCount  int
	Notes         []string
}

// addNote appends a note unless it is already present.
func (t *Tally) addNote(note string) {
	for _, n := range t.Notes {
		if n == note {
			return
		}
	}
	t.Notes = append(t.Notes, note)
}

// DataRows returns the row indices after the header row that hold at least
// one non-empty cell. The header row is the first row of the used range.
func DataRows(g *models.Grid) []int {
	var rows []int
	for _, row := range g.Rows() {
		if row > g.Range.MinRow {
			rows = append(rows, row)
		}
	}
	return rows
}

// Aggregate classifies every data row and counts assigned and overdue rows.
// A row is overdue when it is assigned and its due date falls strictly before
// ref. It fails with ErrMissingRequiredColumn when data rows exist but none
// has an action value.
func Aggregate(g *models.Grid, cols models.ColumnsUsed, ref Reference) (Tally, error) {
	rows := DataRows(g)
	tally := Tally{TotalRows: len(rows), Notes: []string{}}

	hasAction, hasDueDate := false, false
	for _, row := range rows {
		if !g.Cell(row, cols.Action.Index).IsEmpty() {
			hasAction = true
		}
		if !g.Cell(row, cols.DueDate.Index).IsEmpty() {
			hasDueDate = true
		}
	}

	if len(rows) > 0 && !hasAction {
		return Tally{}, ErrMissingRequiredColumn
	}

	if !hasDueDate {
		tally.addNote(NoteDueDateMissing)
	}

	cutoff := CalendarDay(ref.Day)
	for _, row := range rows {
		if !IsAssigned(g.Cell(row, cols.Action.Index)) {
			continue
		}
		tally.AssignedCount++

		if !hasDueDate {
			continue
		}
		due := g.Cell(row, cols.DueDate.Index)
		day, ok := ParseDate(due)
		switch {
		case ok && CalendarDay(day).Before(cutoff):
			tally.OverdueCount++
		case !ok && !isBlankDue(due):
			tally.addNote(NoteUnparsableDates)
		}
	}

	if len(rows) == 0 {
		tally.addNote(NoteNoDataRows)
	}

	return tally, nil
}

// isBlankDue reports whether an unparsed due value carries nothing to parse.
// A numeric zero is a blank serial, not a malformed date.
func isBlankDue(c models.Cell) bool {
	return c.IsEmpty() || (c.Kind == models.CellNumber && c.Num == 0)
}
