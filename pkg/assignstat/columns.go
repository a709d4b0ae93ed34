package assignstat

import (
	"strings"

	"github.com/ukaji3/assignstat-go/pkg/assignstat/models"
	"github.com/ukaji3/assignstat-go/pkg/assignstat/parser"
)

// HeaderScanRows is the last 0-based row examined for header text.
const HeaderScanRows = 5

// Role is the meaning a column plays in the analysis.
type Role int

const (
	// RoleAction marks the column holding the assignment/status value.
	RoleAction Role = iota
	// RoleDueDate marks the column holding the due date.
	RoleDueDate
)

func (r Role) String() string {
	switch r {
	case RoleAction:
		return "action"
	case RoleDueDate:
		return "due_date"
	default:
		return "unknown"
	}
}

// roleRule lists the header keywords for a role, in priority order, and the
// column used when no header matches.
type roleRule struct {
	role     Role
	keywords []string
	fallback int
}

// headerRules is evaluated independently per role.
var headerRules = []roleRule{
	{role: RoleAction, keywords: []string{"action", "assigned", "status", "task"}, fallback: 0},
	{role: RoleDueDate, keywords: []string{"due", "date", "deadline", "target"}, fallback: 1},
}

// MatchesRole reports whether header text names the given role.
func MatchesRole(header string, role Role) bool {
	for _, rule := range headerRules {
		if rule.role == role {
			return matchKeyword(strings.ToLower(strings.TrimSpace(header)), rule.keywords) != ""
		}
	}
	return false
}

// matchKeyword returns the first keyword contained in text, or "".
func matchKeyword(text string, keywords []string) string {
	if text == "" {
		return ""
	}
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return kw
		}
	}
	return ""
}

// LocateColumns scans the header rows for the action and due-date columns.
// Rows 0..HeaderScanRows are read left to right, top to bottom; the first
// matching column per role wins. Unmatched roles fall back to A and B.
func LocateColumns(g *models.Grid) models.ColumnsUsed {
	found := make(map[Role]int, len(headerRules))

	lastRow := min(HeaderScanRows, g.Range.MaxRow)
	for row := 0; row <= lastRow; row++ {
		for col := g.Range.MinCol; col <= g.Range.MaxCol; col++ {
			text := g.Cell(row, col).Normalized()
			if text == "" {
				continue
			}
			for _, rule := range headerRules {
				if _, ok := found[rule.role]; ok {
					continue
				}
				if matchKeyword(text, rule.keywords) != "" {
					found[rule.role] = col
				}
			}
		}
	}

	resolve := func(role Role) models.ColumnRef {
		for _, rule := range headerRules {
			if rule.role != role {
				continue
			}
			idx, ok := found[role]
			if !ok {
				idx = rule.fallback
			}
			return ColumnRef(idx)
		}
		return ColumnRef(0)
	}

	return models.ColumnsUsed{
		Action:  resolve(RoleAction),
		DueDate: resolve(RoleDueDate),
	}
}

// ColumnRef builds the reference for a 0-based column index.
func ColumnRef(idx int) models.ColumnRef {
	return models.ColumnRef{Index: idx, Label: parser.ColumnLabel(idx)}
}
