package assignstat

import "github.com/ukaji3/assignstat-go/pkg/assignstat/models"

var (
	assignedValues   = map[string]bool{"yes": true, "true": true, "assigned": true, "done": true, "1": true}
	unassignedValues = map[string]bool{"no": true, "false": true, "unassigned": true, "0": true}
)

// IsAssigned classifies an action value. Recognised negatives and blank
// values are unassigned; any other non-empty value counts as assigned.
func IsAssigned(c models.Cell) bool {
	if c.IsEmpty() {
		return false
	}
	v := c.Normalized()
	switch {
	case assignedValues[v]:
		return true
	case unassignedValues[v]:
		return false
	}
	return v != ""
}
