package assignstat

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/ukaji3/assignstat-go/pkg/assignstat/models"
)

// serialEpoch is day 2 of the 1900 date system.
var serialEpoch = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// maxSerial is the first serial past 9999-12-31.
const maxSerial = 2958466

// numericDate matches A<sep>B<sep>C with digit groups and one repeated separator.
var numericDate = regexp.MustCompile(`^(\d{1,4})([/.-])(\d{1,2})([/.-])(\d{1,4})$`)

// ParseDate converts a due-date value to a calendar day.
// ok is false for empty or unparseable values and for the number 0.
func ParseDate(c models.Cell) (day time.Time, ok bool) {
	switch c.Kind {
	case models.CellDate:
		return c.Time, true
	case models.CellNumber:
		if c.Num == 0 {
			return time.Time{}, false
		}
		return SerialToDate(c.Num)
	case models.CellText:
		return parseDateText(c.Str)
	default:
		return time.Time{}, false
	}
}

// SerialToDate converts a 1900-system serial number: 1900-01-01 + (v - 2) days.
// Fractions of a day are dropped.
func SerialToDate(v float64) (time.Time, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v >= maxSerial {
		return time.Time{}, false
	}
	days := int(math.Floor(v)) - 2
	return serialEpoch.AddDate(0, 0, days), true
}

func parseDateText(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, ok := parseNumericDate(s); ok {
		return t, true
	}
	// every accepted form carries at least a day or year number
	if !strings.ContainsAny(s, "0123456789") {
		return time.Time{}, false
	}
	return parseGeneralDate(s)
}

// parseNumericDate handles the digit-and-separator forms:
//
//	YYYY-MM-DD, YYYY/MM/DD, YYYY.MM.DD  year first
//	M/D/YYYY                            month first, day first if invalid
//	D-M-YYYY, D.M.YYYY                  day first, month first if invalid
func parseNumericDate(s string) (time.Time, bool) {
	m := numericDate.FindStringSubmatch(s)
	if m == nil || m[2] != m[4] {
		return time.Time{}, false
	}
	a, _ := strconv.Atoi(m[1])
	b, _ := strconv.Atoi(m[3])
	c, _ := strconv.Atoi(m[5])

	switch {
	case len(m[1]) == 4 && len(m[5]) <= 2:
		return civilDate(a, b, c)
	case len(m[5]) == 4 && len(m[1]) <= 2:
		monthFirst := m[2] == "/"
		if monthFirst {
			if t, ok := civilDate(c, a, b); ok {
				return t, true
			}
			return civilDate(c, b, a)
		}
		if t, ok := civilDate(c, b, a); ok {
			return t, true
		}
		return civilDate(c, a, b)
	}
	return time.Time{}, false
}

// civilDate builds a date, rejecting overflowing fields such as 2024-02-30.
func civilDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, false
	}
	return t, true
}

// parseGeneralDate delegates to dateparse for everything else
// (RFC 3339 stamps, month names, ...). Zone-less input is read as UTC.
func parseGeneralDate(s string) (t time.Time, ok bool) {
	// dateparse panics on some malformed input
	defer func() {
		if recover() != nil {
			t, ok = time.Time{}, false
		}
	}()

	parsed, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	if parsed.Year() < 1 || parsed.Year() > 9999 {
		return time.Time{}, false
	}
	return parsed, true
}
