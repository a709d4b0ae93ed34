package assignstat

import "time"

// Reference is the calendar day used as the overdue cutoff.
type Reference struct {
	// Day is the calendar date at midnight UTC.
	Day time.Time
	// Timezone names the zone Day was taken in.
	Timezone string
}

// TodayIn returns the calendar day of now as seen in loc.
func TodayIn(now time.Time, loc *time.Location) Reference {
	return Reference{
		Day:      CalendarDay(now.In(loc)),
		Timezone: loc.String(),
	}
}

// ReferenceDate builds a Reference for a fixed calendar date.
func ReferenceDate(year int, month time.Month, day int, timezone string) Reference {
	return Reference{
		Day:      time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
		Timezone: timezone,
	}
}

// DayClock returns a clock fixed at midnight of a YYYY-MM-DD date in the
// named zone (DefaultTimezone when empty).
func DayClock(value, timezone string) (Clock, error) {
	if timezone == "" {
		timezone = DefaultTimezone
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, err
	}
	t, err := time.ParseInLocation(time.DateOnly, value, loc)
	if err != nil {
		return nil, err
	}
	return FixedClock(t), nil
}

// ISO returns the reference day as YYYY-MM-DD.
func (r Reference) ISO() string {
	return r.Day.Format(time.DateOnly)
}

// CalendarDay drops the time of day and zone of t, keeping its wall-clock date.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
