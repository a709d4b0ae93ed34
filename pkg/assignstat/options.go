// Package assignstat reports how many rows of a spreadsheet are assigned and
// how many of those are overdue.
package assignstat

import (
	"time"
	_ "time/tzdata"
)

// DefaultTimezone is the zone the reference date is computed in.
const DefaultTimezone = "Asia/Kolkata"

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant.
type FixedClock time.Time

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time { return time.Time(c) }

// Options configures analysis behavior.
type Options struct {
	// Timezone names the IANA zone for the reference date.
	// If empty, DefaultTimezone is used.
	Timezone string
	// Clock supplies "now". If nil, SystemClock is used.
	Clock Clock
}

// DefaultOptions returns default analysis options.
func DefaultOptions() Options {
	return Options{
		Timezone: DefaultTimezone,
		Clock:    SystemClock{},
	}
}

// Reference resolves the reference date for these options.
func (o Options) Reference() (Reference, error) {
	zone := o.Timezone
	if zone == "" {
		zone = DefaultTimezone
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return Reference{}, err
	}
	clock := o.Clock
	if clock == nil {
		clock = SystemClock{}
	}
	return TodayIn(clock.Now(), loc), nil
}
