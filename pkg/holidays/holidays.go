// Package holidays resolves public-holiday calendars by year range. The
// Provider interface is the injection point: production code uses the
// rule-based Calendar, tests substitute synthetic sets.
package holidays

import "time"

// DateKey is the format used to index holiday sets by calendar date.
const DateKey = "2006-01-02"

// Key returns the set key for a date, ignoring its time-of-day and location.
func Key(date time.Time) string {
	return date.Format(DateKey)
}

// Set maps calendar dates (formatted with DateKey) to holiday display names.
type Set map[string]string

// Contains reports whether the date falls on a holiday in the set.
func (s Set) Contains(date time.Time) bool {
	_, ok := s[Key(date)]
	return ok
}

// Name returns the holiday name for the date, or "" when not a holiday.
func (s Set) Name(date time.Time) string {
	return s[Key(date)]
}

// Provider yields every public holiday of a jurisdiction falling within an
// inclusive range of years. An empty range (from > to) yields an empty set.
type Provider interface {
	HolidaysForYears(from, to int) (Set, error)
}
