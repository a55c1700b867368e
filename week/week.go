// Package week holds the single Monday-start week convention used by every
// part of the pipeline. Grouping and weekend classification both break if
// two components disagree on weekday numbering, so nothing outside this
// package does its own weekday arithmetic.
package week

import "time"

// Weekday returns the ISO weekday number of a date: Monday=1 .. Sunday=7.
func Weekday(d time.Time) int {
	wd := int(d.Weekday())
	if wd == 0 { // time.Sunday
		return 7
	}
	return wd
}

// Start returns the Monday of the week containing d, at midnight in d's
// location.
func Start(d time.Time) time.Time {
	d = DateOnly(d)
	return d.AddDate(0, 0, -(Weekday(d) - 1))
}

// Number returns the ISO 8601 week number of d.
func Number(d time.Time) int {
	_, wk := d.ISOWeek()
	return wk
}

// IsWeekend reports whether d falls on a Saturday or Sunday.
func IsWeekend(d time.Time) bool {
	return Weekday(d) >= 6
}

// DateOnly strips the time-of-day component from t.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// YearDays enumerates every date from Jan 1 to Dec 31 of year inclusive.
// Leap years fall out of the calendar arithmetic: 2020 yields 366 days.
// Dates are UTC midnights, matching what the date parser produces, so they
// work as lookup keys into the day-total maps.
func YearDays(year int) []time.Time {
	first := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(1, 0, 0)

	days := make([]time.Time, 0, 366)
	for d := first; d.Before(next); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
