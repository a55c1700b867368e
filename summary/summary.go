package summary

import (
	"fmt"
	"time"
)

// DayClass labels one calendar day of a year.
type DayClass string

const (
	Normal         DayClass = "normal"
	WorkdayHoliday DayClass = "workday-holiday"
	WorkedWeekend  DayClass = "worked-weekend"
)

// DayRecord is the classification result for a single calendar day.
type DayRecord struct {
	Date  time.Time
	Hours float64
	Class DayClass
}

// WeeklyAdjustment summarizes the overhead redistribution of one week.
type WeeklyAdjustment struct {
	WeekStart   time.Time
	Total       time.Duration
	Overhead    time.Duration
	NonOverhead time.Duration

	// OverheadFraction is Overhead/Total, or 0 for an empty week.
	OverheadFraction float64

	// Derived from the week start date, for the output table.
	Year  int
	Month int
	Week  int // ISO week number
}

// Label names the week in warnings and reports, e.g. "2024-W07".
func (w *WeeklyAdjustment) Label() string {
	return fmt.Sprintf("%d-W%02d", w.Year, w.Week)
}

// Report is the result of one processing run.
type Report struct {
	Activities  int
	DroppedRows int
	Weeks       []WeeklyAdjustment // ordered by week start
	Warnings    []string           // data-quality events, never fatal
}

func (r *Report) AddWarning(w string) {
	r.Warnings = append(r.Warnings, w)
}

func (r *Report) AddWarningf(format string, v ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, v...))
}

// YearCount aggregates the classification of one year.
type YearCount struct {
	Year           int
	WorkdayHoliday int
	WorkedWeekend  int
}

// Output renders run results for the user.
type Output interface {
	OutputReport(report *Report) error
	OutputYear(records []DayRecord, count YearCount) error
}
