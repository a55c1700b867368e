package calculator

import (
	"time"

	"weekfold/summary"
	"weekfold/week"
)

// DefaultThresholdHours separates a worked day from an idle one.
const DefaultThresholdHours = 2.0

// ClassifyYear labels every calendar day of a year from its total logged
// hours. The boundary is asymmetric on purpose: a weekday at exactly the
// threshold is not a holiday, a weekend day at exactly the threshold is
// worked.
//
// When year is today's year, days after today stay Normal regardless of
// logged hours: the classifier never judges the future.
func ClassifyYear(dayHours map[time.Time]float64, year int, threshold float64, today time.Time) []summary.DayRecord {
	// normalize to a UTC date so comparisons against YearDays are exact
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	records := make([]summary.DayRecord, 0, 366)
	for _, day := range week.YearDays(year) {
		rec := summary.DayRecord{
			Date:  day,
			Hours: dayHours[day],
			Class: summary.Normal,
		}

		if year == today.Year() && day.After(today) {
			records = append(records, rec)
			continue
		}

		if week.IsWeekend(day) {
			if rec.Hours >= threshold {
				rec.Class = summary.WorkedWeekend
			}
		} else {
			if rec.Hours < threshold {
				rec.Class = summary.WorkdayHoliday
			}
		}

		records = append(records, rec)
	}

	return records
}

// CountYear reduces a year's records to its holiday and worked-weekend
// counts, the per-year numbers the reporting layer prints.
func CountYear(year int, records []summary.DayRecord) summary.YearCount {
	count := summary.YearCount{Year: year}
	for i := range records {
		switch records[i].Class {
		case summary.WorkdayHoliday:
			count.WorkdayHoliday++
		case summary.WorkedWeekend:
			count.WorkedWeekend++
		}
	}
	return count
}
