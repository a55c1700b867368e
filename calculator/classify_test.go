package calculator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"weekfold/summary"
)

func classOf(t *testing.T, records []summary.DayRecord, day string) summary.DayClass {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", day)
	if err != nil {
		t.Fatalf("bad test date %q", day)
	}
	for i := range records {
		if records[i].Date.Equal(parsed) {
			return records[i].Class
		}
	}
	t.Fatalf("no record for %s", day)
	return ""
}

func TestClassifyYearBoundaries(t *testing.T) {
	hours := map[time.Time]float64{
		time.Date(2023, time.March, 6, 0, 0, 0, 0, time.UTC):  2.0, // Monday, exactly at threshold
		time.Date(2023, time.March, 7, 0, 0, 0, 0, time.UTC):  1.5, // Tuesday, below
		time.Date(2023, time.March, 8, 0, 0, 0, 0, time.UTC):  7.5, // Wednesday, a regular day
		time.Date(2023, time.March, 11, 0, 0, 0, 0, time.UTC): 2.0, // Saturday, exactly at threshold
		time.Date(2023, time.March, 12, 0, 0, 0, 0, time.UTC): 1.5, // Sunday, below
	}

	today := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	records := ClassifyYear(hours, 2023, DefaultThresholdHours, today)
	require.Len(t, records, 365)

	// the boundary is asymmetric: the threshold itself counts as worked
	require.Equal(t, summary.Normal, classOf(t, records, "2023-03-06"))
	require.Equal(t, summary.WorkdayHoliday, classOf(t, records, "2023-03-07"))
	require.Equal(t, summary.Normal, classOf(t, records, "2023-03-08"))
	require.Equal(t, summary.WorkedWeekend, classOf(t, records, "2023-03-11"))
	require.Equal(t, summary.Normal, classOf(t, records, "2023-03-12"))

	// a weekday with no entry at all is a holiday
	require.Equal(t, summary.WorkdayHoliday, classOf(t, records, "2023-03-09"))
}

func TestClassifyYearSkipsFutureDays(t *testing.T) {
	hours := map[time.Time]float64{
		time.Date(2024, time.June, 12, 0, 0, 0, 0, time.UTC): 7.5,
	}

	today := time.Date(2024, time.June, 14, 10, 30, 0, 0, time.FixedZone("CET", 3600))
	records := ClassifyYear(hours, 2024, DefaultThresholdHours, today)
	require.Len(t, records, 366)

	// today itself is still judged, tomorrow onward is not
	require.Equal(t, summary.WorkdayHoliday, classOf(t, records, "2024-06-14"))
	require.Equal(t, summary.Normal, classOf(t, records, "2024-06-17"))
	require.Equal(t, summary.Normal, classOf(t, records, "2024-12-25"))
}

func TestClassifyYearWithoutData(t *testing.T) {
	today := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	records := ClassifyYear(nil, 2021, DefaultThresholdHours, today)

	count := CountYear(2021, records)
	require.Equal(t, 2021, count.Year)
	require.Equal(t, 261, count.WorkdayHoliday, "every weekday of an empty year is a holiday")
	require.Equal(t, 0, count.WorkedWeekend)
}

func TestCountYear(t *testing.T) {
	records := []summary.DayRecord{
		{Class: summary.Normal},
		{Class: summary.WorkdayHoliday},
		{Class: summary.WorkdayHoliday},
		{Class: summary.WorkedWeekend},
	}

	count := CountYear(2023, records)
	require.Equal(t, 2, count.WorkdayHoliday)
	require.Equal(t, 1, count.WorkedWeekend)
}
