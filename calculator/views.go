package calculator

import (
	"sort"
	"time"

	"weekfold/activity"
	"weekfold/format"
	"weekfold/week"
)

// The aggregate views are read-only projections recomputed on demand;
// external renderers consume them as plain maps.

// HoursPerDay sums decimal hours per calendar day. With adjusted set, the
// redistributed durations are summed instead of the raw ones; days that
// only carried overhead then drop to zero.
func HoursPerDay(acts []activity.Activity, adjusted bool) map[time.Time]float64 {
	hours := make(map[time.Time]float64)
	for i := range acts {
		d := acts[i].Duration
		if adjusted {
			d = acts[i].Adjusted
		}
		hours[week.DateOnly(acts[i].Day)] += format.Hours(d)
	}
	return hours
}

// HoursPerWeek sums decimal hours per week start date.
func HoursPerWeek(acts []activity.Activity, adjusted bool) map[time.Time]float64 {
	hours := make(map[time.Time]float64)
	for i := range acts {
		d := acts[i].Duration
		if adjusted {
			d = acts[i].Adjusted
		}
		hours[week.Start(acts[i].Day)] += format.Hours(d)
	}
	return hours
}

// HoursPerTag sums decimal hours per tag for one year. A multi-tagged
// activity credits its full duration to every one of its tags, so the
// totals deliberately do not add up to the year's total: this view is
// non-conservative, for exploratory reporting only.
func HoursPerTag(acts []activity.Activity, year int) map[string]float64 {
	hours := make(map[string]float64)
	for i := range acts {
		if acts[i].Day.Year() != year {
			continue
		}
		for _, tag := range acts[i].Tags {
			hours[tag] += format.Hours(acts[i].Duration)
		}
	}
	return hours
}

// Years lists every year present in the activity set, ascending.
func Years(acts []activity.Activity) []int {
	seen := make(map[int]bool)
	for i := range acts {
		seen[acts[i].Day.Year()] = true
	}

	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}
