package calculator

import (
	"sort"
	"time"

	"weekfold/activity"
	"weekfold/week"
)

// GroupByDay sums activity durations per calendar day.
func GroupByDay(acts []activity.Activity) map[time.Time]time.Duration {
	dayTotals := make(map[time.Time]time.Duration)
	for i := range acts {
		dayTotals[week.DateOnly(acts[i].Day)] += acts[i].Duration
	}
	return dayTotals
}

// GroupByWeek buckets activities by the Monday starting their week. Input
// order is preserved inside each bucket. The returned pointers alias the
// given slice, so the redistribution writes its results back into it.
func GroupByWeek(acts []activity.Activity) map[time.Time][]*activity.Activity {
	weeks := make(map[time.Time][]*activity.Activity)
	for i := range acts {
		ws := week.Start(acts[i].Day)
		weeks[ws] = append(weeks[ws], &acts[i])
	}
	return weeks
}

// sortedWeekStarts returns the grouping keys in chronological order, so
// reports and warnings come out in a stable order.
func sortedWeekStarts(weeks map[time.Time][]*activity.Activity) []time.Time {
	starts := make([]time.Time, 0, len(weeks))
	for ws := range weeks {
		starts = append(starts, ws)
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i].Before(starts[j]) })
	return starts
}
