package calculator

import (
	"math"
	"time"

	"weekfold/activity"
	"weekfold/summary"
	"weekfold/week"
)

// driftTolerance bounds the rounding drift allowed between a week's
// original and adjusted duration sums.
const driftTolerance = time.Second

// Redistribute folds each week's overhead time proportionally into the
// other activities of the same week, writing the result into every
// activity's Adjusted field. It returns one WeeklyAdjustment per week in
// chronological order.
//
// A week without any non-overhead time degrades to identity: there is
// nothing to redistribute onto, so every activity keeps its original
// duration.
func Redistribute(weeks map[time.Time][]*activity.Activity, overheadCategory string, report *summary.Report) []summary.WeeklyAdjustment {
	adjustments := make([]summary.WeeklyAdjustment, 0, len(weeks))

	for _, ws := range sortedWeekStarts(weeks) {
		adj := redistributeWeek(ws, weeks[ws], overheadCategory, report)
		adjustments = append(adjustments, adj)
	}

	return adjustments
}

func redistributeWeek(ws time.Time, members []*activity.Activity, overheadCategory string, report *summary.Report) summary.WeeklyAdjustment {
	// accumulate in whole seconds so drift cannot compound across weeks
	var totalSec, overheadSec, nonOverheadSec int64
	for _, act := range members {
		sec := int64(act.Duration / time.Second)
		totalSec += sec
		if act.Overhead(overheadCategory) {
			overheadSec += sec
		} else {
			nonOverheadSec += sec
		}
	}

	adj := summary.WeeklyAdjustment{
		WeekStart:   ws,
		Total:       time.Duration(totalSec) * time.Second,
		Overhead:    time.Duration(overheadSec) * time.Second,
		NonOverhead: time.Duration(nonOverheadSec) * time.Second,
		Year:        ws.Year(),
		Month:       int(ws.Month()),
		Week:        week.Number(ws),
	}
	if totalSec > 0 {
		adj.OverheadFraction = float64(overheadSec) / float64(totalSec)
	}

	if nonOverheadSec == 0 {
		// all-overhead or empty week: identity, no self-redistribution
		for _, act := range members {
			act.Adjusted = act.Duration
		}
		return adj
	}

	var adjustedSec float64
	for _, act := range members {
		if act.Overhead(overheadCategory) {
			// fully reassigned onto the rest of the week
			act.Adjusted = 0
			continue
		}

		sec := float64(int64(act.Duration / time.Second))
		share := sec / float64(nonOverheadSec)
		adjusted := sec + share*float64(overheadSec)
		act.Adjusted = time.Duration(adjusted * float64(time.Second))
		adjustedSec += adjusted
	}

	if drift := math.Abs(adjustedSec - float64(totalSec)); drift > driftTolerance.Seconds() {
		report.AddWarningf("week %s sum mismatch: original=%ds, adjusted=%.2fs",
			adj.Label(), totalSec, adjustedSec)
	}

	return adj
}
