package calculator

import (
	"strconv"
	"time"

	"weekfold/activity"
	"weekfold/exporter"
	"weekfold/format"
	"weekfold/summary"
	"weekfold/week"
)

// Column names appended to the output table, in this order. Names carrying
// "Email" are kept verbatim for compatibility with existing sheet
// consumers, whatever the configured overhead category is.
const (
	ColAdjusted           = "Duration adjusted"
	ColWeeklyEmailTotal   = "Weekly Email Total"
	ColWeeklyEmailPct     = "Weekly Email %"
	ColYear               = "Year"
	ColMonth              = "Month"
	ColWeek               = "Week"
	ColWeeklyTotal        = "Weekly Total"
	ColAdjustedHours      = "Duration adjusted (hours)"
	ColWeeklyEmailHours   = "Weekly Email Total (hours)"
	ColWeeklyTotalHours   = "Weekly Total (hours)"
)

var derivedColumns = []string{
	ColAdjusted, ColWeeklyEmailTotal, ColWeeklyEmailPct,
	ColYear, ColMonth, ColWeek, ColWeeklyTotal,
	ColAdjustedHours, ColWeeklyEmailHours, ColWeeklyTotalHours,
}

// BuildTable assembles the row-per-activity output table: the original
// export columns first, then the derived columns that are not already
// present.
func BuildTable(batch *activity.Batch, adjustments []summary.WeeklyAdjustment) *exporter.Table {
	byWeek := make(map[time.Time]*summary.WeeklyAdjustment, len(adjustments))
	for i := range adjustments {
		byWeek[adjustments[i].WeekStart] = &adjustments[i]
	}

	present := make(map[string]bool, len(batch.Header))
	header := make([]string, 0, len(batch.Header)+len(derivedColumns))
	for _, name := range batch.Header {
		header = append(header, name)
		present[name] = true
	}
	for _, name := range derivedColumns {
		if !present[name] {
			header = append(header, name)
		}
	}

	table := &exporter.Table{Header: header}

	for i := range batch.Activities {
		act := &batch.Activities[i]
		adj := byWeek[week.Start(act.Day)]

		row := make([]string, 0, len(header))
		for _, name := range header {
			row = append(row, columnValue(act, adj, name))
		}
		table.Rows = append(table.Rows, row)
	}

	return table
}

func columnValue(act *activity.Activity, adj *summary.WeeklyAdjustment, name string) string {
	switch name {
	case ColAdjusted:
		return format.Clock(act.Adjusted)
	case ColWeeklyEmailTotal:
		return format.Clock(adj.Overhead)
	case ColWeeklyEmailPct:
		return format.Fraction(adj.OverheadFraction)
	case ColYear:
		return strconv.Itoa(adj.Year)
	case ColMonth:
		return strconv.Itoa(adj.Month)
	case ColWeek:
		return strconv.Itoa(adj.Week)
	case ColWeeklyTotal:
		return format.Clock(adj.Total)
	case ColAdjustedHours:
		return format.HoursString(act.Adjusted)
	case ColWeeklyEmailHours:
		return format.HoursString(adj.Overhead)
	case ColWeeklyTotalHours:
		return format.HoursString(adj.Total)
	default:
		return act.Columns[name]
	}
}
