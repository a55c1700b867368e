package terminal

import (
	"fmt"
	"strings"
	"time"

	"weekfold/format"
	"weekfold/summary"
)

func (c *Client) OutputReport(report *summary.Report) error {
	fmt.Print(c.Report(report))
	return nil
}

func (c *Client) Report(report *summary.Report) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("\n- Processed %d activities", report.Activities))
	if report.DroppedRows > 0 {
		sb.WriteString(fmt.Sprintf(" (%d rows dropped)", report.DroppedRows))
	}
	sb.WriteString(" -\n")

	for i := range report.Weeks {
		w := &report.Weeks[i]
		sb.WriteString(fmt.Sprintf("%s (%s): total %s, overhead %s (%.1f%%)\n",
			w.Label(),
			w.WeekStart.Format("2006-01-02"),
			c.formatDuration(w.Total),
			c.formatDuration(w.Overhead),
			w.OverheadFraction*100,
		))
	}

	writeWarnings(&sb, report.Warnings)

	return sb.String()
}

func (c *Client) OutputYear(records []summary.DayRecord, count summary.YearCount) error {
	fmt.Print(c.Year(records, count))
	return nil
}

func (c *Client) Year(records []summary.DayRecord, count summary.YearCount) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("\n- Year %d: workday holidays = %d, worked weekends = %d -\n",
		count.Year, count.WorkdayHoliday, count.WorkedWeekend))

	for i := range records {
		rec := &records[i]
		if rec.Class == summary.Normal {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s %s: %s (%.1fh)\n",
			rec.Date.Format("2006-01-02"),
			rec.Date.Format("Mon"),
			classLabel(rec.Class),
			rec.Hours,
		))
	}

	return sb.String()
}

func (c *Client) formatDuration(d time.Duration) string {
	switch c.TimeFormat {
	case format.TimeM:
		return format.DurationM(d)
	case format.TimeHM:
		return format.DurationHM(d)
	default:
		return format.Clock(d)
	}
}

func classLabel(class summary.DayClass) string {
	switch class {
	case summary.WorkdayHoliday:
		return "workday holiday"
	case summary.WorkedWeekend:
		return "worked weekend"
	default:
		return "normal"
	}
}

func writeWarnings(sb *strings.Builder, warnings []string) {
	if len(warnings) == 0 {
		return
	}

	sb.WriteString("\nWarnings:\n")
	for i, w := range warnings {
		sb.WriteString(fmt.Sprintf(" %d - %s\n", i+1, w))
	}
}
