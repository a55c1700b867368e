package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// dayFormats is tried in order; the first layout that parses wins.
// ISO dates come first so that 2021-03-04 is never read day-first.
var dayFormats = []string{
	"2006-01-02",
	"02/01/2006",
}

// timeOfDayFormats covers the clock encodings seen in exports.
var timeOfDayFormats = []string{
	"15:04:05",
	"15:04",
	"3:04 PM",
}

// ParseDay parses a calendar date from the export's Day column.
func ParseDay(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dayFormats {
		d, err := time.Parse(layout, s)
		if err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// ParseTimeOfDay parses a wall-clock time with no date component.
func ParseTimeOfDay(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeOfDayFormats {
		ts, err := time.Parse(layout, s)
		if err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time of day %q", s)
}

// ParseClockDuration parses an H:MM or HH:MM duration token, truncated to
// whole minutes. Negative durations are rejected.
func ParseClockDuration(s string) (time.Duration, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("unrecognized duration %q", s)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("bad hour value in duration %q: %w", s, err)
	}

	if len(parts[1]) != 2 {
		return 0, fmt.Errorf("minutes in duration %q must be two digits", s)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("bad minute value in duration %q: %w", s, err)
	}

	if hours < 0 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("duration %q out of range", s)
	}

	return time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute, nil
}

// AnchorOnDay moves a parsed time-of-day onto the given calendar date.
// Export feeds carry only wall-clock times, so the date component of ts
// is meaningless and gets replaced.
func AnchorOnDay(day, ts time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(),
		ts.Hour(), ts.Minute(), ts.Second(), 0, day.Location())
}
