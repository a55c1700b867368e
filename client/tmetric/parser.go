package tmetric

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"weekfold/activity"
	"weekfold/format"
)

// ErrNoActivities marks an export in which not a single row carried a
// usable date. Callers can tell this apart from an unreadable file.
var ErrNoActivities = errors.New("no rows with a usable date")

// Parser turns a tmetric CSV export into an activity batch. Rows with an
// unrecognized date are dropped and counted; every other data defect is
// absorbed with a warning so one bad row never kills the run.
type Parser struct {
	warnings []string
}

func (p *Parser) Parse(r io.Reader) (*activity.Batch, error) {
	p.warnings = nil

	header, rows, err := readRows(r)
	if err != nil {
		return nil, fmt.Errorf("readRows: %w", err)
	}

	batch := &activity.Batch{Header: header}

	for i, row := range rows {
		line := i + 1 // data row number, header excluded
		act, ok := p.parseRow(row, line)
		if !ok {
			batch.Dropped++
			continue
		}
		batch.Activities = append(batch.Activities, act)
	}

	batch.Warnings = p.warnings

	if len(batch.Activities) == 0 {
		return batch, ErrNoActivities
	}

	return batch, nil
}

// ParseFile reads and parses an export on the local filesystem.
func (p *Parser) ParseFile(path string) (*activity.Batch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open: %w", err)
	}
	defer f.Close()

	return p.Parse(f)
}

func (p *Parser) parseRow(row map[string]string, line int) (act activity.Activity, ok bool) {
	day, err := format.ParseDay(row[ColDay])
	if err != nil {
		p.addWarningf("dropping row %d: %s", line, err.Error())
		return activity.Activity{}, false
	}

	act.Day = day
	act.Line = line
	act.Project = strings.TrimSpace(row[ColProject])
	act.Columns = row
	act.Tags = parseTags(row)

	act.Duration, err = format.ParseClockDuration(row[ColDuration])
	if err != nil {
		// a malformed duration zeroes the row instead of killing it,
		// but the defect must surface
		p.addWarningf("row %d: %s: defaulting duration to zero", line, err.Error())
		act.Duration = 0
	}

	p.anchorTimes(&act, row, line)

	return act, true
}

// anchorTimes re-anchors the export's wall-clock start/end times onto the
// activity's day. Feeds ship times without a trustworthy date component,
// and end times that disagree with the duration are recomputed rather
// than trusted.
func (p *Parser) anchorTimes(act *activity.Activity, row map[string]string, line int) {
	startRaw := strings.TrimSpace(row[ColStartTime])
	if startRaw == "" {
		return
	}

	start, err := format.ParseTimeOfDay(startRaw)
	if err != nil {
		p.addWarningf("row %d: %s", line, err.Error())
		return
	}
	act.Start = format.AnchorOnDay(act.Day, start)

	endRaw := strings.TrimSpace(row[ColEndTime])
	if endRaw != "" {
		end, err := format.ParseTimeOfDay(endRaw)
		if err == nil {
			act.End = format.AnchorOnDay(act.Day, end)
		} else {
			p.addWarningf("row %d: %s", line, err.Error())
		}
	}

	if span := act.End.Sub(act.Start); act.End.IsZero() || span != act.Duration {
		if !act.End.IsZero() {
			p.addWarningf("row %d: start/end span %s disagrees with duration %s, recomputing end time",
				line, format.Clock(span), format.Clock(act.Duration))
		}
		act.End = act.Start.Add(act.Duration)
	}
}

// parseTags resolves the tag column fallback once, at parse time:
// Work Type, then Tags, then Project Code.
func parseTags(row map[string]string) []string {
	raw := row[ColWorkType]
	if strings.TrimSpace(raw) == "" {
		raw = row[ColTags]
	}
	if strings.TrimSpace(raw) == "" {
		raw = row[ColProjectCode]
	}

	var tags []string
	for _, t := range strings.Split(raw, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func (p *Parser) addWarningf(format string, v ...any) {
	p.warnings = append(p.warnings, fmt.Sprintf(format, v...))
}
