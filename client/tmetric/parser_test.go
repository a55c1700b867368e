package tmetric

import (
	"strings"
	"testing"
	"time"
)

func TestParseRow(t *testing.T) {
	tests := []*testRow{
		newTestRow("plain iso row").
			col("Day", "2024-02-12").col("Project", "Coding").col("Duration", "7:30").
			expectDay("2024-02-12").expectDuration("7h30m"),
		newTestRow("day-first date").
			col("Day", "12/02/2024").col("Project", "Coding").col("Duration", "0:45").
			expectDay("2024-02-12").expectDuration("45m"),
		newTestRow("unparseable date drops the row").
			col("Day", "12.02.2024").col("Duration", "1:00").
			expectDropped().expectWarnings(1),
		newTestRow("malformed duration defaults to zero").
			col("Day", "2024-02-12").col("Duration", "lots").
			expectDuration("0s").expectWarnings(1),
		newTestRow("matching start and end").
			col("Day", "2024-02-12").col("Duration", "2:00").
			col("Start Time", "09:00").col("End Time", "11:00").
			expectStart("09:00").expectEnd("11:00"),
		newTestRow("end recomputed when span disagrees").
			col("Day", "2024-02-12").col("Duration", "2:00").
			col("Start Time", "09:00").col("End Time", "10:00").
			expectStart("09:00").expectEnd("11:00").expectWarnings(1),
		newTestRow("end derived when missing").
			col("Day", "2024-02-12").col("Duration", "1:30").
			col("Start Time", "13:15").
			expectStart("13:15").expectEnd("14:45"),
		newTestRow("work type wins the tag fallback").
			col("Day", "2024-02-12").col("Duration", "1:00").
			col("Work Type", "research, writing").col("Tags", "ignored").col("Project Code", "ignored"),
		newTestRow("project code is the last tag fallback").
			col("Day", "2024-02-12").col("Duration", "1:00").
			col("Project Code", "ABC-1"),
	}
	tests[7].expectTags("research", "writing")
	tests[8].expectTags("ABC-1")

	for _, tr := range tests {
		t.Run(tr.name, func(t *testing.T) {
			p := Parser{}
			act, ok := p.parseRow(tr.row, 1)

			if ok == tr.dropped {
				t.Errorf("drop mismatch: expected dropped=%t", tr.dropped)
				return
			}

			if len(p.warnings) != tr.warnings {
				t.Errorf("warning count mismatch: expected %d, got %d (%v)", tr.warnings, len(p.warnings), p.warnings)
			}

			if tr.dropped {
				return
			}

			if tr.day != "" {
				if got := act.Day.Format("2006-01-02"); got != tr.day {
					t.Errorf("day mismatch: expected %s, got %s", tr.day, got)
				}
			}

			if tr.duration != "" {
				want, err := time.ParseDuration(tr.duration)
				if err != nil {
					t.Fatalf("test setup: bad duration %q", tr.duration)
				}
				if act.Duration != want {
					t.Errorf("duration mismatch: expected %s, got %s", want, act.Duration)
				}
			}

			if tr.start != "" {
				if got := act.Start.Format("15:04"); got != tr.start {
					t.Errorf("start mismatch: expected %s, got %s", tr.start, got)
				}
				if !act.Start.Truncate(24 * time.Hour).Equal(act.Day) {
					t.Errorf("start time not anchored on day: %s", act.Start)
				}
			}

			if tr.end != "" {
				if got := act.End.Format("15:04"); got != tr.end {
					t.Errorf("end mismatch: expected %s, got %s", tr.end, got)
				}
			}

			if tr.tags != nil {
				if len(act.Tags) != len(tr.tags) {
					t.Errorf("tag mismatch: expected %v, got %v", tr.tags, act.Tags)
					return
				}
				for i := range tr.tags {
					if act.Tags[i] != tr.tags[i] {
						t.Errorf("tag %d mismatch: expected %q, got %q", i, tr.tags[i], act.Tags[i])
					}
				}
			}
		})
	}
}

func TestParse(t *testing.T) {
	csvText := "\ufeff" + strings.Join([]string{
		"Day,Project,Duration,Start Time,End Time,Work Type",
		"2024-02-12,Coding,7:30,09:00,16:30,dev",
		"13/02/2024,Email (various),1:00,09:00,10:00,",
		"not-a-date,Coding,1:00,,,",
		"2024-02-14,Meetings,bogus,,,",
	}, "\n") + "\n"

	p := Parser{}
	batch, err := p.Parse(strings.NewReader(csvText))
	if err != nil {
		t.Fatalf("Parse: %s", err.Error())
	}

	if len(batch.Activities) != 3 {
		t.Errorf("expected 3 activities, got %d", len(batch.Activities))
	}
	if batch.Dropped != 1 {
		t.Errorf("expected 1 dropped row, got %d", batch.Dropped)
	}
	if len(batch.Warnings) != 2 { // one drop, one zeroed duration
		t.Errorf("expected 2 warnings, got %d: %v", len(batch.Warnings), batch.Warnings)
	}
	if batch.Header[0] != "Day" {
		t.Errorf("BOM not stripped from header: %q", batch.Header[0])
	}
}

func TestParseNoUsableRows(t *testing.T) {
	csvText := "Day,Project,Duration\nnope,Coding,1:00\n"

	p := Parser{}
	batch, err := p.Parse(strings.NewReader(csvText))
	if err != ErrNoActivities {
		t.Errorf("expected ErrNoActivities, got %v", err)
	}
	if batch == nil || batch.Dropped != 1 {
		t.Errorf("expected the dropped row to be counted")
	}
}

func newTestRow(name string) *testRow {
	return &testRow{
		name: name,
		row:  map[string]string{},
	}
}

type testRow struct {
	name     string
	row      map[string]string
	dropped  bool
	warnings int
	day      string
	duration string
	start    string
	end      string
	tags     []string
}

func (tr *testRow) col(name, value string) *testRow {
	tr.row[name] = value
	return tr
}

func (tr *testRow) expectDropped() *testRow {
	tr.dropped = true
	return tr
}

func (tr *testRow) expectWarnings(n int) *testRow {
	tr.warnings = n
	return tr
}

func (tr *testRow) expectDay(day string) *testRow {
	tr.day = day
	return tr
}

func (tr *testRow) expectDuration(d string) *testRow {
	tr.duration = d
	return tr
}

func (tr *testRow) expectStart(ts string) *testRow {
	tr.start = ts
	return tr
}

func (tr *testRow) expectEnd(ts string) *testRow {
	tr.end = ts
	return tr
}

func (tr *testRow) expectTags(tags ...string) *testRow {
	tr.tags = tags
	return tr
}
