package activity

import "time"

// Activity is one logged time entry from the tracking export.
// All fields except Adjusted are set once at parse time.
type Activity struct {
	Day      time.Time // calendar date, UTC midnight
	Project  string
	Start    time.Time
	End      time.Time
	Duration time.Duration
	Adjusted time.Duration // set by the weekly redistribution
	Tags     []string
	Line     int // 1-based data row number in the source file

	// Columns holds the original export columns so output tables can
	// reproduce them unchanged.
	Columns map[string]string
}

// Overhead reports whether the activity belongs to the given overhead
// category.
func (a *Activity) Overhead(category string) bool {
	return a.Project == category
}

// Batch is one parsed export: the activities plus everything an output
// table needs to reproduce the source.
type Batch struct {
	Header     []string // original column order
	Activities []Activity
	Dropped    int // rows discarded for an unparseable date
	Warnings   []string
}

type Receiver interface {
	Receive(batch *Batch) error
}

type Subscriber interface {
	Subscribe(receiver Receiver) error
}
