package week

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekday(t *testing.T) {
	tests := []struct {
		day  time.Time
		want int
	}{
		{date(2024, time.February, 12), 1}, // Monday
		{date(2024, time.February, 14), 3}, // Wednesday
		{date(2024, time.February, 17), 6}, // Saturday
		{date(2024, time.February, 18), 7}, // Sunday
	}

	for _, tc := range tests {
		if got := Weekday(tc.day); got != tc.want {
			t.Errorf("Weekday(%s): expected %d, got %d", tc.day.Format("2006-01-02"), tc.want, got)
		}
	}
}

func TestStart(t *testing.T) {
	monday := date(2024, time.February, 12)

	// every day of the week maps back to the same Monday
	for offset := 0; offset < 7; offset++ {
		day := monday.AddDate(0, 0, offset)
		if got := Start(day); !got.Equal(monday) {
			t.Errorf("Start(%s): expected %s, got %s",
				day.Format("2006-01-02"), monday.Format("2006-01-02"), got.Format("2006-01-02"))
		}
	}

	// a week spanning a year boundary still anchors on its Monday
	ny := date(2021, time.January, 1) // Friday
	wantStart := date(2020, time.December, 28)
	if got := Start(ny); !got.Equal(wantStart) {
		t.Errorf("Start(2021-01-01): expected %s, got %s", wantStart, got)
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		day  time.Time
		want int
	}{
		{date(2021, time.January, 1), 53}, // belongs to 2020's last ISO week
		{date(2021, time.January, 4), 1},
		{date(2024, time.February, 12), 7},
	}

	for _, tc := range tests {
		if got := Number(tc.day); got != tc.want {
			t.Errorf("Number(%s): expected %d, got %d", tc.day.Format("2006-01-02"), tc.want, got)
		}
	}
}

func TestIsWeekend(t *testing.T) {
	if IsWeekend(date(2024, time.February, 16)) { // Friday
		t.Error("Friday should not be a weekend day")
	}
	if !IsWeekend(date(2024, time.February, 17)) {
		t.Error("Saturday should be a weekend day")
	}
	if !IsWeekend(date(2024, time.February, 18)) {
		t.Error("Sunday should be a weekend day")
	}
}

func TestYearDays(t *testing.T) {
	leap := YearDays(2020)
	if len(leap) != 366 {
		t.Errorf("2020 should have 366 days, got %d", len(leap))
	}

	plain := YearDays(2021)
	if len(plain) != 365 {
		t.Errorf("2021 should have 365 days, got %d", len(plain))
	}

	if !leap[0].Equal(date(2020, time.January, 1)) {
		t.Errorf("first day should be Jan 1, got %s", leap[0])
	}
	if !leap[365].Equal(date(2020, time.December, 31)) {
		t.Errorf("last day should be Dec 31, got %s", leap[365])
	}
}
