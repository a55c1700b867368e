package format

import (
	"fmt"
	"math"
	"strings"
	"time"
)

const (
	// duration display formats
	TimeClock = "clock" // HH:MM:SS (default, matches the export)
	TimeHM    = "hm"    // hours and minutes
	TimeM     = "m"     // minutes
)

// Clock renders a duration as HH:MM:SS, the encoding used by the derived
// duration columns.
func Clock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

// Hours converts a duration to decimal hours rounded to 4 places.
func Hours(d time.Duration) float64 {
	return math.Round(d.Seconds()/3600*10000) / 10000
}

// HoursString renders decimal hours the way the numeric mirror columns
// expect them.
func HoursString(d time.Duration) string {
	return fmt.Sprintf("%.4f", Hours(d))
}

// Fraction renders a ratio with 4 decimal places.
func Fraction(f float64) string {
	return fmt.Sprintf("%.4f", f)
}

func DurationM(d time.Duration) string {
	return fmt.Sprintf("%dm", int(math.Floor(d.Minutes())))
}

func DurationHM(d time.Duration) string {
	hours := int(math.Floor(d.Hours()))
	d = d - (time.Duration(hours) * time.Hour)
	minutes := int(math.Floor(d.Minutes()))

	var sb strings.Builder
	if hours > 0 {
		sb.WriteString(fmt.Sprintf("%dh", hours))
	}

	if minutes > 0 || hours == 0 {
		if hours > 0 {
			sb.WriteString(" ")
		}

		sb.WriteString(fmt.Sprintf("%dm", minutes))
	}

	return sb.String()
}
