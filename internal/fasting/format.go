package fasting

import (
	"fmt"
	"time"
)

// FormatClock renders a duration as HH:MM:SS. Negative durations
// render as 00:00:00.
func FormatClock(d time.Duration) string {
	if d <= 0 {
		return "00:00:00"
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total/60)%60, total%60)
}

// FormatHoursMinutes renders a duration as "Xh Ym", or "Ym" under an
// hour.
func FormatHoursMinutes(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	if hours == 0 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %dm", hours, minutes)
}
