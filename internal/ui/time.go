// Package ui holds display helpers shared by the terminal views.
package ui

import (
	"fmt"
	"time"

	"github.com/daydid/daydid/internal/age"
)

// FormatTimeAgeShort renders the age of a timestamp as a compact string
// like "2h". Zero timestamps render as "-".
func FormatTimeAgeShort(then time.Time, now time.Time) string {
	d, ok := age.AgeData(then, now)
	if !ok {
		return "-"
	}
	return FormatDurationShort(d)
}

// FormatDurationShort renders a duration with its largest short unit
// (s, m, h, d). Negative durations render as "0s".
func FormatDurationShort(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds", int64(d/time.Second))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int64(d/time.Minute))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int64(d/time.Hour))
	default:
		return fmt.Sprintf("%dd", int64(d/(24*time.Hour)))
	}
}
