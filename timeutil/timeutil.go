// Package timeutil handles the provider's timestamp format and the small
// amount of clock arithmetic the derived-metric calculators share.
package timeutil

import (
	"fmt"
	"time"
)

// TimestampLayout is the fixed layout of the provider's dt_txt field.
const TimestampLayout = "2006-01-02 15:04:05"

// NowLabel is the semantic token for "this entry is happening now".
// Localized display text is looked up at the presentation boundary.
const NowLabel = "now"

// ParseTimestamp parses a provider timestamp in the given location. It
// fails soft: malformed input yields the fallback instant instead of an
// error, so a bad entry never stops rendering.
func ParseTimestamp(text string, loc *time.Location, fallback time.Time) time.Time {
	t, err := time.ParseInLocation(TimestampLayout, text, loc)
	if err != nil {
		return fallback
	}
	return t
}

// IsWithinHour reports whether candidate falls within one hour of the
// reference instant, inclusive on the boundary.
func IsWithinHour(candidate, reference time.Time) bool {
	d := candidate.Sub(reference)
	if d < 0 {
		d = -d
	}
	return d <= time.Hour
}

// ClockLabel formats an instant as "HH:mm".
func ClockLabel(t time.Time) string {
	return t.Format("15:04")
}

// DotClockLabel formats an instant as "HH.mm", the style the sun and moon
// cards use.
func DotClockLabel(t time.Time) string {
	return t.Format("15.04")
}

// ShortLabel returns NowLabel when t is within an hour of now, else the
// "HH:mm" clock label.
func ShortLabel(t, now time.Time) string {
	if IsWithinHour(t, now) {
		return NowLabel
	}
	return ClockLabel(t)
}

// DayKey returns the local calendar date string used for grouping forecast
// entries into days.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// ParseDotClock splits an "HH.mm" label back into its hour and minute.
func ParseDotClock(label string) (hour, minute int, err error) {
	if _, err = fmt.Sscanf(label, "%2d.%2d", &hour, &minute); err != nil {
		return 0, 0, fmt.Errorf("invalid clock label %q: %w", label, err)
	}
	return hour, minute, nil
}
