// Package metrics derives the secondary weather indicators the UI shows
// from a current-conditions snapshot and the forecast list. Every
// calculator is pure and side-effect-free: it never fails, defaults any
// missing input, and is cheap enough to recompute on each render pass.
//
// The UV, air-quality and moon values are deliberate approximations
// computed from weather variables and the calendar only. They are not
// measurements; the exact formulas are part of the observable behavior.
package metrics

import "strings"

// Color is a fixed hex identifier for a severity band. The band-to-color
// mapping is a total function and independent of locale.
type Color string

const (
	ColorGreen    Color = "#4CAF50"
	ColorAmber    Color = "#FFC107"
	ColorOrange   Color = "#FF9800"
	ColorRed      Color = "#F44336"
	ColorPurple   Color = "#9C27B0"
	ColorPaleBlue Color = "#ACD5F6"
	ColorWhite    Color = "#FFFFFF"
)

// Status is the shared 3-band activity rating.
type Status string

const (
	StatusGood Status = "good"
	StatusFair Status = "fair"
	StatusPoor Status = "poor"
)

// StatusColor maps an activity status to its display color. Unrecognized
// input falls back to white rather than failing.
func StatusColor(s Status) Color {
	switch s {
	case StatusGood:
		return ColorGreen
	case StatusFair:
		return ColorAmber
	case StatusPoor:
		return ColorRed
	default:
		return ColorWhite
	}
}

// Trend is the direction of a metric relative to its baseline.
type Trend string

const (
	TrendStable Trend = "stable"
	TrendHigher Trend = "higher-than-yesterday"
	TrendLower  Trend = "lower-than-yesterday"
)

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// containsFold reports whether the condition description mentions the
// given word, case-insensitively.
func containsFold(description, word string) bool {
	return strings.Contains(strings.ToLower(description), word)
}
